// Package commands implements the programguide command line.
package commands

import (
	"context"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/listenupapp/programguide/internal/config"
	"github.com/listenupapp/programguide/internal/di"
	"github.com/listenupapp/programguide/pkg/programguide"
)

// cli holds per-invocation state shared by every subcommand.
type cli struct {
	overrides config.Overrides
	secure    bool
	injector  *do.RootScope
	now       func() time.Time
}

// Execute runs the command line with the process arguments.
func Execute() error {
	return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	c := &cli{now: time.Now}
	defer c.close()

	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "programguide",
		Short:         "NHK program guide client",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("secure") {
				c.overrides.Secure = strconv.FormatBool(c.secure)
			}
			c.injector = di.NewContainer(c.overrides, cmd.ErrOrStderr())
			// Surface config errors before any subcommand runs.
			_, err := do.Invoke[*config.Config](c.injector)
			return err
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.overrides.APIKey, "api-key", "", "API key (default $NHK_API_KEY)")
	flags.StringVar(&c.overrides.Domain, "domain", "", "v1 API host (default api.nhk.or.jp)")
	flags.StringVar(&c.overrides.Version, "api-version", "", "v1 API version segment (default v1)")
	flags.BoolVar(&c.secure, "secure", false, "use https for the v1 API")
	flags.StringVar(&c.overrides.Timeout, "timeout", "", "upstream request timeout (default 30s)")
	flags.StringVar(&c.overrides.EnvFile, "env-file", "", "dotenv file to load (default .env)")
	flags.StringVar(&c.overrides.LogLevel, "log-level", "", "debug, info, warn or error")
	flags.StringVar(&c.overrides.Cache, "cache", "", "response cache: none, badger, sqlite or redis")

	root.AddCommand(
		c.listCmd(),
		c.genreCmd(),
		c.infoCmd(),
		c.nowCmd(),
		c.radioCmd(),
		c.codesCmd(),
		c.serveCmd(),
	)
	return root
}

func (c *cli) close() {
	if c.injector != nil {
		_ = c.injector.Shutdown()
	}
}

func (c *cli) guide() (*programguide.Client, error) {
	return do.Invoke[*programguide.Client](c.injector)
}

func (c *cli) radio() (*programguide.RadioClient, error) {
	return do.Invoke[*programguide.RadioClient](c.injector)
}

// date parses an optional date argument at index i.
func (c *cli) date(args []string, i int) (time.Time, error) {
	raw := ""
	if len(args) > i {
		raw = args[i]
	}
	return programguide.ParseDate(raw, c.now())
}

// printJSON writes v as indented JSON with sorted keys.
func printJSON(w io.Writer, v any) error {
	return json.MarshalWrite(w, v, json.Deterministic(true), jsontext.WithIndent("  "))
}
