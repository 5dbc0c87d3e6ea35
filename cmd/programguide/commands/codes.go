package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/listenupapp/programguide/internal/codesearch"
	"github.com/listenupapp/programguide/internal/di/providers"
	"github.com/listenupapp/programguide/pkg/programguide/codes"
)

func (c *cli) codesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codes",
		Short: "Browse the area, service and genre tables",
	}
	cmd.AddCommand(c.codesListCmd(), c.codesResolveCmd(), c.codesSearchCmd())
	return cmd
}

func (c *cli) codesListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:       "list <area|service|genre>",
		Short:     "Print a code table",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"area", "service", "genre"},
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := tableArg(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), table.Entries())
			}
			return printEntries(cmd.OutOrStdout(), table.Entries())
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func (c *cli) codesResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "resolve <area|service|genre> <code-name-or-alias>",
		Short:   "Show the entry a code, name or alias resolves to",
		Example: "  programguide codes resolve area 東京\n  programguide codes resolve service \"NHK FM\"",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := tableArg(args[0])
			if err != nil {
				return err
			}
			entry, err := table.Detect(args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), entry)
		},
	}
}

func (c *cli) codesSearchCmd() *cobra.Command {
	var (
		dimension string
		limit     int
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Fuzzy search codes, names and aliases",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dimension != "" {
				if _, err := tableArg(dimension); err != nil {
					return err
				}
			}

			index, err := do.Invoke[*providers.CodeSearchHandle](c.injector)
			if err != nil {
				return err
			}

			hits, err := index.Search(cmd.Context(), codesearch.Params{
				Query:     strings.Join(args, " "),
				Dimension: codes.Dimension(dimension),
				Limit:     limit,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), hits)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, h := range hits {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.3f\n", h.Dimension, h.Entry.Code, h.Entry.Name, h.Score)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&dimension, "dimension", "", "restrict to area, service or genre")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of hits")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func tableArg(name string) (*codes.Table, error) {
	table, ok := codes.TableFor(codes.Dimension(name))
	if !ok {
		return nil, fmt.Errorf("unknown table %q (want area, service or genre)", name)
	}
	return table, nil
}

func printEntries(w io.Writer, entries []codes.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Code, e.Name, strings.Join(e.Aliases, ", "))
	}
	return tw.Flush()
}
