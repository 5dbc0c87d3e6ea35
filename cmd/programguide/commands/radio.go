package commands

import (
	"github.com/spf13/cobra"
)

func (c *cli) radioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "radio",
		Short: "Query the v3 radio guide",
	}
	cmd.AddCommand(c.radioDateCmd(), c.radioGenreCmd(), c.radioNowCmd(), c.radioEventCmd())
	return cmd
}

func (c *cli) radioDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date <area> <service> [date]",
		Short: "List a day's radio programs",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := c.date(args, 2)
			if err != nil {
				return err
			}
			client, err := c.radio()
			if err != nil {
				return err
			}
			out, err := client.DateRadio(cmd.Context(), args[0], args[1], date)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func (c *cli) radioGenreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genre <area> <service> <genre> [date]",
		Short: "List a day's radio programs in one genre",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := c.date(args, 3)
			if err != nil {
				return err
			}
			client, err := c.radio()
			if err != nil {
				return err
			}
			out, err := client.GenreRadio(cmd.Context(), args[0], args[1], args[2], date)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func (c *cli) radioNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now <area> <service>",
		Short: "Show what is on air",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.radio()
			if err != nil {
				return err
			}
			out, err := client.NowRadio(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func (c *cli) radioEventCmd() *cobra.Command {
	var byProgram bool

	cmd := &cobra.Command{
		Use:   "event <broadcast-event-id> | event --by-program <area> <service> <program-id>",
		Short: "Show one broadcast event",
		Args: func(cmd *cobra.Command, args []string) error {
			if byProgram {
				return cobra.ExactArgs(3)(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.radio()
			if err != nil {
				return err
			}

			var out any
			if byProgram {
				out, err = client.BroadcastEventRadioByProgram(cmd.Context(), args[0], args[1], args[2])
			} else {
				out, err = client.BroadcastEventRadio(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&byProgram, "by-program", false, "build the event ID from area, service and program ID")
	return cmd
}
