package commands

import (
	"github.com/spf13/cobra"
)

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <area> <service> [date]",
		Short: "List a day's programs",
		Long: "List a day's programs for one service in one area.\n" +
			"Area and service accept a code, name or alias. Date is YYYY-MM-DD,\n" +
			"today, tomorrow or yesterday in Japan time and defaults to today.",
		Example: "  programguide list 130 g1 2024-01-02\n  programguide list Tokyo \"NHK FM\" tomorrow",
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := c.date(args, 2)
			if err != nil {
				return err
			}
			client, err := c.guide()
			if err != nil {
				return err
			}
			out, err := client.ListPrograms(cmd.Context(), args[0], args[1], date)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func (c *cli) genreCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "genre <area> <service> <genre> [date]",
		Short:   "List a day's programs in one genre",
		Example: "  programguide genre 130 g1 0101 today",
		Args:    cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := c.date(args, 3)
			if err != nil {
				return err
			}
			client, err := c.guide()
			if err != nil {
				return err
			}
			out, err := client.ListByGenre(cmd.Context(), args[0], args[1], args[2], date)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func (c *cli) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <area> <service> <program-id>",
		Short: "Show one program",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.guide()
			if err != nil {
				return err
			}
			out, err := client.ProgramInfo(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func (c *cli) nowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now <area> <service>",
		Short: "Show the previous, current and next program",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.guide()
			if err != nil {
				return err
			}
			out, err := client.NowPlaying(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}
