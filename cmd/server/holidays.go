package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"leavedesk/internal/app/server"
)

func newHolidaysCmd(configPath *string) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List the configured holidays for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			cal, err := server.CalendarFromConfig(cfg)
			if err != nil {
				return err
			}

			entries := cal.EntriesForYear(year)
			if len(entries) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "no holidays configured for %d\n", year)
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Date, e.Date.Weekday(), e.Name)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "Calendar year")
	return cmd
}
