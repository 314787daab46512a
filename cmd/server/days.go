package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"leavedesk/internal/app/server"
	"leavedesk/internal/domain/leave"
)

func newDaysCmd(configPath *string) *cobra.Command {
	var startStr, endStr string
	var halfStart, halfEnd, rejectHoliday bool

	cmd := &cobra.Command{
		Use:   "days",
		Short: "Count chargeable leave days for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := leave.ParseDate(startStr)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			end, err := leave.ParseDate(endStr)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			cal, err := server.CalendarFromConfig(cfg)
			if err != nil {
				return err
			}
			svc := leave.NewService(cal, leave.Policy{RejectHolidayBoundary: cfg.RejectHolidayBoundary || rejectHoliday})

			r := leave.DateRange{Start: start, End: end}
			quote, err := svc.QuoteRequest(r, leave.HalfDayFlags{Start: halfStart, End: halfEnd})
			if err != nil {
				return err
			}
			return printQuote(cmd.OutOrStdout(), quote)
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "First day of leave (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endStr, "end", "", "Last day of leave (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&halfStart, "half-start", false, "Take only half of the first day")
	cmd.Flags().BoolVar(&halfEnd, "half-end", false, "Take only half of the last day")
	cmd.Flags().BoolVar(&rejectHoliday, "reject-holiday-boundary", false, "Fail when the range starts or ends on a holiday")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func printQuote(out io.Writer, q leave.Quote) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, d := range q.Days {
		note := ""
		switch {
		case d.Kind == leave.DayHoliday:
			note = d.HolidayName
		case d.Date == q.StartDate && q.Flags.Start, d.Date == q.EndDate && q.Flags.End:
			note = "half day"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Date, d.Date.Weekday().String()[:3], d.Kind, note)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\nbusiness days: %d\nchargeable days: %s\n",
		q.BusinessDays, strconv.FormatFloat(q.ChargeableDays, 'f', -1, 64))
	return err
}
