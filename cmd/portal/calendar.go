package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/business-portal/internal/calendar"
)

func newCalendarCmd(a *app) *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Render the month view with meetings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			year, month := now.Year(), now.Month()
			if monthFlag != "" {
				parsed, err := time.Parse("2006-01", monthFlag)
				if err != nil {
					return reportError(cmd, fmt.Errorf("invalid --month value %q, expected YYYY-MM", monthFlag))
				}
				year, month = parsed.Year(), parsed.Month()
			}

			var events []calendar.Event
			for _, meeting := range a.meetings.List() {
				events = append(events, calendar.Event{Date: meeting.Date, Label: meeting.Title})
			}

			grid := calendar.BuildGrid(year, month, events, now)
			renderGrid(cmd, year, month, grid)
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "month to render (YYYY-MM), defaults to the current month")
	return cmd
}

func renderGrid(cmd *cobra.Command, year int, month time.Month, grid []calendar.Cell) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %d\n", month, year)
	fmt.Fprintln(out, "Mo Tu We Th Fr Sa Su")

	for i, cell := range grid {
		switch {
		case cell.Blank():
			fmt.Fprint(out, "  ")
		case cell.IsToday:
			fmt.Fprintf(out, "%2d*", cell.Day)
		default:
			fmt.Fprintf(out, "%2d", cell.Day)
		}
		if (i+1)%7 == 0 {
			fmt.Fprintln(out)
		} else {
			fmt.Fprint(out, " ")
		}
	}

	for _, cell := range grid {
		for _, label := range cell.Events {
			fmt.Fprintf(out, "%s  %s\n", cell.Date, label)
		}
	}
}
