package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Refresh and show the dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := a.dashboard.Refresh(cmd.Context())
			if err != nil {
				return reportError(cmd, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "turnover:  %d\n", snapshot.Turnover)
			fmt.Fprintf(out, "taxes due: %d\n", snapshot.Taxes)
			fmt.Fprintf(out, "cash flow: %d\n", snapshot.Flow)
			fmt.Fprintf(out, "updated:   %s\n", snapshot.LastUpdated)

			stats := a.meetings.Statistics()
			fmt.Fprintf(out, "meetings:  %d total, %d this week\n", stats.Total, stats.ThisWeek)

			fmt.Fprintln(out, "\nnotifications:")
			for _, notification := range a.dashboard.Notifications() {
				fmt.Fprintf(out, "  [%s] %s\n", notification.Type, notification.Text)
			}

			fmt.Fprintln(out, "\ngovernment documents:")
			for _, status := range a.dashboard.GovernmentStatuses() {
				fmt.Fprintf(out, "  %s: %s\n", status.Title, status.Status)
			}
			return nil
		},
	}
}
