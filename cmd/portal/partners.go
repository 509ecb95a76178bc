package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPartnersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partners",
		Short: "Discover partners and community events",
	}
	cmd.AddCommand(newPartnersFindCmd(a), newPartnersEventsCmd(a))
	return cmd
}

func newPartnersFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find [query]",
		Short: "Search partners by name or tag",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			partners := a.partners.Find(query)
			if len(partners) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no matching partners")
				return nil
			}
			for _, partner := range partners {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  [%s]\n", partner.Name, strings.Join(partner.Tags, ", "))
			}
			return nil
		},
	}
}

func newPartnersEventsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List upcoming community events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, event := range a.partners.UpcomingEvents() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", event.Date, event.Title)
			}
			return nil
		},
	}
}
