package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/business-portal/internal/application"
)

func newOfficesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offices",
		Short: "Browse the branch directory and plan visits",
	}
	cmd.AddCommand(
		newOfficesListCmd(a),
		newOfficesShowCmd(a),
		newOfficesVisitCmd(a),
	)
	return cmd
}

func newOfficesListCmd(a *app) *cobra.Command {
	var serviceFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List branches, optionally filtered by service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.offices.Sync(cmd.Context()); err != nil {
				return reportError(cmd, err)
			}

			offices, err := a.offices.FilterByService(cmd.Context(), serviceFilter)
			if err != nil {
				return reportError(cmd, err)
			}
			if len(offices) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no matching branches")
				return nil
			}
			for _, office := range offices {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  [%s]\n", office.ID, office.Name, office.Address, strings.Join(office.Services, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serviceFilter, "service", "", "only branches offering this service")
	return cmd
}

func newOfficesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			office, err := a.offices.Get(cmd.Context(), args[0])
			if err != nil {
				return reportError(cmd, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", office.Name, office.ID)
			fmt.Fprintf(out, "address:  %s\n", office.Address)
			fmt.Fprintf(out, "lead:     %s\n", office.Lead)
			fmt.Fprintf(out, "phone:    %s\n", office.Phone)
			fmt.Fprintf(out, "hours:    %s\n", office.WorkingHours)
			fmt.Fprintf(out, "services: %s\n", strings.Join(office.Services, ", "))
			return nil
		},
	}
}

func newOfficesVisitCmd(a *app) *cobra.Command {
	var goal, date string

	cmd := &cobra.Command{
		Use:   "visit",
		Short: "Plan a branch visit and list the documents to bring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.offices.PlanVisit(application.VisitGoal(goal), date)
			if err != nil {
				return reportError(cmd, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "visit on %s (%s)\n", plan.Date, plan.Goal)
			fmt.Fprintln(out, "bring:")
			for _, document := range plan.Documents {
				fmt.Fprintf(out, "  - %s\n", document)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "visit goal: open_ip_credit, open_ip, credit or consult_tax")
	cmd.Flags().StringVar(&date, "date", "", "visit date")
	return cmd
}
