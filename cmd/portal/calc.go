package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/business-portal/internal/calculator"
)

func newCalcCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Credit and tax calculators",
	}
	cmd.AddCommand(newCalcCreditCmd(), newCalcTaxCmd())
	return cmd
}

func newCalcCreditCmd() *cobra.Command {
	var turnover, margin float64

	cmd := &cobra.Command{
		Use:   "credit",
		Short: "Estimate a credit limit from turnover and margin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := calculator.CreditLimit(turnover, margin)
			if err != nil {
				return reportError(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "estimated credit limit: %.0f\n", limit)
			return nil
		},
	}

	cmd.Flags().Float64Var(&turnover, "turnover", 0, "average monthly turnover")
	cmd.Flags().Float64Var(&margin, "margin", 0, "margin percentage (0-100]")
	return cmd
}

func newCalcTaxCmd() *cobra.Command {
	var income float64
	var region string

	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Compare the sole proprietor and self-employment regimes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comparison, err := calculator.CompareTaxRegimes(income, calculator.Region(region))
			if err != nil {
				return reportError(cmd, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sole proprietor: %.0f tax + %.0f contributions = %.0f\n",
				comparison.SoleProprietorTax, comparison.SoleProprietorContributions, comparison.SoleProprietorTotal)
			fmt.Fprintf(out, "self-employed:   %.0f\n", comparison.SelfEmployedTotal)
			switch comparison.Better {
			case calculator.VerdictEqual:
				fmt.Fprintln(out, "both regimes cost the same")
			default:
				fmt.Fprintf(out, "%s saves %.0f\n", comparison.Better, comparison.Difference)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&income, "income", 0, "annual income")
	cmd.Flags().StringVar(&region, "region", string(calculator.RegionStandard), "tax region: standard or preferential")
	return cmd
}
