package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVaultCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Access the code-gated document vault",
	}
	cmd.AddCommand(newVaultSetCodeCmd(a), newVaultUnlockCmd(a))
	return cmd
}

func newVaultSetCodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-code <code>",
		Short: "Set the vault access code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.vault.SetCode(cmd.Context(), args[0]); err != nil {
				return reportError(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "access code updated")
			return nil
		},
	}
}

func newVaultUnlockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unlock <code>",
		Short: "Unlock the vault and list documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			documents, err := a.vault.Unlock(cmd.Context(), args[0])
			if err != nil {
				return reportError(cmd, err)
			}
			for _, document := range documents {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  (updated %s)\n", document.Name, document.Updated)
			}
			return nil
		},
	}
}
