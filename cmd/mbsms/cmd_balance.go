package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Print the remaining account credits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.lg.Sync()

			credits, err := app.client.GetBalance(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Credits: %s\n", credits)

			return nil
		},
	}
}
