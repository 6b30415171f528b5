package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the accounts CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "accounts",
		Short:         "User accounts and authentication service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewSeedCmd())

	return cmd
}
