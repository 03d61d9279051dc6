package main

import (
	"github.com/spf13/cobra"
)

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Run cleanup followed by restore",
		RunE:  runFix,
	}
	cmd.Flags().Bool("dry-run", false, "Log changes without writing files")
	return cmd
}

func runFix(cmd *cobra.Command, args []string) error {
	if err := runCleanup(cmd, args); err != nil {
		return err
	}
	return runRestore(cmd, args)
}
