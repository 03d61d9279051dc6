package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "eclipsews",
		Short:   "Reconcile Eclipse/OSGi classpaths across a multi-repo workspace",
		Version: version,
	}

	cmd.PersistentFlags().String("root", ".", "Directory containing workspace.yaml")

	cmd.AddCommand(
		newInitCmd(),
		newScanCmd(),
		newCleanupCmd(),
		newRestoreCmd(),
		newFixCmd(),
		newDoctorCmd(),
	)

	return cmd
}
