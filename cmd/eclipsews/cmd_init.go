package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rolfmadsen/eclipsews/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a workspace config interactively or from a file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInit,
	}
	cmd.Flags().String("from", "", "Import workspace.yaml from a local path")
	cmd.Flags().Bool("force", false, "Overwrite an existing workspace.yaml")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]
	root, _ := cmd.Flags().GetString("root")
	from, _ := cmd.Flags().GetString("from")
	force, _ := cmd.Flags().GetBool("force")

	configPath := filepath.Join(root, "workspace.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("workspace.yaml already exists at %s (use --force to overwrite)", configPath)
	}

	var ws *config.Workspace
	switch {
	case from != "":
		data, err := os.ReadFile(from) //nolint:gosec // user-provided --from path
		if err != nil {
			return fmt.Errorf("reading --from source: %w", err)
		}
		ws, err = config.Parse(data)
		if err != nil {
			return fmt.Errorf("invalid config from %s: %w", from, err)
		}
	default:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive init requires a TTY; use --from to specify a config file")
		}
		roots, err := interactiveAddRoots()
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
		ws = &config.Workspace{Version: 1, Name: name, Roots: roots}
	}

	if err := config.Save(configPath, ws); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Workspace %q created at %s\n", ws.Name, configPath)
	return nil
}
