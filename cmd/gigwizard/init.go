package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/gigwizard/internal/config"
	"github.com/spf13/cobra"
)

var initFlags struct {
	project bool
	force   bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create gigwizard configuration file",
	Long: `Create a gigwizard configuration file with sensible defaults.

By default, creates a global config at ~/.config/gigwizard/gigwizard.yml.
Use --project to create a project-local config in the current directory.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	initCmd.Flags().BoolVarP(&initFlags.force, "force", "f", false, "Overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	// Determine target path
	targetPath := config.GlobalPath()
	if initFlags.project {
		targetPath = config.ProjectPath()
	}

	// Check if config already exists
	if !initFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	cfg := config.Default()

	var err error
	if initFlags.project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Config written to: %s\n\n", targetPath)
	_, _ = fmt.Fprintln(out, "Run 'gigwizard create' to get started.")
	return nil
}

// fileExists checks if a file exists (helper for init command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
