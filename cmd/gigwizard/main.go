package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/gigwizard/internal/config"
	"github.com/mark3labs/gigwizard/internal/logger"
	"github.com/mark3labs/gigwizard/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀▀ █ █▀▀ █ █ █ █ ▀█ ▄▀█ █▀█ █▀▄"
	logoText2 = "█▄█ █ █▄█ ▀▄▀▄▀ █ █▄ █▀█ █▀▄ █▄▀"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gigwizard",
	Short: "Create marketplace gigs from the terminal",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

// setupLogging applies log settings from config. A broken config is reported
// by the command that needs it, not here.
func setupLogging() error {
	cfg, err := config.Load()
	if err != nil {
		return nil
	}
	return logger.Configure(cfg.LogLevel, cfg.LogFile)
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

gigwizard walks a seller through creating a marketplace gig in five steps:
basics, description, packages, images and a final review. The finished gig is
posted as JSON to the seller gig API, either as a draft or for review.

Run 'gigwizard devserver' for a local API to try it against.`

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(devserverCmd)
	rootCmd.AddCommand(initCmd)
}
