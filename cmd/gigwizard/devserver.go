package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/gigwizard/internal/config"
	"github.com/mark3labs/gigwizard/internal/devapi"
	"github.com/spf13/cobra"
)

var devserverFlags struct {
	addr string
}

var devserverCmd = &cobra.Command{
	Use:   "devserver",
	Short: "Run a local gig API for trying the wizard",
	Long: `Run a local implementation of the seller gig API.

The dev server accepts POST /api/seller/gigs with the same validation rules as
the wizard and keeps accepted gigs in memory. GET /api/seller/gigs lists them.
Point 'gigwizard create --api' at it.`,
	RunE: runDevserver,
}

func init() {
	devserverCmd.Flags().StringVarP(&devserverFlags.addr, "addr", "a", "", "Listen address (default from config, :8787)")
}

func runDevserver(cmd *cobra.Command, args []string) error {
	addr := devserverFlags.addr
	if addr == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		addr = cfg.DevServerAddr
	}

	// Setup signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Dev API listening on %s\n", addr)
	if err := devapi.Serve(ctx, addr, &devapi.Store{}); err != nil {
		return fmt.Errorf("dev server failed: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Shutting down gracefully...")
	return nil
}
