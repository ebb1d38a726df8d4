package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/smartchef/smartchef/internal/server"
	"github.com/smartchef/smartchef/internal/storage/sqlite"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server",
	Long: `Start the Connect API server with the static frontend, the shopping
list export route, /healthz and /metrics.

The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		store, err := sqlite.New(cfg.Database.Path)
		if err != nil {
			logger.Error("Failed to initialize storage", "error", err)
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer store.Close()
		logger.Info("Storage initialized", "database", cfg.Database.Path)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := server.New(cfg, store, server.Options{}, logger).Run(ctx); err != nil {
			logger.Error("Server failed", "error", err)
			return err
		}
		logger.Info("Server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
