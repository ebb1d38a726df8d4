package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/smartchef/smartchef/internal/storage/sqlite"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long:  `Bring the SQLite schema up to date without starting the server.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Database.Path == "" {
			return fmt.Errorf("database path is required")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}

		version, err := sqlite.Migrate(cfg.Database.Path)
		if err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s is at schema version %d\n",
			green("✓"), cfg.Database.Path, version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
