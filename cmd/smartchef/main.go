// Command smartchef runs the SmartChef API server and its maintenance tasks.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartchef/smartchef/internal/config"
	"github.com/smartchef/smartchef/pkg/logging"
)

var (
	// Global flags
	configPath string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "smartchef",
	Short: "SmartChef recipe, meal plan and shopping list backend",
	Long: `SmartChef serves recipes, weekly meal plans and collections over Connect,
and builds consolidated shopping lists from the recipes in a plan.

Configuration is read from an optional YAML file, then .env, then
SMARTCHEF_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger = logging.Setup(logging.Options{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
