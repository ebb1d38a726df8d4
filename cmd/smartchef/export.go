package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/smartchef/smartchef/internal/shopping"
	"github.com/smartchef/smartchef/internal/storage/sqlite"
)

var exportGrouped bool

var exportCmd = &cobra.Command{
	Use:   "export <plan-id>",
	Short: "Print a meal plan's stored shopping list",
	Long: `Print the shopping list last generated for a meal plan, one item per line.

Examples:
  smartchef export 6f1c0e3a-...
  smartchef export 6f1c0e3a-... --grouped > list.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sqlite.New(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer store.Close()

		plan, err := store.GetMealPlan(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(plan.ShoppingList) == 0 {
			yellow := color.New(color.FgYellow).SprintFunc()
			fmt.Fprintln(cmd.ErrOrStderr(), yellow("No shopping list generated for "+plan.Name))
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), shopping.Export(plan.ShoppingList, exportGrouped))
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolVarP(&exportGrouped, "grouped", "g", false, "group items under category headers")
	rootCmd.AddCommand(exportCmd)
}
