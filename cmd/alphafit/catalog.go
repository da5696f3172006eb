package alphafit

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Browse the food catalog",
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available food items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(ctx context.Context, a *cliApp) error {
			cred, _ := a.session.Credential()
			items, err := a.client.FoodItems(ctx, cred)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKCAL/100G\tP\tC\tF")
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n", item.ID, item.Name, item.CaloriesPer100g, item.ProteinPer100g, item.CarbsPer100g, item.FatPer100g)
			}
			return nil
		})
	},
}

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Browse the exercise catalog",
}

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(ctx context.Context, a *cliApp) error {
			cred, _ := a.session.Credential()
			items, err := a.client.Exercises(ctx, cred)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tTYPE\tKCAL/MIN\tMUSCLES")
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.1f\t%s\n", item.ID, item.Name, item.Type, item.CaloriesPerMinute, strings.Join(item.MuscleGroups, ","))
			}
			return nil
		})
	},
}

var exerciseShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show exercise details and instructions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(ctx context.Context, a *cliApp) error {
			cred, _ := a.session.Credential()
			items, err := a.client.Exercises(ctx, cred)
			if err != nil {
				return err
			}
			for _, item := range items {
				if item.ID != args[0] {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", item.Name)
				fmt.Fprintf(cmd.OutOrStdout(), "Type: %s\n", item.Type)
				fmt.Fprintf(cmd.OutOrStdout(), "Muscles: %s\n", strings.Join(item.MuscleGroups, ", "))
				fmt.Fprintf(cmd.OutOrStdout(), "Burn rate: %.1f kcal/min\n", item.CaloriesPerMinute)
				fmt.Fprintf(cmd.OutOrStdout(), "Description: %s\n", item.Description)
				for i, step := range item.Instructions {
					fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s\n", i+1, step)
				}
				return nil
			}
			return fmt.Errorf("exercise %q not found", args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd, exerciseCmd)
	foodCmd.AddCommand(foodListCmd)
	exerciseCmd.AddCommand(exerciseListCmd, exerciseShowCmd)
}
