package alphafit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/harssh120/AlphaFit/internal/dashboard"
	"github.com/harssh120/AlphaFit/internal/form"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and list meals",
}

var (
	mealFoodID   string
	mealQuantity string
	mealType     string
)

var mealLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(ctx context.Context, a *cliApp) error {
			orch := dashboard.NewOrchestrator(a.client, a.session, slog.Default())
			f := form.NewNutritionForm(orch)
			f.SetFoodItem(mealFoodID)
			f.SetQuantity(mealQuantity)
			f.SetMealType(mealType)

			entry, err := f.Submit(ctx)
			if err != nil {
				if msg := f.Message(); msg != "" {
					return fmt.Errorf("%s", msg)
				}
				return err
			}
			stats := orch.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", f.Message())
			fmt.Fprintf(cmd.OutOrStdout(), "%.0f kcal (P %.1fg / C %.1fg / F %.1fg)\n", entry.Calories, entry.ProteinG, entry.CarbsG, entry.FatG)
			fmt.Fprintf(cmd.OutOrStdout(), "Today: %.0f kcal over %d meals\n", stats.Nutrition.TotalCalories, stats.Nutrition.MealCount)
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(ctx context.Context, a *cliApp) error {
			cred, _ := a.session.Credential()
			entries, err := a.client.MealLog(ctx, cred)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "MEAL\tFOOD\tGRAMS\tKCAL\tP\tC\tF")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f\t%.0f\t%.1f\t%.1f\t%.1f\n", e.MealType, e.FoodName, e.QuantityGrams, e.Calories, e.ProteinG, e.CarbsG, e.FatG)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealLogCmd, mealListCmd)

	mealLogCmd.Flags().StringVar(&mealFoodID, "food", "", "Food item ID (see 'alphafit food list')")
	mealLogCmd.Flags().StringVar(&mealQuantity, "quantity", "", "Quantity in grams")
	mealLogCmd.Flags().StringVar(&mealType, "type", "", "Meal type: breakfast, lunch, dinner, or snack")
	_ = mealLogCmd.MarkFlagRequired("food")
	_ = mealLogCmd.MarkFlagRequired("quantity")
	_ = mealLogCmd.MarkFlagRequired("type")
}
