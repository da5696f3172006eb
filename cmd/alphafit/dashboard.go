package alphafit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/harssh120/AlphaFit/internal/dashboard"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show today's meals, workouts, and totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(ctx context.Context, a *cliApp) error {
			orch := dashboard.NewOrchestrator(a.client, a.session, slog.Default())
			if err := orch.Load(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := a.session.Profile()
			stats := orch.Stats()

			fmt.Fprintf(out, "Dashboard for %s\n\n", p.Username)
			fmt.Fprintln(out, "Nutrition")
			fmt.Fprintf(out, "  Calories: %.0f / %d kcal\n", stats.Nutrition.TotalCalories, p.DailyCalories)
			fmt.Fprintf(out, "  Protein: %.1f g  Carbs: %.1f g  Fat: %.1f g\n", stats.Nutrition.TotalProteinG, stats.Nutrition.TotalCarbsG, stats.Nutrition.TotalFatG)
			fmt.Fprintf(out, "  Meals logged: %d\n", stats.Nutrition.MealCount)
			fmt.Fprintln(out, "Workouts")
			fmt.Fprintf(out, "  Burned: %.0f kcal over %d min (%d workouts)\n", stats.Workouts.TotalCaloriesBurned, stats.Workouts.TotalMinutes, stats.Workouts.WorkoutCount)
			fmt.Fprintf(out, "  Active goals: %d\n", stats.ActiveGoalsCount)

			fmt.Fprintln(out, "\nToday's meals")
			meals := orch.Meals()
			if len(meals) == 0 {
				fmt.Fprintln(out, "  (none)")
			}
			for _, m := range meals {
				fmt.Fprintf(out, "  %s\t%s\t%.0fg\t%.0f kcal\n", m.MealType, m.FoodName, m.QuantityGrams, m.Calories)
			}

			fmt.Fprintln(out, "\nToday's workouts")
			workouts := orch.Workouts()
			if len(workouts) == 0 {
				fmt.Fprintln(out, "  (none)")
			}
			for _, w := range workouts {
				fmt.Fprintf(out, "  %s\t%d min\t%.0f kcal\n", w.ExerciseName, w.DurationMin, w.CaloriesBurned)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
