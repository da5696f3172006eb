package alphafit

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the current user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(ctx context.Context, a *cliApp) error {
			p := a.session.Profile()
			fmt.Fprintf(cmd.OutOrStdout(), "Username: %s\n", p.Username)
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", p.FullName)
			fmt.Fprintf(cmd.OutOrStdout(), "Email: %s\n", p.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %d\n", p.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "Height: %.1f cm\n", p.HeightCm)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg\n", p.WeightKg)
			fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.2f\n", p.BMI)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily target: %d kcal\n", p.DailyCalories)
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %s\n", p.GoalType)
			fmt.Fprintf(cmd.OutOrStdout(), "Activity: %s\n", p.ActivityLevel)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
