package alphafit

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harssh120/AlphaFit/internal/api"
	"github.com/harssh120/AlphaFit/internal/model"
)

var (
	regUsername string
	regEmail    string
	regPassword string
	regFullName string
	regAge      int
	regHeight   float64
	regWeight   float64
	regGoal     string
	regActivity string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an AlphaFit account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := api.Registration{
			Username:      regUsername,
			Email:         regEmail,
			Password:      regPassword,
			FullName:      regFullName,
			Age:           regAge,
			HeightCm:      regHeight,
			WeightKg:      regWeight,
			GoalType:      model.GoalType(regGoal),
			ActivityLevel: model.ActivityLevel(regActivity),
		}
		return withApp(func(ctx context.Context, a *cliApp) error {
			if err := a.session.Register(ctx, reg); err != nil {
				return fmt.Errorf("%s", api.Message(err, "Registration failed"))
			}
			profile := a.session.Profile()
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (daily target %d kcal)\n", profile.Username, profile.DailyCalories)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&regUsername, "username", "", "Username")
	registerCmd.Flags().StringVar(&regEmail, "email", "", "Email address")
	registerCmd.Flags().StringVar(&regPassword, "password", "", "Password")
	registerCmd.Flags().StringVar(&regFullName, "full-name", "", "Full name")
	registerCmd.Flags().IntVar(&regAge, "age", 0, "Age in years")
	registerCmd.Flags().Float64Var(&regHeight, "height", 0, "Height in cm")
	registerCmd.Flags().Float64Var(&regWeight, "weight", 0, "Weight in kg")
	registerCmd.Flags().StringVar(&regGoal, "goal", "", "Goal: weight_loss, muscle_gain, maintenance, or endurance")
	registerCmd.Flags().StringVar(&regActivity, "activity", "", "Activity level: sedentary, lightly_active, moderately_active, very_active, or extremely_active")
	for _, flag := range []string{"username", "email", "password", "full-name", "age", "height", "weight", "goal", "activity"} {
		_ = registerCmd.MarkFlagRequired(flag)
	}
}
