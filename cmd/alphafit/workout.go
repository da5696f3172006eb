package alphafit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/harssh120/AlphaFit/internal/dashboard"
	"github.com/harssh120/AlphaFit/internal/form"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log and list workouts",
}

var (
	workoutExerciseID string
	workoutDuration   string
	workoutSets       string
	workoutReps       string
	workoutWeight     string
	workoutNotes      string
)

var workoutLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(ctx context.Context, a *cliApp) error {
			orch := dashboard.NewOrchestrator(a.client, a.session, slog.Default())
			f := form.NewWorkoutForm(orch)
			f.SetExercise(workoutExerciseID)
			f.SetDuration(workoutDuration)
			f.SetSets(workoutSets)
			f.SetReps(workoutReps)
			f.SetWeight(workoutWeight)
			f.SetNotes(workoutNotes)

			entry, err := f.Submit(ctx)
			if err != nil {
				if msg := f.Message(); msg != "" {
					return fmt.Errorf("%s", msg)
				}
				return err
			}
			stats := orch.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", f.Message())
			fmt.Fprintf(cmd.OutOrStdout(), "%d min, %.0f kcal burned\n", entry.DurationMin, entry.CaloriesBurned)
			fmt.Fprintf(cmd.OutOrStdout(), "Today: %.0f kcal burned over %d workouts\n", stats.Workouts.TotalCaloriesBurned, stats.Workouts.WorkoutCount)
			return nil
		})
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(ctx context.Context, a *cliApp) error {
			cred, _ := a.session.Credential()
			entries, err := a.client.WorkoutLog(ctx, cred)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "EXERCISE\tMIN\tKCAL\tSETS\tREPS\tWEIGHT\tNOTES")
			for _, e := range entries {
				sets, reps, weight, notes := "", "", "", ""
				if e.Sets != nil {
					sets = fmt.Sprintf("%d", *e.Sets)
				}
				if e.Reps != nil {
					reps = fmt.Sprintf("%d", *e.Reps)
				}
				if e.WeightKg != nil {
					weight = fmt.Sprintf("%.1f", *e.WeightKg)
				}
				if e.Notes != nil {
					notes = *e.Notes
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%.0f\t%s\t%s\t%s\t%s\n", e.ExerciseName, e.DurationMin, e.CaloriesBurned, sets, reps, weight, notes)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutLogCmd, workoutListCmd)

	workoutLogCmd.Flags().StringVar(&workoutExerciseID, "exercise", "", "Exercise ID (see 'alphafit exercise list')")
	workoutLogCmd.Flags().StringVar(&workoutDuration, "duration", "", "Duration in minutes")
	workoutLogCmd.Flags().StringVar(&workoutSets, "sets", "", "Sets (optional)")
	workoutLogCmd.Flags().StringVar(&workoutReps, "reps", "", "Reps (optional)")
	workoutLogCmd.Flags().StringVar(&workoutWeight, "weight", "", "Weight in kg (optional)")
	workoutLogCmd.Flags().StringVar(&workoutNotes, "notes", "", "Notes (optional)")
	_ = workoutLogCmd.MarkFlagRequired("exercise")
	_ = workoutLogCmd.MarkFlagRequired("duration")
}
