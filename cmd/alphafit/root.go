package alphafit

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	storePath string
	apiURL    string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "alphafit",
	Short: "alphafit tracks meals and workouts against the AlphaFit service",
	Long:  "alphafit is a terminal client for the AlphaFit fitness-tracking service: log in, record meals and workouts, and view your daily dashboard.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "db", "", "Path to local credential store")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the AlphaFit service")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}
