package alphafit

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/harssh120/AlphaFit/internal/db"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage alphafit local configuration",
}

var cfgAPIURL string

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *cliApp) error {
			if !cmd.Flags().Changed("api-url") {
				return fmt.Errorf("set at least one flag")
			}
			if err := db.SetConfig(a.store, db.ConfigAPIURL, cfgAPIURL); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Updated 1 config value(s)")
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *cliApp) error {
			cfg, err := db.ListConfig(a.store)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(cfg))
			for k := range cfg {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintln(cmd.OutOrStdout(), "KEY\tVALUE")
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, cfg[k])
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configGetCmd)

	configSetCmd.Flags().StringVar(&cfgAPIURL, "api-url", "", "Base URL of the AlphaFit service")
}
