package alphafit

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harssh120/AlphaFit/internal/api"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the AlphaFit service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *cliApp) error {
			if err := a.session.Login(ctx, loginUsername, loginPassword); err != nil {
				return fmt.Errorf("%s", api.Message(err, "Login failed"))
			}
			profile := a.session.Profile()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", profile.Username)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "Username")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")
}
