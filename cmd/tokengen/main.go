// Command tokengen issues a bearer token that lets one account read and
// write its envelope on the envelope server.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-envelope/internal/config"
	"github.com/MKhiriev/go-pass-envelope/internal/utils"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		configPath string
		accountID  string
		duration   time.Duration
	)

	cmd := &cobra.Command{
		Use:          "tokengen --account UID",
		Short:        "Issue an envelope server token for an account",
		Long:         "Signs a token with APP_TOKEN_SIGN_KEY and APP_TOKEN_ISSUER (or the app section of the config file).",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := config.GetTokenConfig(configPath)
			if err != nil {
				return err
			}
			if duration == 0 {
				duration = app.TokenDuration
			}

			token, err := utils.GenerateJWTToken(app.TokenIssuer, accountID, duration, app.TokenSignKey)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the JSON config file")
	cmd.Flags().StringVarP(&accountID, "account", "a", "", "account uid the token is issued for")
	cmd.Flags().DurationVar(&duration, "duration", 0, "token lifetime (default app.token_duration)")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}
