package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otpserver/pkg/config"
)

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:   "otpserver",
		Short: "Show TOTP codes for a shared secret and manage the secret",
		Long: `otpserver keeps one shared TOTP secret in a secret store and prints the codes
an authenticator app shows for it.

The secret is created on first use. Configuration comes from the environment
(and an optional .env file): OTP_STORE_BACKEND, OTP_SECRET_PATH, OTP_RECORD_FORMAT,
OTP_ENCRYPTION_KEY, OTP_DIGITS, OTP_PERIOD, OTP_ALGORITHM, OTP_LABEL, OTP_ISSUER.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if len(envFiles) > 0 {
				if err := config.LoadEnv(envFiles...); err != nil {
					return err
				}
			}
			cmd.SetContext(context.WithValue(cmd.Context(), commandKey{}, cmd.Name()))
			return nil
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "load environment variables from these files before reading configuration")

	root.AddCommand(
		newCodeCmd(),
		newURICmd(),
		newRotateCmd(),
		newWatchCmd(),
		newStatusCmd(),
		newKeygenCmd(),
	)
	return root
}

// withApp opens the app for the duration of fn.
func withApp(cmd *cobra.Command, fn func(*app) error) error {
	a, err := openApp(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.close()
	return fn(a)
}
