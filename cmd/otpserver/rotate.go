package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otpserver/pkg/logger"
)

func newRotateCmd() *cobra.Command {
	flags := &uriFlags{}

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Replace the secret with a new random one",
		Long: `Generates a new secret, overwrites the stored record and prints the new
provisioning URI. Authenticator apps holding the old secret stop producing valid codes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				secret, err := a.auth.RotateSecret(cmd.Context())
				if err != nil {
					return err
				}
				a.log.InfoContext(cmd.Context(), "rotated via cli", logger.Fingerprint(secret))

				label, issuer := flags.resolve(cmd, a.cfg)
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), a.auth.ProvisioningURI(label, issuer)); err != nil {
					return err
				}
				code, valid := a.auth.Code()
				return printCode(cmd, code, valid)
			})
		},
	}
	flags.register(cmd)
	return cmd
}
