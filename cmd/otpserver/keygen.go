package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otpserver/pkg/sealer"
)

func newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Print a new random key for OTP_ENCRYPTION_KEY",
		Long: `Prints a base64 encoded 32-byte key. Set it as OTP_ENCRYPTION_KEY to seal stored
records with AES-256-GCM. Losing the key makes sealed records unreadable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := sealer.GenerateEncodedKey()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
			return err
		},
	}
}
