package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const uriCmdExample = `# Print the URI to import into an authenticator app
otpserver uri

# Override the account label and issuer
otpserver uri --label "alice@example.com" --issuer "Example"`

type uriFlags struct {
	label  string
	issuer string
}

func (f *uriFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.label, "label", "", "account label (default $OTP_LABEL)")
	cmd.Flags().StringVar(&f.issuer, "issuer", "", "issuer name, empty string omits it (default $OTP_ISSUER)")
}

// resolve falls back to the configured values for flags that were not given.
func (f *uriFlags) resolve(cmd *cobra.Command, cfg appConfig) (label, issuer string) {
	label, issuer = cfg.Label, cfg.Issuer
	if cmd.Flags().Changed("label") {
		label = f.label
	}
	if cmd.Flags().Changed("issuer") {
		issuer = f.issuer
	}
	return label, issuer
}

func newURICmd() *cobra.Command {
	flags := &uriFlags{}

	cmd := &cobra.Command{
		Use:     "uri",
		Short:   "Print the otpauth:// provisioning URI",
		Example: uriCmdExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				label, issuer := flags.resolve(cmd, a.cfg)
				_, err := fmt.Fprintln(cmd.OutOrStdout(), a.auth.ProvisioningURI(label, issuer))
				return err
			})
		},
	}
	flags.register(cmd)
	return cmd
}
