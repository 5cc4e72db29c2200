package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const codeCmdExample = `# Print the current code
otpserver code

# Print only the digits, for scripts
otpserver code --quiet`

func newCodeCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:     "code",
		Short:   "Print the current code and how long it stays valid",
		Example: codeCmdExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				code, valid := a.auth.Code()
				if quiet {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), code)
					return err
				}
				return printCode(cmd, code, valid)
			})
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the code")
	return cmd
}

func printCode(cmd *cobra.Command, code string, valid time.Duration) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  (%ds left)\n", code, seconds(valid))
	return err
}

// seconds rounds up, matching the whole seconds an authenticator app counts down from.
func seconds(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}
