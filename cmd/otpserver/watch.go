package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otpserver/pkg/logger"
)

func newWatchCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print a new code at every step boundary until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				ctx := cmd.Context()
				for i := 0; count <= 0 || i < count; i++ {
					if i > 0 {
						timer := time.NewTimer(a.auth.NextRefresh())
						select {
						case <-ctx.Done():
							timer.Stop()
							return nil
						case <-timer.C:
						}
					}

					r := a.auth.Current()
					a.log.DebugContext(ctx, "code refreshed", logger.Step(r.Counter))
					if err := printCode(cmd, r.Code, r.Remaining); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "stop after this many codes (0 runs until interrupted)")
	return cmd
}
