package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type statusReport struct {
	Backend     string `yaml:"backend"`
	Format      string `yaml:"record_format"`
	Sealed      bool   `yaml:"sealed"`
	Label       string `yaml:"label"`
	Issuer      string `yaml:"issuer,omitempty"`
	Algorithm   string `yaml:"algorithm"`
	Digits      int    `yaml:"digits"`
	Period      uint64 `yaml:"period"`
	Fingerprint string `yaml:"fingerprint"`
	Remaining   int    `yaml:"seconds_remaining"`
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Describe the store and TOTP settings in YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				engine := a.auth.Engine()
				_, valid := a.auth.Code()

				report := statusReport{
					Backend:     a.store.Backend(),
					Format:      a.store.Format().String(),
					Sealed:      a.storeCfg.EncryptionKey != "",
					Label:       a.cfg.Label,
					Issuer:      a.cfg.Issuer,
					Algorithm:   engine.Algorithm().String(),
					Digits:      engine.Digits(),
					Period:      engine.Period(),
					Fingerprint: a.auth.Secret().Fingerprint(),
					Remaining:   seconds(valid),
				}

				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(report); err != nil {
					return err
				}
				return enc.Close()
			})
		},
	}
}
