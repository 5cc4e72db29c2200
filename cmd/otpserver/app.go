package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/otpserver/pkg/authenticator"
	"github.com/dmitrymomot/otpserver/pkg/config"
	"github.com/dmitrymomot/otpserver/pkg/logger"
	"github.com/dmitrymomot/otpserver/pkg/secretstore"
	"github.com/dmitrymomot/otpserver/pkg/totp"
)

// appConfig holds the settings that belong to the command itself.
type appConfig struct {
	Env    string `env:"APP_ENV" envDefault:"production"`
	Name   string `env:"APP_NAME" envDefault:"otpserver"`
	Label  string `env:"OTP_LABEL" envDefault:"OTP-Server"`
	Issuer string `env:"OTP_ISSUER" envDefault:"OTP-Server"`
}

type commandKey struct{}

// app is everything a command needs once the secret is bound.
type app struct {
	cfg      appConfig
	storeCfg secretstore.Config
	log      *slog.Logger
	store    *secretstore.Store
	auth     *authenticator.Authenticator
	close    func()
}

func newLogger(w io.Writer) (*slog.Logger, appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return nil, cfg, err
	}
	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return nil, cfg, err
	}
	if logCfg.Level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(logCfg.Level)); err != nil {
			return nil, cfg, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	switch logger.Format(logCfg.Format) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return nil, cfg, fmt.Errorf("LOG_FORMAT: unknown format %q", logCfg.Format)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithConfig(logCfg),
		logger.WithOutput(w),
		logger.WithContextValue("command", commandKey{}),
	)
	return log, cfg, nil
}

// openApp wires configuration, logging, the chosen backend and the authenticator.
// The caller must invoke app.close when done.
func openApp(ctx context.Context, logOutput io.Writer) (*app, error) {
	log, cfg, err := newLogger(logOutput)
	if err != nil {
		return nil, err
	}

	var totpCfg totp.Config
	if err := config.Load(&totpCfg); err != nil {
		return nil, err
	}
	engine, err := totp.NewFromConfig(totpCfg)
	if err != nil {
		return nil, err
	}

	var storeCfg secretstore.Config
	if err := config.Load(&storeCfg); err != nil {
		return nil, err
	}
	if err := storeCfg.Validate(); err != nil {
		return nil, err
	}
	storeOpts, err := storeCfg.Options()
	if err != nil {
		return nil, err
	}

	backend, closeBackend, err := openBackend(ctx, storeCfg, log)
	if err != nil {
		return nil, err
	}

	store := secretstore.New(backend, append(storeOpts, secretstore.WithLogger(log))...)
	auth, err := authenticator.Open(ctx, store,
		authenticator.WithEngine(engine),
		authenticator.WithLogger(log),
	)
	if err != nil {
		closeBackend()
		return nil, errors.Join(fmt.Errorf("open %s secret store", backend.Name()), err)
	}

	return &app{
		cfg:      cfg,
		storeCfg: storeCfg,
		log:      log,
		store:    store,
		auth:     auth,
		close:    closeBackend,
	}, nil
}
