// Package logger builds the process-wide *slog.Logger from functional options and
// provides attribute helpers so field names stay consistent.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured Format, attaches
// static attributes and, when context extractors are registered, wraps the handler in a
// decorator that adds attributes pulled from the record's context.Context.
//
// Helpers in attr.go (Error, Component, Backend, Fingerprint, Step, RecordFormat) return
// slog.Attr values. Secrets are only ever logged through Fingerprint, which takes a
// slog.LogValuer such as totp.Secret so raw key material cannot end up in a record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "otpserver"),
//	    logger.WithConfig(cfg),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//	log.InfoContext(ctx, "secret rotated", logger.Fingerprint(secret))
//
// # Configuration
//
//   - WithEnvironment – text/debug for development, json/info for staging and production.
//   - WithConfig – LOG_LEVEL and LOG_FORMAT overrides.
//   - WithLevel, WithFormat, WithOutput, WithAttr – individual settings.
//   - WithContextValue – inject a context value into every record.
//
// # Error Handling
//
// Error returns an empty attribute for a nil error, so it can be passed unconditionally.
// Invalid formats or levels panic during construction.
package logger
