package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Backend records the secret store backend under the key "backend".
func Backend(name string) slog.Attr {
	return slog.String("backend", name)
}

// Fingerprint records a log-safe secret identifier under the key "fingerprint".
// Pass a value implementing slog.LogValuer, never raw key material.
func Fingerprint(v slog.LogValuer) slog.Attr {
	if v == nil {
		return slog.Attr{}
	}
	return slog.Any("fingerprint", v)
}

// Step records the TOTP counter under the key "step".
func Step(counter uint64) slog.Attr {
	return slog.Uint64("step", counter)
}

// RecordFormat records a record format name under the key "format".
func RecordFormat(name string) slog.Attr {
	return slog.String("format", name)
}
