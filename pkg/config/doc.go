// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads explicit `.env` files; the default `.env` in the working directory
//     is read automatically on the first Load.
//   - Load parses the environment into any struct using `env` and `envDefault` tags and
//     caches the result per type for the lifetime of the process.
//   - MustLoad panics instead of returning an error.
//   - ResetCache drops cached values so tests can change the environment between loads.
//
// Packages declare their own config structs next to the code that consumes them, for
// example totp.Config (OTP_DIGITS, OTP_PERIOD, OTP_ALGORITHM) or secretstore.Config
// (OTP_STORE_BACKEND, OTP_SECRET_PATH, OTP_RECORD_FORMAT, OTP_ENCRYPTION_KEY).
//
// # Usage
//
//	var cfg totp.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer; match them with errors.Is.
package config
