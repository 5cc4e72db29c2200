package totp

// Config holds the engine parameters as loaded from the environment.
// Digits and period of the code must match what the authenticator app was provisioned with.
type Config struct {
	Digits    int       `env:"OTP_DIGITS" envDefault:"6"`       // Number of digits in generated codes
	Period    uint64    `env:"OTP_PERIOD" envDefault:"30"`      // Time step in seconds
	Algorithm Algorithm `env:"OTP_ALGORITHM" envDefault:"SHA1"` // HMAC algorithm: SHA1, SHA256 or SHA512
}
