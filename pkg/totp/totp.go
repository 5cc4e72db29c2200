package totp

import (
	"fmt"
	"time"
)

const (
	DefaultDigits = 6  // Standard 6-digit codes
	DefaultPeriod = 30 // 30-second time step (RFC 6238 standard)
)

// TOTP derives RFC 6238 codes from wall-clock time. Its configuration is fixed at
// construction, so a single value is safe for concurrent use.
type TOTP struct {
	period    uint64
	digits    int
	algorithm Algorithm
}

// Option configures a TOTP engine.
type Option func(*TOTP)

// WithPeriod sets the time step in seconds.
func WithPeriod(seconds uint64) Option {
	return func(t *TOTP) { t.period = seconds }
}

// WithDigits sets the code length.
func WithDigits(n int) Option {
	return func(t *TOTP) { t.digits = n }
}

// WithAlgorithm sets the keyed-hash primitive.
func WithAlgorithm(a Algorithm) Option {
	return func(t *TOTP) { t.algorithm = a }
}

// New returns an engine with SHA1, 6 digits and a 30 second step unless overridden.
// Out-of-range options are programming errors and panic with ErrContractViolation.
func New(opts ...Option) *TOTP {
	t := &TOTP{
		period:    DefaultPeriod,
		digits:    DefaultDigits,
		algorithm: AlgorithmSHA1,
	}
	for _, opt := range opts {
		opt(t)
	}

	if err := t.validate(); err != nil {
		panic(fmt.Errorf("%w: %w", ErrContractViolation, err))
	}
	return t
}

// NewFromConfig builds an engine from loaded configuration. Unlike New it reports
// invalid values as errors, since they come from the environment.
func NewFromConfig(cfg Config) (*TOTP, error) {
	t := &TOTP{
		period:    cfg.Period,
		digits:    cfg.Digits,
		algorithm: cfg.Algorithm,
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *TOTP) validate() error {
	if t.period == 0 {
		return ErrInvalidPeriod
	}
	if !validDigits(t.digits) {
		return fmt.Errorf("%w: got %d", ErrInvalidDigits, t.digits)
	}
	if !t.algorithm.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(t.algorithm))
	}
	return nil
}

// Period returns the time step in seconds.
func (t *TOTP) Period() uint64 { return t.period }

func (t *TOTP) Digits() int { return t.digits }

func (t *TOTP) Algorithm() Algorithm { return t.algorithm }

// StepDuration returns the period as a time.Duration.
func (t *TOTP) StepDuration() time.Duration {
	return time.Duration(t.period) * time.Second
}

// Counter maps a unix timestamp to its time step: unix / period, floored.
func (t *TOTP) Counter(unix uint64) uint64 {
	return unix / t.period
}

// CodeAt returns the code valid for the half-open interval [period*T, period*(T+1))
// that contains unix.
func (t *TOTP) CodeAt(secret []byte, unix uint64) string {
	return HOTP(secret, t.Counter(unix), t.digits, t.algorithm)
}

// Remaining returns the seconds left until the next step boundary, in [1, period].
// At an exact multiple of the period the full period remains.
func (t *TOTP) Remaining(unix uint64) uint64 {
	return t.period - unix%t.period
}

// ProvisioningURI builds an otpauth:// URI carrying this engine's parameters.
func (t *TOTP) ProvisioningURI(secret []byte, label, issuer string) string {
	return ProvisioningURI(secret, label, issuer,
		WithURIDigits(t.digits),
		WithURIPeriod(t.period),
		WithURIAlgorithm(t.algorithm),
	)
}

// UnixTime converts wall-clock time to whole seconds since the epoch.
// Times before the epoch are outside the algorithm's domain and panic.
func UnixTime(tm time.Time) uint64 {
	sec := tm.Unix()
	if sec < 0 {
		panic(fmt.Errorf("%w: time %s is before the unix epoch", ErrContractViolation, tm.UTC().Format(time.RFC3339)))
	}
	return uint64(sec)
}
