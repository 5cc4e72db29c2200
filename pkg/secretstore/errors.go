package secretstore

import (
	"errors"

	"github.com/dmitrymomot/otpserver/pkg/secretcodec"
)

var (
	// ErrNotFound means the backend holds no record yet. LoadOrCreate reacts to it by
	// generating a fresh secret; every other error propagates unchanged.
	ErrNotFound = errors.New("secret record not found")

	// ErrMalformedSecret means a record exists but cannot be turned back into a secret.
	// It is the codec's sentinel so decode failures match without translation.
	ErrMalformedSecret = secretcodec.ErrMalformedSecret

	// ErrStoreUnavailable wraps every I/O fault of the backing medium.
	ErrStoreUnavailable = errors.New("secret store unavailable")

	ErrFailedToGenerateSecret = errors.New("failed to generate secret")
	ErrEmptySecret            = errors.New("secret is empty")
	ErrUnsupportedVersion     = errors.New("unsupported record version")
	ErrChecksumMismatch       = errors.New("record checksum mismatch")
	ErrTruncatedRecord        = errors.New("record is truncated")
	ErrUnknownFlags           = errors.New("record has unknown flags set")
	ErrSealerRequired         = errors.New("record is sealed but no encryption key is configured")
	ErrRecordTooLarge         = errors.New("record payload exceeds envelope limit")
	ErrInvalidConfig          = errors.New("invalid secret store configuration")
	ErrUnknownBackend         = errors.New("unknown secret store backend")
	ErrUnknownRecordFormat    = errors.New("unknown record format")
)
