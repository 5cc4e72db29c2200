package totp

import "errors"

var (
	// ErrContractViolation is the panic value (wrapped) for out-of-range parameters
	// supplied by the calling code rather than by external input.
	ErrContractViolation = errors.New("totp: contract violation")

	ErrUnknownAlgorithm = errors.New("unknown HMAC algorithm")
	ErrInvalidDigits    = errors.New("invalid number of digits, must be between 1 and 10")
	ErrInvalidPeriod    = errors.New("invalid period, must be greater than 0")
)
