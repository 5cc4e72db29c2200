package secretcodec

import "errors"

var (
	// ErrMalformedSecret is returned for any text that cannot be decoded into a secret.
	ErrMalformedSecret = errors.New("malformed secret")

	ErrInvalidCharacter = errors.New("character outside base32 alphabet")
	ErrInvalidPadding   = errors.New("invalid base32 padding")
	ErrInvalidLength    = errors.New("invalid base32 length")
)
