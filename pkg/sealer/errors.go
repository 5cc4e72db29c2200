package sealer

import "errors"

var (
	ErrInvalidKey          = errors.New("invalid sealing key: must be 32 bytes")
	ErrKeyDerivationFailed = errors.New("key derivation failed")
	ErrSealFailed          = errors.New("failed to seal record")
	ErrOpenFailed          = errors.New("failed to open sealed record")
	ErrCiphertextTooShort  = errors.New("sealed record too short")
	ErrGenerateKeyFailed   = errors.New("failed to generate sealing key")
)
