package totp

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
)

// Secret is the shared key both sides feed into HOTP. Its String and LogValue never
// reveal the key material, only a short fingerprint.
type Secret []byte

// Clone returns an independent copy.
func (s Secret) Clone() Secret {
	if s == nil {
		return nil
	}
	c := make(Secret, len(s))
	copy(c, s)
	return c
}

// Equal compares in constant time.
func (s Secret) Equal(other Secret) bool {
	return subtle.ConstantTimeCompare(s, other) == 1
}

// Fingerprint is the first 4 bytes of SHA-256 over the secret, hex-encoded.
// Enough to tell two secrets apart in logs, useless for recovering either.
func (s Secret) Fingerprint() string {
	sum := sha256.Sum256(s)
	return hex.EncodeToString(sum[:4])
}

func (s Secret) String() string {
	return "totp.Secret(" + s.Fingerprint() + ")"
}

func (s Secret) LogValue() slog.Value {
	return slog.StringValue(s.Fingerprint())
}
