package totp

import (
	"crypto/hmac"
	"encoding/binary"
	"fmt"
)

const (
	MinDigits = 1
	MaxDigits = 10 // a 31-bit truncated value never exceeds 10 decimal digits
)

var pow10 = [MaxDigits + 1]uint64{
	1, 10, 100, 1_000, 10_000, 100_000, 1_000_000,
	10_000_000, 100_000_000, 1_000_000_000, 10_000_000_000,
}

// HOTP implements the RFC 4226 HMAC-based one-time password for a single counter value.
// The result is left-padded with zeros to exactly digits characters.
//
// digits outside [MinDigits, MaxDigits] or an unknown algorithm panic with an error
// wrapping ErrContractViolation.
func HOTP(secret []byte, counter uint64, digits int, alg Algorithm) string {
	mustValidDigits(digits)

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(alg.hashFunc(), secret)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// Dynamic truncation: the low nibble of the last byte picks a 4-byte window,
	// the top bit is masked so the value is a 31-bit unsigned integer.
	offset := sum[len(sum)-1] & 0x0F
	value := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7FFFFFFF

	return fmt.Sprintf("%0*d", digits, uint64(value)%pow10[digits])
}

func validDigits(digits int) bool {
	return digits >= MinDigits && digits <= MaxDigits
}

func mustValidDigits(digits int) {
	if !validDigits(digits) {
		panic(fmt.Errorf("%w: %w: got %d", ErrContractViolation, ErrInvalidDigits, digits))
	}
}
