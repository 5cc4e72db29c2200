package secretcodec

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Alphabet is the RFC 4648 base32 alphabet.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

	padChar   = '='
	blockSize = 8 // output characters per 5 input bytes
)

// invalidSymbol marks bytes outside the alphabet in the decode table.
const invalidSymbol = 0xFF

var decodeMap = func() [256]byte {
	var m [256]byte
	for i := range m {
		m[i] = invalidSymbol
	}
	for i := range len(Alphabet) {
		m[Alphabet[i]] = byte(i)
		// Lowercase input is accepted: authenticator apps and humans both produce it.
		if c := Alphabet[i]; c >= 'A' && c <= 'Z' {
			m[c+('a'-'A')] = byte(i)
		}
	}
	return m
}()

// Encode returns the padded base32 form of b. The output length is always a multiple of 8.
func Encode(b []byte) string {
	s := encode(b)
	if rem := len(s) % blockSize; rem != 0 {
		s += strings.Repeat(string(padChar), blockSize-rem)
	}
	return s
}

// EncodeNoPadding returns the base32 form of b without trailing '=' characters.
func EncodeNoPadding(b []byte) string {
	return encode(b)
}

func encode(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow((len(b)*8 + 4) / 5)

	var buf uint32
	var bits uint
	for _, c := range b {
		buf = buf<<8 | uint32(c)
		bits += 8
		for bits >= 5 {
			bits -= 5
			sb.WriteByte(Alphabet[(buf>>bits)&0x1F])
		}
		buf &= 1<<bits - 1
	}
	if bits > 0 {
		// Remaining bits are left-aligned in the final symbol, low bits zero.
		sb.WriteByte(Alphabet[(buf<<(5-bits))&0x1F])
	}
	return sb.String()
}

// Decode parses padded or unpadded base32 text, case-insensitively.
// Every failure wraps ErrMalformedSecret.
func Decode(s string) ([]byte, error) {
	data, err := stripPadding(s)
	if err != nil {
		return nil, malformed(err)
	}

	out := make([]byte, 0, len(data)*5/8)
	var buf uint32
	var bits uint
	for i := range len(data) {
		v := decodeMap[data[i]]
		if v == invalidSymbol {
			return nil, malformed(fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, data[i], i))
		}
		buf = buf<<5 | uint32(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buf>>bits))
			buf &= 1<<bits - 1
		}
	}

	// 1, 3 and 6 trailing symbols cannot be produced by any byte sequence.
	switch len(data) % blockSize {
	case 1, 3, 6:
		return nil, malformed(fmt.Errorf("%w: %d symbols", ErrInvalidLength, len(data)))
	}
	return out, nil
}

// stripPadding returns the data part of s after validating its '=' suffix.
func stripPadding(s string) (string, error) {
	idx := strings.IndexByte(s, padChar)
	if idx < 0 {
		return s, nil
	}

	for i := idx; i < len(s); i++ {
		if s[i] != padChar {
			return "", fmt.Errorf("%w: data after padding at position %d", ErrInvalidPadding, i)
		}
	}
	if len(s)%blockSize != 0 {
		return "", fmt.Errorf("%w: padded length %d is not a multiple of %d", ErrInvalidPadding, len(s), blockSize)
	}
	// A full block of padding carries no data.
	if len(s)-idx >= blockSize {
		return "", fmt.Errorf("%w: %d padding characters", ErrInvalidPadding, len(s)-idx)
	}
	return s[:idx], nil
}

func malformed(err error) error {
	return errors.Join(ErrMalformedSecret, err)
}
