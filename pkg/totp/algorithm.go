package totp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"
)

// Algorithm selects the keyed-hash primitive. The zero value is SHA1, the RFC 6238 default.
type Algorithm int

const (
	AlgorithmSHA1 Algorithm = iota
	AlgorithmSHA256
	AlgorithmSHA512
)

var algorithmNames = map[Algorithm]string{
	AlgorithmSHA1:   "SHA1",
	AlgorithmSHA256: "SHA256",
	AlgorithmSHA512: "SHA512",
}

// ParseAlgorithm accepts "SHA1", "SHA256" or "SHA512" in any case, with or without a dash.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	for alg, n := range algorithmNames {
		if n == name {
			return alg, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// String returns the name used in otpauth:// URIs.
func (a Algorithm) String() string {
	if n, ok := algorithmNames[a]; ok {
		return n
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// UnmarshalText lets env and yaml decoders populate an Algorithm from its name.
func (a *Algorithm) UnmarshalText(text []byte) error {
	alg, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = alg
	return nil
}

func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

func (a Algorithm) hashFunc() func() hash.Hash {
	switch a {
	case AlgorithmSHA1:
		return sha1.New
	case AlgorithmSHA256:
		return sha256.New
	case AlgorithmSHA512:
		return sha512.New
	}
	panic(fmt.Errorf("%w: %w: %d", ErrContractViolation, ErrUnknownAlgorithm, int(a)))
}
