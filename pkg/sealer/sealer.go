package sealer

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the master key length, 256 bits for AES-256.
	KeySize = 32

	// info provides domain separation for HKDF so the master key can be shared
	// with other subsystems without producing the same derived key.
	info = "otpserver-secret-record-v1"
)

// Sealer encrypts secret records with AES-256-GCM under a key derived from a master
// key and a per-record salt. It is safe for concurrent use.
type Sealer struct {
	aead cipher.AEAD
}

// New derives the record key with HKDF-SHA256(masterKey, salt, info).
// Use the record name as salt so two records never share a key.
func New(masterKey []byte, salt string) (*Sealer, error) {
	if len(masterKey) != KeySize {
		return nil, ErrInvalidKey
	}

	key := make([]byte, KeySize)
	defer clearBytes(key)
	if _, err := io.ReadFull(hkdf.New(sha256.New, masterKey, []byte(salt), []byte(info)), key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return &Sealer{aead: aead}, nil
}

// Seal returns nonce || ciphertext || tag.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Join(ErrSealFailed, err)
	}
	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal. Tampered or foreign ciphertexts fail with ErrOpenFailed.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	nonceSize := s.aead.NonceSize()
	if len(sealed) < nonceSize+s.aead.Overhead() {
		return nil, errors.Join(ErrOpenFailed, ErrCiphertextTooShort)
	}

	// A non-nil destination keeps an empty plaintext distinct from a failed open.
	dst := make([]byte, 0, len(sealed)-nonceSize-s.aead.Overhead())
	plaintext, err := s.aead.Open(dst, sealed[:nonceSize], sealed[nonceSize:], nil)
	if err != nil {
		return nil, errors.Join(ErrOpenFailed, err)
	}
	return plaintext, nil
}

// ParseKey decodes a base64 master key, as stored in OTP_ENCRYPTION_KEY.
func ParseKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, errors.Join(ErrInvalidKey, err)
	}
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}
	return key, nil
}

// GenerateKey creates a random master key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrGenerateKeyFailed, err)
	}
	return key, nil
}

// GenerateEncodedKey returns a random master key in the base64 form ParseKey accepts.
func GenerateEncodedKey() (string, error) {
	key, err := GenerateKey()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// clearBytes zeroes derived key material once the cipher has been built.
func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
