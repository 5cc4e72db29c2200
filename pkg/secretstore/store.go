package secretstore

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/otpserver/pkg/logger"
	"github.com/dmitrymomot/otpserver/pkg/totp"
)

// SecretSize is the length of generated secrets: 160 bits, what authenticator apps expect.
const SecretSize = 20

// Backend persists a single opaque record.
//
// Read returns an error wrapping ErrNotFound when no record exists and ErrStoreUnavailable
// on any fault of the medium. Write must replace the record atomically: a concurrent Read
// sees either the old bytes or the new ones, never a mix.
type Backend interface {
	Name() string
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// Sealer encrypts record payloads. *sealer.Sealer implements it.
type Sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

// Store loads, generates and persists the shared TOTP secret on top of a Backend.
// It holds no mutable state of its own, so it is safe for concurrent use whenever the
// backend is.
type Store struct {
	backend Backend
	format  RecordFormat
	sealer  Sealer
	rand    io.Reader
	log     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithFormat selects the format used by Save. Load always auto-detects.
func WithFormat(f RecordFormat) Option {
	return func(s *Store) {
		s.format = f
	}
}

// WithSealer encrypts every saved record. Sealed records are always envelopes.
func WithSealer(sealer Sealer) Option {
	return func(s *Store) {
		s.sealer = sealer
	}
}

// WithRand replaces crypto/rand as the source for Generate.
func WithRand(r io.Reader) Option {
	return func(s *Store) {
		if r != nil {
			s.rand = r
		}
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New returns a Store writing raw records through backend unless options say otherwise.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		format:  FormatRaw,
		rand:    rand.Reader,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("secretstore"), logger.Backend(backend.Name()))
	return s
}

// Backend returns the name of the underlying backend.
func (s *Store) Backend() string {
	return s.backend.Name()
}

// Format returns the format Save writes.
func (s *Store) Format() RecordFormat {
	if s.sealer != nil {
		return FormatEnvelope
	}
	return s.format
}

// Load reads and decodes the persisted secret.
func (s *Store) Load(ctx context.Context) (totp.Secret, error) {
	secret, _, err := s.load(ctx)
	return secret, err
}

func (s *Store) load(ctx context.Context) (totp.Secret, RecordFormat, error) {
	data, err := s.backend.Read(ctx)
	if err != nil {
		return nil, 0, err
	}
	secret, format, err := decodeRecord(data, s.sealer)
	if err != nil {
		s.log.ErrorContext(ctx, "stored secret is unreadable", logger.RecordFormat(format.String()), logger.Error(err))
		return nil, format, err
	}
	return totp.Secret(secret), format, nil
}

// Generate draws SecretSize bytes from the random source.
func (s *Store) Generate() (totp.Secret, error) {
	secret := make(totp.Secret, SecretSize)
	if _, err := io.ReadFull(s.rand, secret); err != nil {
		return nil, errors.Join(ErrFailedToGenerateSecret, err)
	}
	return secret, nil
}

// Save encodes secret in the configured format and replaces the stored record.
func (s *Store) Save(ctx context.Context, secret totp.Secret) error {
	if len(secret) == 0 {
		return ErrEmptySecret
	}
	data, err := encodeRecord(s.format, secret, s.sealer)
	if err != nil {
		return err
	}
	if err := s.backend.Write(ctx, data); err != nil {
		return err
	}
	s.log.DebugContext(ctx, "secret saved", logger.RecordFormat(s.Format().String()), logger.Fingerprint(secret))
	return nil
}

// LoadOrCreate returns the stored secret, creating and saving a new one only when no
// record exists. Malformed records and I/O faults are returned, never papered over.
func (s *Store) LoadOrCreate(ctx context.Context) (totp.Secret, error) {
	secret, format, err := s.load(ctx)
	switch {
	case err == nil:
		if format != s.Format() {
			s.log.InfoContext(ctx, "stored record format differs, it will be migrated on the next save",
				slog.String("stored", format.String()), slog.String("configured", s.Format().String()))
		}
		return secret, nil
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	secret, err = s.Generate()
	if err != nil {
		return nil, err
	}
	if err := s.Save(ctx, secret); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "new secret created", logger.Fingerprint(secret))
	return secret, nil
}

// Rotate generates a new secret and overwrites the current record with it.
func (s *Store) Rotate(ctx context.Context) (totp.Secret, error) {
	secret, err := s.Generate()
	if err != nil {
		return nil, err
	}
	if err := s.Save(ctx, secret); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "secret rotated", logger.Fingerprint(secret))
	return secret, nil
}
