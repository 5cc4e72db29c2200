package secretstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/otpserver/pkg/sealer"
)

// Backend names accepted by Config.Backend.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendS3       = "s3"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// Config selects and tunes the store. Connection settings of the networked backends
// live in redis.Config, pg.Config, mongo.Config and S3Config.
type Config struct {
	Backend       string       `env:"OTP_STORE_BACKEND" envDefault:"file"`    // Backend is one of file, redis, s3, postgres, mongo.
	Path          string       `env:"OTP_SECRET_PATH" envDefault:"secret"`    // Path is the record file used by the file backend.
	RecordName    string       `env:"OTP_RECORD_NAME" envDefault:"otpserver"` // RecordName identifies the record in shared backends and salts the sealing key.
	Format        RecordFormat `env:"OTP_RECORD_FORMAT" envDefault:"raw"`     // Format is the record format written by Save.
	EncryptionKey string       `env:"OTP_ENCRYPTION_KEY"`                     // EncryptionKey is an optional base64 32-byte key; when set records are sealed.
}

// S3Config contains configuration for the s3 backend.
type S3Config struct {
	Bucket         string `env:"S3_BUCKET"`
	Region         string `env:"S3_REGION" envDefault:"us-east-1"`
	Key            string `env:"S3_KEY"` // Key overrides the object key; empty means the record name.
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"`         // Optional: for S3-compatible services
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE"` // For S3-compatible services like MinIO
}

// Validate checks the settings that do not depend on a backend connection.
func (c Config) Validate() error {
	switch strings.ToLower(c.Backend) {
	case BackendFile:
		if c.Path == "" {
			return fmt.Errorf("%w: OTP_SECRET_PATH is empty", ErrInvalidConfig)
		}
	case BackendRedis, BackendS3, BackendPostgres, BackendMongo:
		if c.RecordName == "" {
			return fmt.Errorf("%w: OTP_RECORD_NAME is empty", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Format != FormatRaw && c.Format != FormatEnvelope {
		return fmt.Errorf("%w: %s", ErrUnknownRecordFormat, c.Format)
	}
	return nil
}

// Options translates the record settings into store options. A configured encryption
// key yields a sealer salted with the record name.
func (c Config) Options() ([]Option, error) {
	opts := []Option{WithFormat(c.Format)}
	if c.EncryptionKey == "" {
		return opts, nil
	}

	key, err := sealer.ParseKey(c.EncryptionKey)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	s, err := sealer.New(key, c.RecordName)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return append(opts, WithSealer(s)), nil
}
