package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// New creates a mongo client and pings the primary, retrying with exponential
// backoff until it answers or the attempts run out.
func New(ctx context.Context, cfg Config) (*mongo.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts := options.Client().
		ApplyURI(cfg.ConnectionURL).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetRetryWrites(cfg.RetryWrites).
		SetRetryReads(cfg.RetryReads)

	// Connect does not dial; it only fails on invalid options, which retrying cannot fix.
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	interval := cfg.RetryInterval
	if interval <= 0 {
		interval = time.Second
	}
	retries := uint64(0)
	if cfg.RetryAttempts > 1 {
		retries = uint64(cfg.RetryAttempts - 1)
	}
	b := retry.WithMaxRetries(retries, retry.NewExponential(interval))

	if err := retry.Do(ctx, b, func(ctx context.Context) error {
		if err := client.Ping(ctx, nil); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	}); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, errors.Join(ErrFailedToConnectToMongo, err)
	}
	return client, nil
}

// NewCollection connects and returns the configured secrets collection.
func NewCollection(ctx context.Context, cfg Config) (*mongo.Collection, error) {
	client, err := New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client.Database(cfg.Database).Collection(cfg.Collection), nil
}
