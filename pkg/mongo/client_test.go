package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/otpserver/pkg/mongo"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("empty url", func(t *testing.T) {
		t.Parallel()
		_, err := mongo.New(context.Background(), mongo.Config{})
		assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)
	})

	t.Run("invalid uri", func(t *testing.T) {
		t.Parallel()
		_, err := mongo.New(context.Background(), mongo.Config{ConnectionURL: "postgres://localhost"})
		assert.ErrorIs(t, err, mongo.ErrInvalidConfig)
	})

	t.Run("unreachable server gives up", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		cfg := mongo.Config{
			ConnectionURL:  "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200",
			ConnectTimeout: 200 * time.Millisecond,
			MaxPoolSize:    1,
			RetryAttempts:  2,
			RetryInterval:  10 * time.Millisecond,
		}
		client, err := mongo.New(ctx, cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
		assert.Nil(t, client)
	})
}
