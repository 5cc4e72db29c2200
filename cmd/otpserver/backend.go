package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/otpserver/pkg/config"
	"github.com/dmitrymomot/otpserver/pkg/logger"
	"github.com/dmitrymomot/otpserver/pkg/mongo"
	"github.com/dmitrymomot/otpserver/pkg/pg"
	"github.com/dmitrymomot/otpserver/pkg/redis"
	"github.com/dmitrymomot/otpserver/pkg/secretstore"
)

// openBackend connects the backend named by cfg.Backend. The returned func releases
// its connection and is never nil.
func openBackend(ctx context.Context, cfg secretstore.Config, log *slog.Logger) (secretstore.Backend, func(), error) {
	noop := func() {}
	log = log.With(logger.Backend(cfg.Backend))

	switch strings.ToLower(cfg.Backend) {
	case secretstore.BackendFile:
		return secretstore.NewFileBackend(cfg.Path), noop, nil

	case secretstore.BackendRedis:
		var rc redis.Config
		if err := config.Load(&rc); err != nil {
			return nil, noop, err
		}
		client, err := redis.Connect(ctx, rc)
		if err != nil {
			return nil, noop, err
		}
		key := rc.Key
		if key == "" {
			key = cfg.RecordName
		}
		log.DebugContext(ctx, "connected to redis")
		return secretstore.NewRedisBackend(client, key), func() { _ = client.Close() }, nil

	case secretstore.BackendPostgres:
		var pc pg.Config
		if err := config.Load(&pc); err != nil {
			return nil, noop, err
		}
		pool, err := pg.Connect(ctx, pc)
		if err != nil {
			return nil, noop, err
		}
		if err := pg.Migrate(ctx, pool, pc, secretstore.Migrations, secretstore.MigrationsDir, log); err != nil {
			pool.Close()
			return nil, noop, err
		}
		log.DebugContext(ctx, "connected to postgres")
		return secretstore.NewPostgresBackend(pool, cfg.RecordName), pool.Close, nil

	case secretstore.BackendMongo:
		var mc mongo.Config
		if err := config.Load(&mc); err != nil {
			return nil, noop, err
		}
		coll, err := mongo.NewCollection(ctx, mc)
		if err != nil {
			return nil, noop, err
		}
		log.DebugContext(ctx, "connected to mongo")
		return secretstore.NewMongoBackend(coll, cfg.RecordName), func() {
			_ = coll.Database().Client().Disconnect(context.WithoutCancel(ctx))
		}, nil

	case secretstore.BackendS3:
		var sc secretstore.S3Config
		if err := config.Load(&sc); err != nil {
			return nil, noop, err
		}
		backend, err := secretstore.NewS3Backend(ctx, sc, cfg.RecordName)
		if err != nil {
			return nil, noop, err
		}
		return backend, noop, nil
	}

	return nil, noop, secretstore.ErrUnknownBackend
}
