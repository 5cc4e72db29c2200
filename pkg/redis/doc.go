// Package redis connects to the Redis server used by the redis secret store backend.
//
// Connect wraps github.com/redis/go-redis/v9 and retries the initial ping with
// github.com/sethvargo/go-retry, so a process started alongside its Redis container
// waits for it instead of failing on the first refused connection. Only startup is
// retried; reads and writes issued later surface errors immediately.
//
// Configuration is read from the environment through pkg/config:
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	backend := secretstore.NewRedisBackend(client, "otpserver")
//
// Recognised variables: REDIS_URL, REDIS_KEY, REDIS_RETRY_ATTEMPTS, REDIS_RETRY_INTERVAL
// and REDIS_CONNECT_TIMEOUT.
package redis
