package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures the idempotency store connection.
type Options struct {
	Addr     string
	DB       int
	PoolSize int // 0 = driver default
}

// OpenRedis connects the idempotency store and verifies it is reachable
// before the server starts taking loan mutations.
func OpenRedis(opts Options) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		DB:           opts.DB,
		PoolSize:     opts.PoolSize,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return r, nil
}
