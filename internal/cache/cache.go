package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Host string
	Pass string
	Port int
}

// Redis holds the balances cache. A nil *Redis is a valid no-op cache,
// so the API keeps serving when redis is unreachable.
type Redis struct {
	Client   *redis.Ring
	Balances *cache.Cache
}

func NewConnection(cfg Config) *Redis {
	log.Info("connecting to redis")

	r := redis.NewRing(&redis.RingOptions{
		Addrs: map[string]string{
			"server1": fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		},
		HeartbeatFrequency: 10 * time.Second,
		Password:           cfg.Pass,
		MaxRetries:         3,
		MaxRetryBackoff:    3 * time.Second,
		ReadTimeout:        1 * time.Second,
		WriteTimeout:       1 * time.Second,
		PoolSize:           10,
		MinIdleConns:       1,
	})

	if err := r.Ping(context.Background()).Err(); err != nil {
		log.Errorf("failed to ping redis, error: %v", err)
		return nil
	}

	b := cache.New(&cache.Options{
		Redis:      r,
		LocalCache: cache.NewTinyLFU(1000, time.Hour),
	})

	log.Info("created balances cache")

	return &Redis{
		Client:   r,
		Balances: b,
	}
}

func (r *Redis) Get(ctx context.Context, id string) ([]byte, bool) {
	if r == nil {
		return nil, false
	}

	var b []byte
	if err := r.Balances.Get(ctx, id, &b); err != nil {
		return nil, false
	}

	return b, true
}

func (r *Redis) Set(ctx context.Context, id string, b []byte) {
	if r == nil {
		return
	}

	err := r.Balances.Set(&cache.Item{
		Ctx:   ctx,
		Key:   id,
		Value: b,
		TTL:   time.Hour,
	})
	if err != nil {
		log.Warnf("failed to cache balance for account id %s", id)
	}
}

func (r *Redis) Invalidate(ctx context.Context, ids ...string) {
	if r == nil {
		return
	}

	for _, id := range ids {
		if err := r.Balances.Delete(ctx, id); err != nil && err != cache.ErrCacheMiss {
			log.Warnf("failed to invalidate cached balance for account id %s", id)
		}
	}
}
