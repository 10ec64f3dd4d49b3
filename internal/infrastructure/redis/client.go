package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/channelry/merchant-api/pkg/config"
)

// NewClient crea y verifica un cliente Redis. Addr vacío devuelve (nil, nil):
// la app funciona sin cache ni rate limit.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
