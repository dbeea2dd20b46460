// Package cache construye el cliente Redis usado por la caché de respuestas HTTP.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/pedidos-api/pkg/config"
)

// NewRedisClient crea el cliente y verifica la conexión con un ping corto.
// Devuelve nil si REDIS_ADDR está vacío o el servidor no responde; el llamador
// debe seguir sin caché.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}
