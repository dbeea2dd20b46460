package http

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// ResponseCache guarda en Redis las respuestas 200 de los GET por recurso.
// Cada recurso tiene un contador de generación que forma parte de la llave; una escritura
// exitosa lo incrementa y deja inalcanzables las entradas anteriores, que expiran por TTL.
// Un *ResponseCache nil no cachea nada.
type ResponseCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// NewResponseCache devuelve nil si rdb es nil.
func NewResponseCache(rdb *redis.Client, ttl time.Duration, prefix string) *ResponseCache {
	if rdb == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if prefix == "" {
		prefix = "cache"
	}
	return &ResponseCache{rdb: rdb, ttl: ttl, prefix: prefix}
}

func (rc *ResponseCache) generationKey(resource string) string {
	return fmt.Sprintf("%s:gen:%s", rc.prefix, resource)
}

func (rc *ResponseCache) entryKey(ctx context.Context, resource string, c *fiber.Ctx) (string, error) {
	gen, err := rc.rdb.Get(ctx, rc.generationKey(resource)).Result()
	if errors.Is(err, redis.Nil) {
		gen = "0"
	} else if err != nil {
		return "", err
	}
	sum := sha1.Sum([]byte(c.OriginalURL()))
	return fmt.Sprintf("%s:%s:%s:%x", rc.prefix, resource, gen, sum[:]), nil
}

// Read sirve desde Redis si hay entrada (X-Cache: HIT); si no, ejecuta la cadena y
// guarda la respuesta cuando es 200 (X-Cache: MISS). Si Redis falla se sigue sin caché.
func (rc *ResponseCache) Read(resource string) fiber.Handler {
	if rc == nil {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		key, err := rc.entryKey(ctx, resource, c)
		if err != nil {
			RequestLog(c).Warn().Err(err).Msg("cache: redis no disponible")
			return c.Next()
		}

		if bs, err := rc.rdb.Get(ctx, key).Bytes(); err == nil {
			var cached cachedResponse
			if json.Unmarshal(bs, &cached) == nil {
				c.Set(fiber.HeaderContentType, cached.ContentType)
				c.Set("X-Cache", "HIT")
				return c.Status(cached.Status).Send(cached.Body)
			}
		}

		c.Set("X-Cache", "MISS")
		if err := c.Next(); err != nil {
			return err
		}
		if c.Response().StatusCode() != fiber.StatusOK {
			return nil
		}
		payload, err := json.Marshal(cachedResponse{
			Status:      fiber.StatusOK,
			ContentType: string(c.Response().Header.ContentType()),
			Body:        append([]byte(nil), c.Response().Body()...),
		})
		if err == nil {
			_ = rc.rdb.SetEx(context.Background(), key, payload, rc.ttl).Err()
		}
		return nil
	}
}

// Invalidate ejecuta la cadena y, si la escritura terminó con status < 400, avanza la
// generación del recurso.
func (rc *ResponseCache) Invalidate(resource string) fiber.Handler {
	if rc == nil {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}
		if c.Response().StatusCode() >= fiber.StatusBadRequest {
			return nil
		}
		if err := rc.rdb.Incr(context.Background(), rc.generationKey(resource)).Err(); err != nil {
			RequestLog(c).Warn().Err(err).Str("resource", resource).Msg("cache: no se pudo invalidar")
		}
		return nil
	}
}
