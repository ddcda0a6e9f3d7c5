// Package redis implementa el caché de listas de lookup sobre go-redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/usecase"
	"github.com/jhoicas/ecommerce-backoffice/pkg/config"
	"github.com/jhoicas/ecommerce-backoffice/pkg/logger"
	goredis "github.com/redis/go-redis/v9"
)

var _ usecase.LookupCache = (*LookupCache)(nil)

var errStaleVersion = errors.New("versión de caché desactualizada")

// Connect crea el cliente y verifica la conexión con PING.
func Connect(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// LookupCache guarda listas serializadas en JSON con TTL. Con cliente nil no hace nada.
type LookupCache struct {
	rdb *goredis.Client
	ttl time.Duration
	log *logger.Logger
}

// NewLookupCache construye el caché.
func NewLookupCache(rdb *goredis.Client, ttl time.Duration, log *logger.Logger) *LookupCache {
	if log == nil {
		log = logger.Nop()
	}
	return &LookupCache{rdb: rdb, ttl: ttl, log: log}
}

// Get devuelve true en un acierto; cualquier error cuenta como fallo de caché.
func (c *LookupCache) Get(ctx context.Context, key string, dest any) bool {
	if c.rdb == nil {
		return false
	}
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("redis get")
		}
		return false
	}
	if err := json.Unmarshal(val, dest); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("caché corrupto")
		return false
	}
	return true
}

// Version versión actual de key; 0 si nunca se invalidó.
func (c *LookupCache) Version(ctx context.Context, key string) (int64, error) {
	if c.rdb == nil {
		return 0, nil
	}
	v, err := c.rdb.Get(ctx, versionKey(key)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return v, err
}

// SetIfVersion guarda value con el TTL configurado si la versión de key sigue siendo version.
// WATCH sobre la clave de versión: un Invalidate concurrente aborta la escritura.
func (c *LookupCache) SetIfVersion(ctx context.Context, key string, value any, version int64) error {
	if c.rdb == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	err = c.rdb.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := tx.Get(ctx, versionKey(key)).Int64()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}
		if current != version {
			return errStaleVersion
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, data, c.ttl)
			return nil
		})
		return err
	}, versionKey(key))
	if errors.Is(err, errStaleVersion) || errors.Is(err, goredis.TxFailedErr) {
		c.log.Debug().Str("key", key).Msg("lista invalidada durante la lectura, no se guarda")
		return nil
	}
	return err
}

// Invalidate borra las claves indicadas y avanza su versión.
func (c *LookupCache) Invalidate(ctx context.Context, keys ...string) error {
	if c.rdb == nil || len(keys) == 0 {
		return nil
	}
	_, err := c.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, k := range keys {
			pipe.Incr(ctx, versionKey(k))
		}
		pipe.Del(ctx, keys...)
		return nil
	})
	return err
}

func versionKey(key string) string {
	return key + ":version"
}
