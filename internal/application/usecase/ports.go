package usecase

import (
	"context"
	"time"
)

// ChangeAction tipo de mutación publicada tras una escritura exitosa.
type ChangeAction string

const (
	ActionCreated ChangeAction = "created"
	ActionUpdated ChangeAction = "updated"
	ActionDeleted ChangeAction = "deleted"
)

// EntityChange evento de cambio de una entidad.
type EntityChange struct {
	Entity string       `json:"entity"`
	ID     int64        `json:"id"`
	Action ChangeAction `json:"action"`
	At     time.Time    `json:"at"`
}

// ChangePublisher publica eventos de cambio. La publicación no bloquea ni falla la escritura.
type ChangePublisher interface {
	Publish(ctx context.Context, change EntityChange)
}

// LookupCache caché de las listas "solo activos" (categorías, clientes).
// Un fallo del caché nunca debe romper la lectura: Get devuelve false y se consulta el repositorio.
// Cada Invalidate avanza la versión de la clave; SetIfVersion no escribe si la versión cambió
// mientras se leía el repositorio.
type LookupCache interface {
	Get(ctx context.Context, key string, dest any) bool
	Version(ctx context.Context, key string) (int64, error)
	SetIfVersion(ctx context.Context, key string, value any, version int64) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Claves de caché de listas de lookup.
const (
	CacheKeyActiveCategories = "lookup:categories:active"
	CacheKeyActiveCustomers  = "lookup:customers:active"
)

// NopPublisher descarta los eventos.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, EntityChange) {}

// NopCache caché deshabilitado.
type NopCache struct{}

func (NopCache) Get(context.Context, string, any) bool                  { return false }
func (NopCache) Version(context.Context, string) (int64, error)         { return 0, nil }
func (NopCache) SetIfVersion(context.Context, string, any, int64) error { return nil }
func (NopCache) Invalidate(context.Context, ...string) error            { return nil }

func publisherOrNop(p ChangePublisher) ChangePublisher {
	if p == nil {
		return NopPublisher{}
	}
	return p
}

func cacheOrNop(c LookupCache) LookupCache {
	if c == nil {
		return NopCache{}
	}
	return c
}
