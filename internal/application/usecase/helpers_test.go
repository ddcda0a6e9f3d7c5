package usecase_test

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/usecase"
)

var testNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

// recordingPublisher guarda los eventos publicados.
type recordingPublisher struct {
	mu      sync.Mutex
	changes []usecase.EntityChange
}

func (p *recordingPublisher) Publish(_ context.Context, change usecase.EntityChange) {
	p.mu.Lock()
	p.changes = append(p.changes, change)
	p.mu.Unlock()
}

func (p *recordingPublisher) actions() []usecase.ChangeAction {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]usecase.ChangeAction, len(p.changes))
	for i, c := range p.changes {
		out[i] = c.Action
	}
	return out
}

// mapCache caché en memoria que serializa a JSON como lo hace Redis.
type mapCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	versions    map[string]int64
	hits        int
	invalidated []string
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte), versions: make(map[string]int64)}
}

func (c *mapCache) Get(_ context.Context, key string, dest any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[key]
	if !ok || json.Unmarshal(raw, dest) != nil {
		return false
	}
	c.hits++
	return true
}

func (c *mapCache) Version(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions[key], nil
}

func (c *mapCache) SetIfVersion(_ context.Context, key string, value any, version int64) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.versions[key] == version {
		c.entries[key] = raw
	}
	return nil
}

func (c *mapCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

func (c *mapCache) Invalidate(_ context.Context, keys ...string) error {
	c.mu.Lock()
	for _, k := range keys {
		delete(c.entries, k)
		c.versions[k]++
	}
	c.invalidated = append(c.invalidated, keys...)
	c.mu.Unlock()
	return nil
}

func ptr[T any](v T) *T { return &v }
