// Package memory implementa los puertos de persistencia en memoria.
// Se usa en tests y con DB_DRIVER=memory; respeta las mismas restricciones de unicidad que PostgreSQL.
package memory

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/jhoicas/ecommerce-backoffice/internal/domain"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
)

// table almacena copias de T indexadas por ID autoincremental.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[int64]T
	seq   int64
	id    func(*T) int64
	setID func(*T, int64)
	// conflicts indica si dos filas violan una restricción única.
	conflicts func(a, b *T) bool
	sorters   map[string]func(a, b *T) int
}

func newTable[T any](id func(*T) int64, setID func(*T, int64), conflicts func(a, b *T) bool, sorters map[string]func(a, b *T) int) *table[T] {
	return &table[T]{rows: make(map[int64]T), id: id, setID: setID, conflicts: conflicts, sorters: sorters}
}

func (t *table[T]) conflictLocked(row *T) bool {
	for _, existing := range t.rows {
		if t.id(&existing) == t.id(row) {
			continue
		}
		if t.conflicts(&existing, row) {
			return true
		}
	}
	return false
}

func (t *table[T]) insert(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.setID(row, 0)
	if t.conflictLocked(row) {
		return domain.ErrDuplicate
	}
	t.seq++
	t.setID(row, t.seq)
	t.rows[t.seq] = *row
	return nil
}

// update reemplaza la fila si existe; una fila inexistente se ignora como en un UPDATE sin filas.
func (t *table[T]) update(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.id(row)
	if _, ok := t.rows[id]; !ok {
		return nil
	}
	if t.conflictLocked(row) {
		return domain.ErrDuplicate
	}
	t.rows[id] = *row
	return nil
}

func (t *table[T]) delete(id int64) {
	t.mu.Lock()
	delete(t.rows, id)
	t.mu.Unlock()
}

func (t *table[T]) get(id int64) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	return &row
}

func (t *table[T]) find(pred func(*T) bool) *T {
	for _, row := range t.filter(pred) {
		return row
	}
	return nil
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// filter devuelve copias de las filas que cumplen pred, ordenadas por ID.
func (t *table[T]) filter(pred func(*T) bool) []*T {
	t.mu.RLock()
	out := make([]*T, 0, len(t.rows))
	for _, row := range t.rows {
		if pred == nil || pred(&row) {
			out = append(out, &row)
		}
	}
	t.mu.RUnlock()
	slices.SortFunc(out, func(a, b *T) int { return cmp.Compare(t.id(a), t.id(b)) })
	return out
}

// page aplica filtro, orden y ventana; devuelve además el total filtrado.
func (t *table[T]) page(pred func(*T) bool, p repository.PageRequest) ([]*T, int) {
	rows := t.filter(pred)
	if p.Sort != nil {
		if less, ok := t.sorters[p.Sort.Field]; ok {
			slices.SortStableFunc(rows, func(a, b *T) int {
				if p.Sort.Desc {
					return less(b, a)
				}
				return less(a, b)
			})
		}
	}
	total := len(rows)
	start := min(p.Offset(), total)
	end := min(start+p.Size, total)
	return rows[start:end], total
}

// containsFold indica si alguno de los campos contiene term sin distinguir mayúsculas (case folding Unicode).
func containsFold(term string, fields ...string) bool {
	fold := cases.Fold() // no es seguro entre goroutines
	term = fold.String(term)
	for _, f := range fields {
		if strings.Contains(fold.String(f), term) {
			return true
		}
	}
	return false
}

func compareTimePtr(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
