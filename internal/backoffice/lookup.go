package backoffice

import (
	"context"
	"slices"
	"sync"
)

// Option elemento de una lista de selección.
type Option struct {
	ID    int64
	Label string
}

// Lookup lista local del subconjunto activo de una entidad, usada por los campos de referencia.
// Cada recarga la reemplaza completa; si falla queda vacía.
type Lookup struct {
	name     string
	load     func(ctx context.Context) ([]Option, error)
	notifier Notifier

	mu      sync.RWMutex
	options []Option
}

// NewLookup crea la lista a partir de una consulta de activos y cómo etiquetar cada registro.
func NewLookup[T any](name string, fetch func(ctx context.Context) ([]T, error), id func(T) int64, label func(T) string, n Notifier) *Lookup {
	return &Lookup{
		name:     name,
		notifier: notifierOrNop(n),
		load: func(ctx context.Context) ([]Option, error) {
			items, err := fetch(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]Option, len(items))
			for i, item := range items {
				out[i] = Option{ID: id(item), Label: label(item)}
			}
			return out, nil
		},
	}
}

// Name nombre de la lista ("categories", "customers").
func (l *Lookup) Name() string { return l.name }

// Reload vuelve a consultar los activos. En error la lista queda vacía y se notifica.
func (l *Lookup) Reload(ctx context.Context) error {
	options, err := l.load(ctx)
	if err != nil {
		options = nil
		l.notifier.Notify("lookup "+l.name, err)
	}
	l.mu.Lock()
	l.options = options
	l.mu.Unlock()
	return err
}

// Options copia de la lista.
func (l *Lookup) Options() []Option {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.options)
}

// OptionsExcluding la lista sin el registro id.
func (l *Lookup) OptionsExcluding(id int64) []Option {
	return slices.DeleteFunc(l.Options(), func(o Option) bool { return o.ID == id })
}

// Label etiqueta de la referencia: "" si no hay referencia, "Unknown" si no está en la lista.
func (l *Lookup) Label(id *int64) string {
	if id == nil {
		return ""
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.options {
		if o.ID == *id {
			return o.Label
		}
	}
	return UnknownLabel
}
