package backoffice

import (
	"context"
	"fmt"
	"sync"
)

// Binder convierte el borrador crudo en el tipo que recibe el gateway.
type Binder[D any] func(Values) (D, error)

// Form borrador de alta de una entidad.
type Form[T, D any] struct {
	schema   Schema
	bind     Binder[D]
	gateway  Gateway[T, D]
	notifier Notifier

	mu        sync.Mutex
	draft     Values
	onCreated func(T)
}

// NewForm crea el formulario con el borrador vacío.
func NewForm[T, D any](schema Schema, bind Binder[D], gw Gateway[T, D], n Notifier) *Form[T, D] {
	return &Form[T, D]{schema: schema, bind: bind, gateway: gw, notifier: notifierOrNop(n), draft: schema.Empty()}
}

// OnCreated registra el callback que se invoca tras un alta exitosa.
func (f *Form[T, D]) OnCreated(fn func(T)) {
	f.mu.Lock()
	f.onCreated = fn
	f.mu.Unlock()
}

// Set asigna un campo. Un valor fuera de límites se rechaza y el borrador no cambia.
func (f *Form[T, D]) Set(name, raw string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if field, ok := f.schema.Field(name); ok && field.Mode == UpdateOnly {
		return fmt.Errorf("%s.%s: %w", f.schema.Entity, name, ErrUnknownField)
	}
	next, err := f.schema.SetField(f.draft, name, raw)
	if err != nil {
		return err
	}
	f.draft = next
	return nil
}

// Draft copia del borrador.
func (f *Form[T, D]) Draft() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.Clone()
}

// Reset vuelve todos los campos a vacío.
func (f *Form[T, D]) Reset() {
	f.mu.Lock()
	f.draft = f.schema.Empty()
	f.mu.Unlock()
}

// Submit envía el borrador a create. Solo en éxito se limpia el borrador y se llama onCreated;
// en error el borrador queda intacto y el error se notifica.
func (f *Form[T, D]) Submit(ctx context.Context) (T, error) {
	var zero T
	draft := f.Draft()
	in, err := f.bind(draft)
	if err != nil {
		f.notifier.Notify("create "+f.schema.Entity, err)
		return zero, err
	}
	created, err := f.gateway.Create(ctx, in)
	if err != nil {
		f.notifier.Notify("create "+f.schema.Entity, err)
		return zero, err
	}
	f.mu.Lock()
	f.draft = f.schema.Empty()
	cb := f.onCreated
	f.mu.Unlock()
	if cb != nil {
		cb(created)
	}
	return created, nil
}
