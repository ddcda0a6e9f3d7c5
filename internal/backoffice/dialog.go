package backoffice

import (
	"context"
	"errors"
	"fmt"
)

// ErrDialogClosed operación sobre un diálogo cerrado.
var ErrDialogClosed = errors.New("backoffice: el diálogo está cerrado")

// Outcome resultado con el que se cerró el diálogo.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeUpdated
	OutcomeDeleted
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeDeleted:
		return "deleted"
	case OutcomeCancelled:
		return "cancelled"
	}
	return "none"
}

// DialogState estado inmutable del diálogo de edición. Cada transición devuelve un valor nuevo.
//
//	closed → open(snapshot) → {updated | deleted | cancelled} → closed
type DialogState[T any] struct {
	Open    bool
	ID      int64
	Target  T      // snapshot recibido al abrir, o el registro actualizado tras guardar
	Values  Values // campos editables
	Err     error  // último fallo; el diálogo sigue abierto con las ediciones
	Outcome Outcome
}

// Dialog transiciones del diálogo de edición/borrado de una entidad.
type Dialog[T, D any] struct {
	schema   Schema
	bind     Binder[D]
	gateway  Gateway[T, D]
	id       func(T) int64
	snapshot func(T) Values
	notifier Notifier
}

// NewDialog crea las transiciones. snapshot lleva un registro a valores crudos.
func NewDialog[T, D any](schema Schema, bind Binder[D], gw Gateway[T, D], id func(T) int64, snapshot func(T) Values, n Notifier) *Dialog[T, D] {
	return &Dialog[T, D]{schema: schema, bind: bind, gateway: gw, id: id, snapshot: snapshot, notifier: notifierOrNop(n)}
}

// Open siembra los campos con el snapshot; no vuelve a consultar el registro.
func (d *Dialog[T, D]) Open(target T) DialogState[T] {
	return DialogState[T]{
		Open:   true,
		ID:     d.id(target),
		Target: target,
		Values: d.schema.ForUpdate(d.snapshot(target)),
	}
}

// Set edita un campo. Los campos de solo alta no se editan.
func (d *Dialog[T, D]) Set(s DialogState[T], name, raw string) (DialogState[T], error) {
	if !s.Open {
		return s, ErrDialogClosed
	}
	if f, ok := d.schema.Field(name); ok && f.Mode == CreateOnly {
		return s, fmt.Errorf("%s.%s: %w", d.schema.Entity, name, ErrUnknownField)
	}
	values, err := d.schema.SetField(s.Values, name, raw)
	if err != nil {
		return s, err
	}
	s.Values = values
	return s, nil
}

// Save envía los campos editables. En éxito cierra con OutcomeUpdated; en error sigue abierto.
func (d *Dialog[T, D]) Save(ctx context.Context, s DialogState[T]) (DialogState[T], error) {
	if !s.Open {
		return s, ErrDialogClosed
	}
	in, err := d.bind(d.schema.ForUpdate(s.Values))
	if err != nil {
		return d.failed(s, "update", err)
	}
	updated, err := d.gateway.Update(ctx, s.ID, in)
	if err != nil {
		return d.failed(s, "update", err)
	}
	return DialogState[T]{ID: s.ID, Target: updated, Outcome: OutcomeUpdated}, nil
}

// Delete borra el registro solo si confirmed. Sin confirmación no hace nada y sigue abierto.
func (d *Dialog[T, D]) Delete(ctx context.Context, s DialogState[T], confirmed bool) (DialogState[T], error) {
	if !s.Open {
		return s, ErrDialogClosed
	}
	if !confirmed {
		return s, nil
	}
	if err := d.gateway.Delete(ctx, s.ID); err != nil {
		return d.failed(s, "delete", err)
	}
	return DialogState[T]{ID: s.ID, Target: s.Target, Outcome: OutcomeDeleted}, nil
}

// Cancel cierra sin cambios.
func (d *Dialog[T, D]) Cancel(s DialogState[T]) DialogState[T] {
	if !s.Open {
		return s
	}
	return DialogState[T]{ID: s.ID, Target: s.Target, Outcome: OutcomeCancelled}
}

func (d *Dialog[T, D]) failed(s DialogState[T], op string, err error) (DialogState[T], error) {
	d.notifier.Notify(op+" "+d.schema.Entity, err)
	s.Values = s.Values.Clone()
	s.Err = err
	return s, err
}
