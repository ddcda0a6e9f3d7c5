package backoffice

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

// ErrNotInWindow el registro a editar no está en la ventana actual.
var ErrNotInWindow = errors.New("backoffice: el registro no está en la ventana actual")

// Lookups listas de lookup por nombre.
type Lookups map[string]*Lookup

// Entity describe cómo se presenta y edita una entidad.
type Entity[T, D any] struct {
	Schema   Schema
	ID       func(T) int64
	Snapshot func(T) Values
	Bind     Binder[D]
	// Columns arma las columnas; las de referencia resuelven su etiqueta en lookups.
	Columns func(lookups Lookups, loc *time.Location) []Column[T]
	Lookups []string
	Effects Effects
}

// ViewConfig parámetros de una vista.
type ViewConfig struct {
	PageSize int
	Location *time.Location
	Notifier Notifier
}

// ViewState estado completo de la vista. Se recalcula en cada transición; nunca se muta.
type ViewState[T any] struct {
	Window  Window[T]
	Headers []string
	Rows    []Row
	Draft   Values
	Dialog  DialogState[T]
	Lookups map[string][]Option
}

// View compone fuente, formulario, grilla, diálogo y listas de lookup de una entidad.
type View[T, D any] struct {
	entity   Entity[T, D]
	source   *DataSource[T]
	form     *Form[T, D]
	grid     *Grid[T]
	dialog   *Dialog[T, D]
	lookups  Lookups
	notifier Notifier

	mu        sync.Mutex
	dialogSt  DialogState[T]
	onCreated func(T)
	onChanged func(DialogState[T])
}

// lookupNames listas usadas por la vista más las recargadas por sus efectos, sin repetir.
func (e Entity[T, D]) lookupNames() []string {
	names := slices.Clone(e.Lookups)
	for _, op := range []Op{OpCreate, OpUpdate, OpDelete} {
		for _, effect := range e.Effects[op] {
			if effect.Kind == EffectReloadLookup && !slices.Contains(names, effect.Lookup) {
				names = append(names, effect.Lookup)
			}
		}
	}
	return names
}

// NewView arma la vista. Cada lista que la entidad usa o recarga en sus efectos debe estar en lookups.
func NewView[T, D any](e Entity[T, D], gw Gateway[T, D], lookups Lookups, cfg ViewConfig) (*View[T, D], error) {
	own := make(Lookups, len(e.Lookups))
	for _, name := range e.lookupNames() {
		l, ok := lookups[name]
		if !ok {
			return nil, fmt.Errorf("vista %s: falta la lista de lookup %q", e.Schema.Entity, name)
		}
		own[name] = l
	}
	n := notifierOrNop(cfg.Notifier)
	source := NewDataSource[T](gw, cfg.PageSize)
	v := &View[T, D]{
		entity:   e,
		source:   source,
		form:     NewForm(e.Schema, e.Bind, gw, n),
		grid:     NewGrid(source, e.ID, e.Columns(own, cfg.Location)),
		dialog:   NewDialog(e.Schema, e.Bind, gw, e.ID, e.Snapshot, n),
		lookups:  own,
		notifier: n,
	}
	v.form.OnCreated(func(created T) {
		if cb := v.createdCallback(); cb != nil {
			cb(created)
		}
	})
	return v, nil
}

// OnCreated callback tras un alta exitosa; corre antes de los efectos.
func (v *View[T, D]) OnCreated(fn func(T)) {
	v.mu.Lock()
	v.onCreated = fn
	v.mu.Unlock()
}

// OnChanged callback cuando el diálogo cierra por actualización o borrado; corre antes de los efectos.
func (v *View[T, D]) OnChanged(fn func(DialogState[T])) {
	v.mu.Lock()
	v.onChanged = fn
	v.mu.Unlock()
}

func (v *View[T, D]) createdCallback() func(T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.onCreated
}

// Mount carga las listas de lookup y después la primera ventana.
func (v *View[T, D]) Mount(ctx context.Context) error {
	for _, name := range v.entity.Lookups {
		_ = v.lookups[name].Reload(ctx)
	}
	return v.fetch(ctx, 0)
}

// GoTo muestra la página indicada.
func (v *View[T, D]) GoTo(ctx context.Context, page int) error {
	return v.fetch(ctx, page)
}

// Search filtra el listado y vuelve a la primera página.
func (v *View[T, D]) Search(ctx context.Context, term string) error {
	v.source.SetSearch(term)
	return v.fetch(ctx, 0)
}

// SortBy ordena el listado ("campo[,desc]").
func (v *View[T, D]) SortBy(ctx context.Context, sort string) error {
	v.source.SetSort(sort)
	return v.refresh(ctx)
}

func (v *View[T, D]) fetch(ctx context.Context, page int) error {
	_, err := v.source.Fetch(ctx, page, 0)
	return v.listed(err)
}

func (v *View[T, D]) refresh(ctx context.Context) error {
	_, err := v.source.Refresh(ctx)
	return v.listed(err)
}

func (v *View[T, D]) listed(err error) error {
	if errors.Is(err, ErrStale) {
		return nil
	}
	if err != nil {
		v.notifier.Notify("list "+v.entity.Schema.Entity, err)
	}
	return err
}

// State estado actual.
func (v *View[T, D]) State() ViewState[T] {
	v.mu.Lock()
	dialog := v.dialogSt
	v.mu.Unlock()
	lookups := make(map[string][]Option, len(v.lookups))
	for name, l := range v.lookups {
		lookups[name] = l.Options()
	}
	return ViewState[T]{
		Window:  v.source.Window(),
		Headers: v.grid.Headers(),
		Rows:    v.grid.Rows(),
		Draft:   v.form.Draft(),
		Dialog:  dialog,
		Lookups: lookups,
	}
}

// Set asigna un campo del formulario de alta.
func (v *View[T, D]) Set(name, raw string) error {
	return v.form.Set(name, raw)
}

// Submit crea la entidad del borrador y ejecuta los efectos de OpCreate.
func (v *View[T, D]) Submit(ctx context.Context) (T, error) {
	created, err := v.form.Submit(ctx)
	if err != nil {
		return created, err
	}
	v.runEffects(ctx, OpCreate)
	return created, nil
}

// Edit abre el diálogo con el registro id de la ventana actual.
func (v *View[T, D]) Edit(id int64) error {
	item, ok := v.grid.Find(id)
	if !ok {
		return fmt.Errorf("%s %d: %w", v.entity.Schema.Entity, id, ErrNotInWindow)
	}
	v.mu.Lock()
	v.dialogSt = v.dialog.Open(item)
	v.mu.Unlock()
	return nil
}

// EditField edita un campo del diálogo abierto.
func (v *View[T, D]) EditField(name, raw string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	next, err := v.dialog.Set(v.dialogSt, name, raw)
	v.dialogSt = next
	return err
}

// Save guarda el diálogo. En error el diálogo sigue abierto con las ediciones.
func (v *View[T, D]) Save(ctx context.Context) error {
	v.mu.Lock()
	current := v.dialogSt
	v.mu.Unlock()
	next, err := v.dialog.Save(ctx, current)
	return v.closed(ctx, next, err, OpUpdate)
}

// Delete borra el registro del diálogo si confirmed; sin confirmación no hace nada.
func (v *View[T, D]) Delete(ctx context.Context, confirmed bool) error {
	v.mu.Lock()
	current := v.dialogSt
	v.mu.Unlock()
	next, err := v.dialog.Delete(ctx, current, confirmed)
	return v.closed(ctx, next, err, OpDelete)
}

// Cancel cierra el diálogo sin cambios.
func (v *View[T, D]) Cancel() {
	v.mu.Lock()
	v.dialogSt = v.dialog.Cancel(v.dialogSt)
	v.mu.Unlock()
}

func (v *View[T, D]) closed(ctx context.Context, next DialogState[T], err error, op Op) error {
	v.mu.Lock()
	v.dialogSt = next
	cb := v.onChanged
	v.mu.Unlock()
	if err != nil || next.Open {
		return err
	}
	if cb != nil {
		cb(next)
	}
	v.runEffects(ctx, op)
	return nil
}

// Options opciones de un campo de referencia. Con ExcludeSelf se omite el registro en edición.
func (v *View[T, D]) Options(field string) []Option {
	f, ok := v.entity.Schema.Field(field)
	if !ok || f.Kind != KindReference {
		return nil
	}
	l, ok := v.lookups[f.Lookup]
	if !ok {
		return nil
	}
	v.mu.Lock()
	dialog := v.dialogSt
	v.mu.Unlock()
	if f.ExcludeSelf && dialog.Open {
		return l.OptionsExcluding(dialog.ID)
	}
	return l.Options()
}

// runEffects ejecuta los efectos declarados para op, en orden. Los fallos solo se notifican.
func (v *View[T, D]) runEffects(ctx context.Context, op Op) {
	for _, effect := range v.entity.Effects[op] {
		switch effect.Kind {
		case EffectRefreshGrid:
			_ = v.refresh(ctx)
		case EffectReloadLookup:
			if l, ok := v.lookups[effect.Lookup]; ok {
				_ = l.Reload(ctx)
			}
		}
	}
}
