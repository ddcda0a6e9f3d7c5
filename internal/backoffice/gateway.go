// Package backoffice orquesta las vistas CRUD del back-office: formulario de alta, grilla
// paginada, diálogo de edición/borrado, listas de lookup y el dashboard. Todo acceso a datos
// pasa por un Gateway; el servidor es la autoridad sobre ids, fechas y validez.
package backoffice

import "context"

// PageQuery ventana solicitada al gateway. Sort tiene la forma "campo[,desc]".
type PageQuery struct {
	Page   int
	Size   int
	Sort   string
	Search string
}

// Page respuesta paginada del gateway.
type Page[T any] struct {
	Items []T
	Page  int
	Size  int
	Total int
}

// HasMore indica si hay registros después de esta ventana.
func (p Page[T]) HasMore() bool {
	return p.Size > 0 && (p.Page+1)*p.Size < p.Total
}

// Lister lectura paginada de una entidad.
type Lister[T any] interface {
	List(ctx context.Context, q PageQuery) (Page[T], error)
}

// Gateway operaciones remotas de una entidad. T es el registro y D el borrador escribible.
type Gateway[T, D any] interface {
	Lister[T]
	Create(ctx context.Context, draft D) (T, error)
	Update(ctx context.Context, id int64, draft D) (T, error)
	Delete(ctx context.Context, id int64) error
}
