package backoffice

import (
	"context"
	"errors"
	"sync"
)

// ErrStale la respuesta llegó después de una solicitud más reciente y se descartó.
var ErrStale = errors.New("backoffice: resultado obsoleto descartado")

// Window ventana mostrada por la grilla. Siempre es la respuesta del servidor, sin mutaciones locales.
type Window[T any] struct {
	Items   []T
	Page    int
	Size    int
	Total   int
	HasMore bool
}

// DataSource adapta el listado paginado del gateway a ventanas bajo demanda.
// Cada solicitud recibe una generación; al llegar, una respuesta de generación vieja se descarta.
type DataSource[T any] struct {
	lister Lister[T]

	mu     sync.Mutex
	gen    uint64
	query  PageQuery
	window Window[T]
}

// NewDataSource crea la fuente con el tamaño de página indicado.
func NewDataSource[T any](lister Lister[T], size int) *DataSource[T] {
	return &DataSource[T]{lister: lister, query: PageQuery{Size: size}}
}

// SetSort fija el orden ("campo[,desc]") de las próximas solicitudes.
func (s *DataSource[T]) SetSort(sort string) {
	s.mu.Lock()
	s.query.Sort = sort
	s.mu.Unlock()
}

// SetSearch fija el filtro de búsqueda y vuelve a la primera página.
func (s *DataSource[T]) SetSearch(term string) {
	s.mu.Lock()
	s.query.Search = term
	s.query.Page = 0
	s.mu.Unlock()
}

// Fetch solicita la ventana page/size. Devuelve ErrStale si otra solicitud la reemplazó en vuelo.
func (s *DataSource[T]) Fetch(ctx context.Context, page, size int) (Window[T], error) {
	s.mu.Lock()
	s.query.Page = page
	if size > 0 {
		s.query.Size = size
	}
	s.mu.Unlock()
	return s.load(ctx)
}

// Refresh vuelve a pedir la ventana actual.
func (s *DataSource[T]) Refresh(ctx context.Context) (Window[T], error) {
	return s.load(ctx)
}

// Window última ventana aceptada.
func (s *DataSource[T]) Window() Window[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.window
}

// Query solicitud vigente.
func (s *DataSource[T]) Query() PageQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

func (s *DataSource[T]) load(ctx context.Context) (Window[T], error) {
	s.mu.Lock()
	s.gen++
	gen, q := s.gen, s.query
	s.mu.Unlock()

	page, err := s.lister.List(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return s.window, ErrStale
	}
	if err != nil {
		return s.window, err
	}
	s.window = Window[T]{
		Items:   page.Items,
		Page:    page.Page,
		Size:    page.Size,
		Total:   page.Total,
		HasMore: page.HasMore(),
	}
	return s.window, nil
}
