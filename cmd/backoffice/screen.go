package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/ecommerce-backoffice/internal/backoffice"
	"github.com/jhoicas/ecommerce-backoffice/internal/backoffice/client"
)

// screen operaciones de una vista, sin el tipo de la entidad.
type screen interface {
	Mount(ctx context.Context) error
	GoTo(ctx context.Context, page int) error
	Search(ctx context.Context, term string) error
	SortBy(ctx context.Context, sort string) error
	Set(name, raw string) error
	Edit(id int64) error
	EditField(name, raw string) error
	Save(ctx context.Context) error
	Delete(ctx context.Context, confirmed bool) error

	create(ctx context.Context) (int64, error)
	table() table
}

// table ventana actual lista para imprimir.
type table struct {
	headers []string
	rows    []backoffice.Row
	page    int
	total   int
	hasMore bool
}

type entityScreen[T, D any] struct {
	*backoffice.View[T, D]
	id func(T) int64
}

func (s entityScreen[T, D]) create(ctx context.Context) (int64, error) {
	created, err := s.Submit(ctx)
	if err != nil {
		return 0, err
	}
	return s.id(created), nil
}

// table descarta la columna de acciones.
func (s entityScreen[T, D]) table() table {
	st := s.State()
	rows := make([]backoffice.Row, len(st.Rows))
	for i, r := range st.Rows {
		rows[i] = backoffice.Row{ID: r.ID, Cells: r.Cells[:len(r.Cells)-1]}
	}
	return table{
		headers: st.Headers[:len(st.Headers)-1],
		rows:    rows,
		page:    st.Window.Page,
		total:   st.Window.Total,
		hasMore: st.Window.HasMore,
	}
}

// find fila id de la ventana actual.
func (t table) find(id int64) (backoffice.Row, bool) {
	for _, r := range t.rows {
		if r.ID == id {
			return r, true
		}
	}
	return backoffice.Row{}, false
}

func (t table) write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t"+strings.Join(t.headers, "\t"))
	for _, r := range t.rows {
		fmt.Fprintln(tw, strconv.FormatInt(r.ID, 10)+"\t"+strings.Join(r.Cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	more := ""
	if t.hasMore {
		more = ", hay más"
	}
	_, err := fmt.Fprintf(w, "\npágina %d, %d registros en total%s\n", t.page, t.total, more)
	return err
}

// resource entidad administrable y cómo abrir su vista.
type resource struct {
	name   string
	schema backoffice.Schema
	open   func(s *session, size int) (screen, error)
}

func newResource[T, D any](name string, e backoffice.Entity[T, D]) resource {
	return resource{
		name:   name,
		schema: e.Schema,
		open: func(s *session, size int) (screen, error) {
			gw := client.NewGateway[T, D](s.client, name)
			view, err := backoffice.NewView[T, D](e, gw, s.lookups, s.viewConfig(size))
			if err != nil {
				return nil, err
			}
			return entityScreen[T, D]{View: view, id: e.ID}, nil
		},
	}
}

var resources = []resource{
	newResource("categories", backoffice.Categories),
	newResource("products", backoffice.Products),
	newResource("customers", backoffice.Customers),
	newResource("orders", backoffice.Orders),
	newResource("users", backoffice.Users),
}
