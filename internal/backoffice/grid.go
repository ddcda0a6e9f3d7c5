package backoffice

// ActionsHeader encabezado de la columna de acciones.
const ActionsHeader = "Actions"

// EditAction disparador de edición de cada fila.
const EditAction = "Edit"

// Column columna de la grilla con su formateador puro.
type Column[T any] struct {
	Header string
	Format func(T) string
}

// Row fila renderizada. ID identifica el registro para el disparador de edición.
type Row struct {
	ID    int64
	Cells []string
}

// Grid renderiza la ventana actual de una fuente. Nunca muta registros.
type Grid[T any] struct {
	source  *DataSource[T]
	id      func(T) int64
	columns []Column[T]
}

// NewGrid crea la grilla sobre source.
func NewGrid[T any](source *DataSource[T], id func(T) int64, columns []Column[T]) *Grid[T] {
	return &Grid[T]{source: source, id: id, columns: columns}
}

// Headers encabezados, con la columna de acciones al final.
func (g *Grid[T]) Headers() []string {
	out := make([]string, 0, len(g.columns)+1)
	for _, c := range g.columns {
		out = append(out, c.Header)
	}
	return append(out, ActionsHeader)
}

// Rows renderiza la ventana actual.
func (g *Grid[T]) Rows() []Row {
	return g.Render(g.source.Window().Items)
}

// Render renderiza items con las columnas de la grilla.
func (g *Grid[T]) Render(items []T) []Row {
	rows := make([]Row, len(items))
	for i, item := range items {
		cells := make([]string, 0, len(g.columns)+1)
		for _, c := range g.columns {
			cells = append(cells, c.Format(item))
		}
		rows[i] = Row{ID: g.id(item), Cells: append(cells, EditAction)}
	}
	return rows
}

// Find busca un registro de la ventana actual por id.
func (g *Grid[T]) Find(id int64) (T, bool) {
	for _, item := range g.source.Window().Items {
		if g.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
