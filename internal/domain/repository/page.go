package repository

// Sort orden de un listado paginado. Field es el nombre lógico (ej. "name", "created_date").
type Sort struct {
	Field string
	Desc  bool
}

// PageRequest ventana de un listado: índice de página (base 0), tamaño, orden y búsqueda opcional.
type PageRequest struct {
	Page   int
	Size   int
	Sort   *Sort
	Search string // subcadena, sin distinguir mayúsculas; vacío = sin filtro
}

// Offset devuelve el desplazamiento de la ventana.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Campos ordenables por entidad. Cualquier otro valor se rechaza como entrada inválida.
var (
	CategorySortFields = []string{"id", "name", "active", "created_date", "updated_date"}
	ProductSortFields  = []string{"id", "name", "sku", "price", "stock_quantity", "active", "created_date", "updated_date"}
	CustomerSortFields = []string{"id", "first_name", "last_name", "email", "active", "created_date", "updated_date"}
	OrderSortFields    = []string{"id", "order_number", "total_amount", "status", "order_date", "created_date", "updated_date"}
	UserSortFields     = []string{"id", "username", "email", "enabled", "created_date", "last_login_date"}
)
