package dto

// PageResponse metadatos de la ventana devuelta: índice (base 0), tamaño y total de registros.
type PageResponse struct {
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
}

// HasMore indica si existen registros después de esta ventana.
func (p PageResponse) HasMore() bool {
	if p.Size <= 0 {
		return false
	}
	return (p.Page+1)*p.Size < p.Total
}

// ListResponse lista paginada genérica.
type ListResponse[T any] struct {
	Items []T          `json:"items"`
	Page  PageResponse `json:"page"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
