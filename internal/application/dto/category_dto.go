package dto

import "time"

// CategoryRequest entrada para crear o actualizar una categoría.
// Active solo se considera en la actualización; al crear siempre queda activa.
type CategoryRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	ParentCategoryID *int64 `json:"parent_category_id"`
	Active           *bool  `json:"active,omitempty"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	ParentCategoryID *int64     `json:"parent_category_id"`
	Active           bool       `json:"active"`
	CreatedDate      time.Time  `json:"created_date"`
	UpdatedDate      *time.Time `json:"updated_date"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse = ListResponse[CategoryResponse]
