package entity

import "time"

// Límites de longitud de Category.
const (
	CategoryNameMaxLength        = 100
	CategoryDescriptionMaxLength = 500
)

// Category representa una categoría del catálogo. La jerarquía es opcional y sin límite de niveles.
type Category struct {
	ID               int64
	Name             string // único
	Description      string
	ParentCategoryID *int64 // nil si es raíz
	Active           bool
	CreatedDate      time.Time
	UpdatedDate      *time.Time
}
