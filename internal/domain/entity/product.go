package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Límites de Product.
const (
	ProductNameMaxLength        = 200
	ProductDescriptionMaxLength = 1000
	ProductSKUMaxLength         = 50
	ProductImageURLMaxLength    = 500
)

// MinProductPrice precio mínimo aceptado (0.01).
var MinProductPrice = decimal.New(1, -2)

// Product representa un artículo del catálogo. CategoryID es una referencia débil (solo lookup).
type Product struct {
	ID            int64
	Name          string
	Description   string
	SKU           string // único
	Price         decimal.Decimal
	StockQuantity int
	CategoryID    *int64
	ImageURL      string
	Active        bool
	CreatedDate   time.Time
	UpdatedDate   *time.Time
}
