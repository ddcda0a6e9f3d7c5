package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o actualizar un producto. Active solo aplica al actualizar.
type ProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	SKU           string          `json:"sku"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	CategoryID    *int64          `json:"category_id"`
	ImageURL      string          `json:"image_url"`
	Active        *bool           `json:"active,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	SKU           string          `json:"sku"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	CategoryID    *int64          `json:"category_id"`
	ImageURL      string          `json:"image_url"`
	Active        bool            `json:"active"`
	CreatedDate   time.Time       `json:"created_date"`
	UpdatedDate   *time.Time      `json:"updated_date"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse = ListResponse[ProductResponse]

// StockUpdateRequest entrada de PATCH /api/products/:id/stock.
type StockUpdateRequest struct {
	StockQuantity *int `json:"stock_quantity"`
}
