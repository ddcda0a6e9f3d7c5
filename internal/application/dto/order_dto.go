package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest entrada para crear o actualizar un pedido.
// Al crear se usan CustomerID, TotalAmount, direcciones y notas (el estado inicia en PENDING).
// Al actualizar se usan Status, direcciones y notas; cliente y total no cambian.
type OrderRequest struct {
	CustomerID      *int64          `json:"customer_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status,omitempty"`
	ShippingAddress string          `json:"shipping_address"`
	BillingAddress  string          `json:"billing_address"`
	Notes           string          `json:"notes"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID              int64           `json:"id"`
	OrderNumber     string          `json:"order_number"`
	CustomerID      int64           `json:"customer_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	BillingAddress  string          `json:"billing_address"`
	Notes           string          `json:"notes"`
	OrderDate       time.Time       `json:"order_date"`
	ShippedDate     *time.Time      `json:"shipped_date"`
	DeliveredDate   *time.Time      `json:"delivered_date"`
	CreatedDate     time.Time       `json:"created_date"`
	UpdatedDate     *time.Time      `json:"updated_date"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse = ListResponse[OrderResponse]

// StatusUpdateRequest entrada de PATCH /api/orders/:id/status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// RevenueResponse salida de GET /api/orders/revenue.
type RevenueResponse struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// CountResponse salida de GET /api/orders/count.
type CountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
