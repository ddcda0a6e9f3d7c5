package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Límites de Order.
const (
	OrderNumberMaxLength  = 50
	OrderStatusMaxLength  = 50
	OrderAddressMaxLength = 500
	OrderNotesMaxLength   = 1000
)

// OrderStatus estado del pedido.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

var validOrderStatuses = map[OrderStatus]bool{
	OrderPending:    true,
	OrderProcessing: true,
	OrderConfirmed:  true,
	OrderShipped:    true,
	OrderDelivered:  true,
	OrderCancelled:  true,
}

// Valid indica si el estado pertenece al catálogo.
func (s OrderStatus) Valid() bool {
	return validOrderStatuses[s]
}

// Order representa un pedido de un cliente. CustomerID es una referencia débil.
type Order struct {
	ID              int64
	OrderNumber     string // único, "ORD-XXXXXXXX"
	CustomerID      int64
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	ShippingAddress string
	BillingAddress  string
	Notes           string
	OrderDate       time.Time
	ShippedDate     *time.Time
	DeliveredDate   *time.Time
	CreatedDate     time.Time
	UpdatedDate     *time.Time
}

// ApplyStatus cambia el estado y sella la fecha de envío o entrega cuando corresponde.
func (o *Order) ApplyStatus(status OrderStatus, now time.Time) {
	o.Status = status
	switch status {
	case OrderShipped:
		o.ShippedDate = &now
	case OrderDelivered:
		o.DeliveredDate = &now
	}
}
