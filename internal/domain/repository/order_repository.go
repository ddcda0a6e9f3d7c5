package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	GetByNumber(ctx context.Context, number string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page PageRequest) ([]*entity.Order, int, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error)
	ListByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Order, error)
	CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error)
	// SumTotalByStatus suma total_amount de los pedidos en el estado indicado (0 si no hay).
	SumTotalByStatus(ctx context.Context, status entity.OrderStatus) (decimal.Decimal, error)
}
