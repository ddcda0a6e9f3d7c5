package memory

import (
	"cmp"
	"context"
	"time"

	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo pedidos en memoria.
type OrderRepo struct {
	t *table[entity.Order]
}

// NewOrderRepository construye el repositorio vacío.
func NewOrderRepository() *OrderRepo {
	return &OrderRepo{t: newTable(
		func(o *entity.Order) int64 { return o.ID },
		func(o *entity.Order, id int64) { o.ID = id },
		func(a, b *entity.Order) bool { return a.OrderNumber == b.OrderNumber },
		map[string]func(a, b *entity.Order) int{
			"id":           func(a, b *entity.Order) int { return cmp.Compare(a.ID, b.ID) },
			"order_number": func(a, b *entity.Order) int { return cmp.Compare(a.OrderNumber, b.OrderNumber) },
			"total_amount": func(a, b *entity.Order) int { return a.TotalAmount.Cmp(b.TotalAmount) },
			"status":       func(a, b *entity.Order) int { return cmp.Compare(a.Status, b.Status) },
			"order_date":   func(a, b *entity.Order) int { return a.OrderDate.Compare(b.OrderDate) },
			"created_date": func(a, b *entity.Order) int { return a.CreatedDate.Compare(b.CreatedDate) },
			"updated_date": func(a, b *entity.Order) int { return compareTimePtr(a.UpdatedDate, b.UpdatedDate) },
		},
	)}
}

func (r *OrderRepo) Create(_ context.Context, order *entity.Order) error {
	return r.t.insert(order)
}

func (r *OrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	return r.t.get(id), nil
}

func (r *OrderRepo) GetByNumber(_ context.Context, number string) (*entity.Order, error) {
	return r.t.find(func(o *entity.Order) bool { return o.OrderNumber == number }), nil
}

func (r *OrderRepo) Update(_ context.Context, order *entity.Order) error {
	return r.t.update(order)
}

func (r *OrderRepo) Delete(_ context.Context, id int64) error {
	r.t.delete(id)
	return nil
}

func (r *OrderRepo) List(_ context.Context, page repository.PageRequest) ([]*entity.Order, int, error) {
	var pred func(*entity.Order) bool
	if page.Search != "" {
		pred = func(o *entity.Order) bool { return containsFold(page.Search, o.OrderNumber, string(o.Status)) }
	}
	list, total := r.t.page(pred, page)
	return list, total, nil
}

func (r *OrderRepo) ListByCustomer(_ context.Context, customerID int64) ([]*entity.Order, error) {
	return r.t.filter(func(o *entity.Order) bool { return o.CustomerID == customerID }), nil
}

func (r *OrderRepo) ListByStatus(_ context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	return r.t.filter(func(o *entity.Order) bool { return o.Status == status }), nil
}

func (r *OrderRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]*entity.Order, error) {
	return r.t.filter(func(o *entity.Order) bool {
		return !o.OrderDate.Before(from) && !o.OrderDate.After(to)
	}), nil
}

func (r *OrderRepo) CountByStatus(_ context.Context, status entity.OrderStatus) (int64, error) {
	return int64(len(r.t.filter(func(o *entity.Order) bool { return o.Status == status }))), nil
}

func (r *OrderRepo) SumTotalByStatus(_ context.Context, status entity.OrderStatus) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, o := range r.t.filter(func(o *entity.Order) bool { return o.Status == status }) {
		sum = sum.Add(o.TotalAmount)
	}
	return sum, nil
}
