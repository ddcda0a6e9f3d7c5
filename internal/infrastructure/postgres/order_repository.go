package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, order_number, customer_id, total_amount, status, shipping_address, billing_address, notes,
	order_date, shipped_date, delivered_date, created_date, updated_date`

var orderOrder = map[string]string{
	"id":           "id",
	"order_number": "order_number",
	"total_amount": "total_amount",
	"status":       "status",
	"order_date":   "order_date",
	"created_date": "created_date",
	"updated_date": "updated_date",
}

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var status string
	err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.TotalAmount, &status,
		&o.ShippingAddress, &o.BillingAddress, &o.Notes, &o.OrderDate, &o.ShippedDate,
		&o.DeliveredDate, &o.CreatedDate, &o.UpdatedDate)
	if err != nil {
		return nil, err
	}
	o.Status = entity.OrderStatus(status)
	return &o, nil
}

// Create persiste un pedido. Un número repetido devuelve domain.ErrDuplicate.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (order_number, customer_id, total_amount, status, shipping_address, billing_address, notes,
		                    order_date, shipped_date, delivered_date, created_date, updated_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		o.OrderNumber, o.CustomerID, o.TotalAmount, string(o.Status), o.ShippingAddress, o.BillingAddress,
		o.Notes, o.OrderDate, o.ShippedDate, o.DeliveredDate, o.CreatedDate, o.UpdatedDate,
	).Scan(&o.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// GetByNumber obtiene un pedido por número.
func (r *OrderRepo) GetByNumber(ctx context.Context, number string) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by number: %w", err)
	}
	return o, nil
}

// Update actualiza un pedido. El número y el cliente no cambian.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `
		UPDATE orders
		SET total_amount = $2, status = $3, shipping_address = $4, billing_address = $5, notes = $6,
		    shipped_date = $7, delivered_date = $8, updated_date = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.TotalAmount, string(o.Status), o.ShippingAddress, o.BillingAddress, o.Notes,
		o.ShippedDate, o.DeliveredDate, o.UpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina un pedido.
func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// List página de pedidos; busca en número y estado.
func (r *OrderRepo) List(ctx context.Context, page repository.PageRequest) ([]*entity.Order, int, error) {
	where, args := "", []any{}
	if page.Search != "" {
		where = `WHERE LOWER(order_number) LIKE $1 OR LOWER(status) LIKE $1`
		args = append(args, likePattern(page.Search))
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM orders `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}
	query := fmt.Sprintf(`SELECT %s FROM orders %s %s LIMIT $%d OFFSET $%d`,
		orderColumns, where, orderBy(page.Sort, orderOrder), len(args)+1, len(args)+2)
	rows, err := r.q.Query(ctx, query, append(args, page.Size, page.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	list, err := collect(rows, scanOrder)
	if err != nil {
		return nil, 0, fmt.Errorf("scan orders: %w", err)
	}
	return list, total, nil
}

// ListByCustomer pedidos de un cliente, más recientes primero.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, `SELECT `+orderColumns+` FROM orders WHERE customer_id = $1 ORDER BY order_date DESC, id DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders by customer: %w", err)
	}
	return collect(rows, scanOrder)
}

// ListByStatus pedidos en un estado.
func (r *OrderRepo) ListByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, `SELECT `+orderColumns+` FROM orders WHERE status = $1 ORDER BY order_date DESC, id DESC`, string(status))
	if err != nil {
		return nil, fmt.Errorf("list orders by status: %w", err)
	}
	return collect(rows, scanOrder)
}

// ListByDateRange pedidos con order_date en [from, to].
func (r *OrderRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_date BETWEEN $1 AND $2 ORDER BY order_date, id`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list orders by date: %w", err)
	}
	return collect(rows, scanOrder)
}

// CountByStatus cantidad de pedidos en un estado.
func (r *OrderRepo) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE status = $1`, string(status)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders by status: %w", err)
	}
	return n, nil
}

// SumTotalByStatus suma de total_amount en un estado; 0 si no hay pedidos.
func (r *OrderRepo) SumTotalByStatus(ctx context.Context, status entity.OrderStatus) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status = $1`, string(status)).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum orders by status: %w", err)
	}
	return total, nil
}
