package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, first_name, last_name, email, phone, address, city, state, postal_code, country, is_active, created_date, updated_date`

var customerOrder = map[string]string{
	"id":           "id",
	"first_name":   "first_name",
	"last_name":    "last_name",
	"email":        "email",
	"active":       "is_active",
	"created_date": "created_date",
	"updated_date": "updated_date",
}

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address,
		&c.City, &c.State, &c.PostalCode, &c.Country, &c.Active, &c.CreatedDate, &c.UpdatedDate)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (first_name, last_name, email, phone, address, city, state, postal_code, country, is_active, created_date, updated_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.City, c.State,
		c.PostalCode, c.Country, c.Active, c.CreatedDate, c.UpdatedDate,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// GetByEmail busca por email sin distinguir mayúsculas.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE LOWER(email) = LOWER($1)`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by email: %w", err)
	}
	return c, nil
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $2, last_name = $3, email = $4, phone = $5, address = $6, city = $7,
		    state = $8, postal_code = $9, country = $10, is_active = $11, updated_date = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.City,
		c.State, c.PostalCode, c.Country, c.Active, c.UpdatedDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// List página de clientes; busca en nombre, apellido, email y teléfono.
func (r *CustomerRepo) List(ctx context.Context, page repository.PageRequest) ([]*entity.Customer, int, error) {
	where, args := "", []any{}
	if page.Search != "" {
		where = `WHERE LOWER(first_name) LIKE $1 OR LOWER(last_name) LIKE $1 OR LOWER(email) LIKE $1 OR LOWER(phone) LIKE $1`
		args = append(args, likePattern(page.Search))
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}
	query := fmt.Sprintf(`SELECT %s FROM customers %s %s LIMIT $%d OFFSET $%d`,
		customerColumns, where, orderBy(page.Sort, customerOrder), len(args)+1, len(args)+2)
	rows, err := r.q.Query(ctx, query, append(args, page.Size, page.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	list, err := collect(rows, scanCustomer)
	if err != nil {
		return nil, 0, fmt.Errorf("scan customers: %w", err)
	}
	return list, total, nil
}

// ListActive clientes activos ordenados por apellido y nombre.
func (r *CustomerRepo) ListActive(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+customerColumns+` FROM customers WHERE is_active ORDER BY last_name, first_name`)
	if err != nil {
		return nil, fmt.Errorf("list active customers: %w", err)
	}
	return collect(rows, scanCustomer)
}
