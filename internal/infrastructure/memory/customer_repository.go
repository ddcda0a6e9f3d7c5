package memory

import (
	"cmp"
	"context"
	"strings"

	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo clientes en memoria.
type CustomerRepo struct {
	t *table[entity.Customer]
}

// NewCustomerRepository construye el repositorio vacío.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{t: newTable(
		func(c *entity.Customer) int64 { return c.ID },
		func(c *entity.Customer, id int64) { c.ID = id },
		func(a, b *entity.Customer) bool { return a.Email == b.Email },
		map[string]func(a, b *entity.Customer) int{
			"id":           func(a, b *entity.Customer) int { return cmp.Compare(a.ID, b.ID) },
			"first_name":   func(a, b *entity.Customer) int { return cmp.Compare(a.FirstName, b.FirstName) },
			"last_name":    func(a, b *entity.Customer) int { return cmp.Compare(a.LastName, b.LastName) },
			"email":        func(a, b *entity.Customer) int { return cmp.Compare(a.Email, b.Email) },
			"active":       func(a, b *entity.Customer) int { return compareBool(a.Active, b.Active) },
			"created_date": func(a, b *entity.Customer) int { return a.CreatedDate.Compare(b.CreatedDate) },
			"updated_date": func(a, b *entity.Customer) int { return compareTimePtr(a.UpdatedDate, b.UpdatedDate) },
		},
	)}
}

func (r *CustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	return r.t.insert(customer)
}

func (r *CustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	return r.t.get(id), nil
}

func (r *CustomerRepo) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	return r.t.find(func(c *entity.Customer) bool { return strings.EqualFold(c.Email, email) }), nil
}

func (r *CustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	return r.t.update(customer)
}

func (r *CustomerRepo) Delete(_ context.Context, id int64) error {
	r.t.delete(id)
	return nil
}

func (r *CustomerRepo) List(_ context.Context, page repository.PageRequest) ([]*entity.Customer, int, error) {
	var pred func(*entity.Customer) bool
	if page.Search != "" {
		pred = func(c *entity.Customer) bool {
			return containsFold(page.Search, c.FirstName, c.LastName, c.Email, c.Phone)
		}
	}
	list, total := r.t.page(pred, page)
	return list, total, nil
}

func (r *CustomerRepo) ListActive(_ context.Context) ([]*entity.Customer, error) {
	return r.t.filter(func(c *entity.Customer) bool { return c.Active }), nil
}
