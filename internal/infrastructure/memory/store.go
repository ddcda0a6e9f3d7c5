package memory

import (
	"context"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/seed"
)

var _ seed.TxRunner = (*Store)(nil)

// Store agrupa los repositorios en memoria de una instancia del servicio.
type Store struct {
	Categories *CategoryRepo
	Products   *ProductRepo
	Customers  *CustomerRepo
	Orders     *OrderRepo
	Users      *UserRepo
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		Categories: NewCategoryRepository(),
		Products:   NewProductRepository(),
		Customers:  NewCustomerRepository(),
		Orders:     NewOrderRepository(),
		Users:      NewUserRepository(),
	}
}

// RunInTx ejecuta fn sobre los repositorios en memoria. No hay rollback: un fallo deja lo ya escrito.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, repos seed.Repositories) error) error {
	return fn(ctx, seed.Repositories{
		Categories: s.Categories,
		Products:   s.Products,
		Customers:  s.Customers,
		Orders:     s.Orders,
	})
}
