package repository

import (
	"context"

	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page PageRequest) ([]*entity.Customer, int, error)
	ListActive(ctx context.Context) ([]*entity.Customer, error)
}
