package repository

import (
	"context"

	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page PageRequest) ([]*entity.Product, int, error)
	ListActive(ctx context.Context) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error)
	// ListLowStock devuelve los productos con stock <= threshold, de menor a mayor stock.
	ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error)
}
