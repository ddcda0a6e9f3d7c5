package repository

import (
	"context"

	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page PageRequest) ([]*entity.Category, int, error)
	ListActive(ctx context.Context) ([]*entity.Category, error)
	ListByParent(ctx context.Context, parentID int64) ([]*entity.Category, error)
	Count(ctx context.Context) (int, error)
}
