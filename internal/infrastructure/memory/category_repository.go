package memory

import (
	"cmp"
	"context"

	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo categorías en memoria.
type CategoryRepo struct {
	t *table[entity.Category]
}

// NewCategoryRepository construye el repositorio vacío.
func NewCategoryRepository() *CategoryRepo {
	return &CategoryRepo{t: newTable(
		func(c *entity.Category) int64 { return c.ID },
		func(c *entity.Category, id int64) { c.ID = id },
		func(a, b *entity.Category) bool { return a.Name == b.Name },
		map[string]func(a, b *entity.Category) int{
			"id":           func(a, b *entity.Category) int { return cmp.Compare(a.ID, b.ID) },
			"name":         func(a, b *entity.Category) int { return cmp.Compare(a.Name, b.Name) },
			"active":       func(a, b *entity.Category) int { return compareBool(a.Active, b.Active) },
			"created_date": func(a, b *entity.Category) int { return a.CreatedDate.Compare(b.CreatedDate) },
			"updated_date": func(a, b *entity.Category) int { return compareTimePtr(a.UpdatedDate, b.UpdatedDate) },
		},
	)}
}

func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	return r.t.insert(category)
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	return r.t.get(id), nil
}

func (r *CategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	return r.t.find(func(c *entity.Category) bool { return c.Name == name }), nil
}

func (r *CategoryRepo) Update(_ context.Context, category *entity.Category) error {
	return r.t.update(category)
}

func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	r.t.delete(id)
	return nil
}

func (r *CategoryRepo) List(_ context.Context, page repository.PageRequest) ([]*entity.Category, int, error) {
	var pred func(*entity.Category) bool
	if page.Search != "" {
		pred = func(c *entity.Category) bool { return containsFold(page.Search, c.Name, c.Description) }
	}
	list, total := r.t.page(pred, page)
	return list, total, nil
}

func (r *CategoryRepo) ListActive(_ context.Context) ([]*entity.Category, error) {
	return r.t.filter(func(c *entity.Category) bool { return c.Active }), nil
}

func (r *CategoryRepo) ListByParent(_ context.Context, parentID int64) ([]*entity.Category, error) {
	return r.t.filter(func(c *entity.Category) bool {
		return c.ParentCategoryID != nil && *c.ParentCategoryID == parentID
	}), nil
}

func (r *CategoryRepo) Count(_ context.Context) (int, error) {
	return r.t.count(), nil
}
