package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	t *table[entity.Product]
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{t: newTable(
		func(p *entity.Product) int64 { return p.ID },
		func(p *entity.Product, id int64) { p.ID = id },
		func(a, b *entity.Product) bool { return a.SKU == b.SKU },
		map[string]func(a, b *entity.Product) int{
			"id":             func(a, b *entity.Product) int { return cmp.Compare(a.ID, b.ID) },
			"name":           func(a, b *entity.Product) int { return cmp.Compare(a.Name, b.Name) },
			"sku":            func(a, b *entity.Product) int { return cmp.Compare(a.SKU, b.SKU) },
			"price":          func(a, b *entity.Product) int { return a.Price.Cmp(b.Price) },
			"stock_quantity": func(a, b *entity.Product) int { return cmp.Compare(a.StockQuantity, b.StockQuantity) },
			"active":         func(a, b *entity.Product) int { return compareBool(a.Active, b.Active) },
			"created_date":   func(a, b *entity.Product) int { return a.CreatedDate.Compare(b.CreatedDate) },
			"updated_date":   func(a, b *entity.Product) int { return compareTimePtr(a.UpdatedDate, b.UpdatedDate) },
		},
	)}
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.t.insert(product)
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return r.t.get(id), nil
}

func (r *ProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return r.t.find(func(p *entity.Product) bool { return p.SKU == sku }), nil
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	return r.t.update(product)
}

func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.t.delete(id)
	return nil
}

func (r *ProductRepo) List(_ context.Context, page repository.PageRequest) ([]*entity.Product, int, error) {
	var pred func(*entity.Product) bool
	if page.Search != "" {
		pred = func(p *entity.Product) bool { return containsFold(page.Search, p.Name, p.Description, p.SKU) }
	}
	list, total := r.t.page(pred, page)
	return list, total, nil
}

func (r *ProductRepo) ListActive(_ context.Context) ([]*entity.Product, error) {
	return r.t.filter(func(p *entity.Product) bool { return p.Active }), nil
}

func (r *ProductRepo) ListByCategory(_ context.Context, categoryID int64) ([]*entity.Product, error) {
	return r.t.filter(func(p *entity.Product) bool {
		return p.CategoryID != nil && *p.CategoryID == categoryID
	}), nil
}

func (r *ProductRepo) ListLowStock(_ context.Context, threshold int) ([]*entity.Product, error) {
	list := r.t.filter(func(p *entity.Product) bool { return p.StockQuantity <= threshold })
	slices.SortStableFunc(list, func(a, b *entity.Product) int { return cmp.Compare(a.StockQuantity, b.StockQuantity) })
	return list, nil
}
