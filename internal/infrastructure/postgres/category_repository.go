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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, name, description, parent_category_id, is_active, created_date, updated_date`

var categoryOrder = map[string]string{
	"id":           "id",
	"name":         "name",
	"active":       "is_active",
	"created_date": "created_date",
	"updated_date": "updated_date",
}

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.ParentCategoryID, &c.Active, &c.CreatedDate, &c.UpdatedDate); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste la categoría y asigna el ID generado.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (name, description, parent_category_id, is_active, created_date, updated_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, c.Name, c.Description, c.ParentCategoryID, c.Active, c.CreatedDate, c.UpdatedDate).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Devuelve nil, nil si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetByName busca por nombre exacto.
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE name = $1`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return c, nil
}

// Update actualiza todos los campos editables.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, description = $3, parent_category_id = $4, is_active = $5, updated_date = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Description, c.ParentCategoryID, c.Active, c.UpdatedDate)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina por ID. No falla si no existe.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// List devuelve una página filtrada por nombre o descripción y el total de coincidencias.
func (r *CategoryRepo) List(ctx context.Context, page repository.PageRequest) ([]*entity.Category, int, error) {
	where, args := "", []any{}
	if page.Search != "" {
		where = `WHERE LOWER(name) LIKE $1 OR LOWER(description) LIKE $1`
		args = append(args, likePattern(page.Search))
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}
	query := fmt.Sprintf(`SELECT %s FROM categories %s %s LIMIT $%d OFFSET $%d`,
		categoryColumns, where, orderBy(page.Sort, categoryOrder), len(args)+1, len(args)+2)
	rows, err := r.q.Query(ctx, query, append(args, page.Size, page.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	list, err := collect(rows, scanCategory)
	if err != nil {
		return nil, 0, fmt.Errorf("scan categories: %w", err)
	}
	return list, total, nil
}

// ListActive devuelve las categorías activas ordenadas por nombre.
func (r *CategoryRepo) ListActive(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE is_active ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list active categories: %w", err)
	}
	return collect(rows, scanCategory)
}

// ListByParent devuelve las subcategorías directas.
func (r *CategoryRepo) ListByParent(ctx context.Context, parentID int64) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE parent_category_id = $1 ORDER BY name`, parentID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	return collect(rows, scanCategory)
}

// Count total de categorías.
func (r *CategoryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}
