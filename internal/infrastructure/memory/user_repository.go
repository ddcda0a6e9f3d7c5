package memory

import (
	"cmp"
	"context"
	"strings"

	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct {
	t *table[entity.User]
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{t: newTable(
		func(u *entity.User) int64 { return u.ID },
		func(u *entity.User, id int64) { u.ID = id },
		func(a, b *entity.User) bool { return a.Username == b.Username || a.Email == b.Email },
		map[string]func(a, b *entity.User) int{
			"id":              func(a, b *entity.User) int { return cmp.Compare(a.ID, b.ID) },
			"username":        func(a, b *entity.User) int { return cmp.Compare(a.Username, b.Username) },
			"email":           func(a, b *entity.User) int { return cmp.Compare(a.Email, b.Email) },
			"enabled":         func(a, b *entity.User) int { return compareBool(a.Enabled, b.Enabled) },
			"created_date":    func(a, b *entity.User) int { return a.CreatedDate.Compare(b.CreatedDate) },
			"last_login_date": func(a, b *entity.User) int { return compareTimePtr(a.LastLoginDate, b.LastLoginDate) },
		},
	)}
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	return r.t.insert(user)
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return r.t.get(id), nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.t.find(func(u *entity.User) bool { return u.Username == username }), nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.t.find(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) }), nil
}

func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	return r.t.update(user)
}

func (r *UserRepo) Delete(_ context.Context, id int64) error {
	r.t.delete(id)
	return nil
}

func (r *UserRepo) List(_ context.Context, page repository.PageRequest) ([]*entity.User, int, error) {
	var pred func(*entity.User) bool
	if page.Search != "" {
		pred = func(u *entity.User) bool {
			return containsFold(page.Search, u.Username, u.Email, u.FirstName, u.LastName)
		}
	}
	list, total := r.t.page(pred, page)
	return list, total, nil
}
