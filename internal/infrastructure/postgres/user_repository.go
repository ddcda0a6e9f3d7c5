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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, email, first_name, last_name, enabled, created_date, updated_date, last_login_date`

var userOrder = map[string]string{
	"id":              "id",
	"username":        "username",
	"email":           "email",
	"enabled":         "enabled",
	"created_date":    "created_date",
	"last_login_date": "last_login_date",
}

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.Enabled,
		&u.CreatedDate, &u.UpdatedDate, &u.LastLoginDate)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un usuario.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (username, email, first_name, last_name, enabled, created_date, updated_date, last_login_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		u.Username, u.Email, u.FirstName, u.LastName, u.Enabled, u.CreatedDate, u.UpdatedDate, u.LastLoginDate,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) getOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByUsername obtiene un usuario por nombre de usuario.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getOne(ctx, "username = $1", username)
}

// GetByEmail obtiene un usuario por email (sin distinguir mayúsculas).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, "LOWER(email) = LOWER($1)", email)
}

// Update actualiza un usuario. El username no se modifica.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users
		SET email = $2, first_name = $3, last_name = $4, enabled = $5, updated_date = $6, last_login_date = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, u.ID, u.Email, u.FirstName, u.LastName, u.Enabled, u.UpdatedDate, u.LastLoginDate)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un usuario.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// List página de usuarios; busca en username, email, nombre y apellido.
func (r *UserRepo) List(ctx context.Context, page repository.PageRequest) ([]*entity.User, int, error) {
	where, args := "", []any{}
	if page.Search != "" {
		where = `WHERE LOWER(username) LIKE $1 OR LOWER(email) LIKE $1 OR LOWER(first_name) LIKE $1 OR LOWER(last_name) LIKE $1`
		args = append(args, likePattern(page.Search))
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	query := fmt.Sprintf(`SELECT %s FROM users %s %s LIMIT $%d OFFSET $%d`,
		userColumns, where, orderBy(page.Sort, userOrder), len(args)+1, len(args)+2)
	rows, err := r.q.Query(ctx, query, append(args, page.Size, page.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	list, err := collect(rows, scanUser)
	if err != nil {
		return nil, 0, fmt.Errorf("scan users: %w", err)
	}
	return list, total, nil
}
