package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
	"github.com/jhoicas/ecommerce-backoffice/pkg/clock"
)

const entityUser = "user"

// UserUseCase aplica reglas de negocio para usuarios del back-office.
type UserUseCase struct {
	repo   repository.UserRepository
	clock  clock.Clock
	events ChangePublisher
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, clk clock.Clock, events ChangePublisher) *UserUseCase {
	return &UserUseCase{repo: repo, clock: clk, events: publisherOrNop(events)}
}

func validateUser(in dto.UserRequest, creating bool) error {
	var usernameErr error
	if creating {
		usernameErr = checkText("username", in.Username, entity.UserUsernameMaxLength, true)
	}
	return firstErr(
		usernameErr,
		checkEmail("email", in.Email, entity.UserEmailMaxLength),
		checkText("first_name", in.FirstName, entity.UserFirstNameMaxLength, false),
		checkText("last_name", in.LastName, entity.UserLastNameMaxLength, false),
	)
}

// Create crea un usuario habilitado. Username y email son únicos.
func (uc *UserUseCase) Create(ctx context.Context, in dto.UserRequest) (*dto.UserResponse, error) {
	if err := validateUser(in, true); err != nil {
		return nil, err
	}
	byName, err := uc.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if byName != nil {
		return nil, fmt.Errorf("username %q: %w", in.Username, domain.ErrDuplicate)
	}
	byEmail, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if byEmail != nil {
		return nil, fmt.Errorf("email %q: %w", in.Email, domain.ErrDuplicate)
	}
	user := &entity.User{
		Username:    in.Username,
		Email:       in.Email,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Enabled:     true,
		CreatedDate: uc.clock.Now(),
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.changed(ctx, user.ID, ActionCreated)
	out := ToUserResponse(user)
	return &out, nil
}

// Get obtiene un usuario por ID.
func (uc *UserUseCase) Get(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToUserResponse(user)
	return &out, nil
}

// Update cambia email, nombres y habilitación. El username no se modifica.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UserRequest) (*dto.UserResponse, error) {
	if err := validateUser(in, false); err != nil {
		return nil, err
	}
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	other, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, fmt.Errorf("email %q: %w", in.Email, domain.ErrDuplicate)
	}
	user.Email = in.Email
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	if in.Enabled != nil {
		user.Enabled = *in.Enabled
	}
	now := uc.clock.Now()
	user.UpdatedDate = &now
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	uc.changed(ctx, id, ActionUpdated)
	out := ToUserResponse(user)
	return &out, nil
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, id, ActionDeleted)
	return nil
}

// List lista usuarios con paginación, orden y búsqueda por username, email o nombres.
func (uc *UserUseCase) List(ctx context.Context, page repository.PageRequest) (*dto.UserListResponse, error) {
	page, err := normalizePage(page, repository.UserSortFields)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return &dto.UserListResponse{
		Items: mapAll(list, ToUserResponse),
		Page:  dto.PageResponse{Page: page.Page, Size: page.Size, Total: total},
	}, nil
}

// UpdateLastLogin sella la fecha de último ingreso. Un username desconocido se ignora.
func (uc *UserUseCase) UpdateLastLogin(ctx context.Context, username string) error {
	user, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	now := uc.clock.Now()
	user.LastLoginDate = &now
	return uc.repo.Update(ctx, user)
}

func (uc *UserUseCase) find(ctx context.Context, id int64) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("usuario %d: %w", id, domain.ErrNotFound)
	}
	return user, nil
}

func (uc *UserUseCase) changed(ctx context.Context, id int64, action ChangeAction) {
	uc.events.Publish(ctx, EntityChange{Entity: entityUser, ID: id, Action: action, At: uc.clock.Now()})
}
