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

const entityCustomer = "customer"

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo   repository.CustomerRepository
	clock  clock.Clock
	cache  LookupCache
	events ChangePublisher
}

// NewCustomerUseCase construye el caso de uso. cache y events pueden ser nil.
func NewCustomerUseCase(repo repository.CustomerRepository, clk clock.Clock, cache LookupCache, events ChangePublisher) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, clock: clk, cache: cacheOrNop(cache), events: publisherOrNop(events)}
}

func validateCustomer(in dto.CustomerRequest) error {
	return firstErr(
		checkText("first_name", in.FirstName, entity.CustomerFirstNameMaxLength, true),
		checkText("last_name", in.LastName, entity.CustomerLastNameMaxLength, true),
		checkEmail("email", in.Email, entity.CustomerEmailMaxLength),
		checkText("phone", in.Phone, entity.CustomerPhoneMaxLength, false),
		checkText("address", in.Address, entity.CustomerAddressMaxLength, false),
		checkText("city", in.City, entity.CustomerLocalityMaxLength, false),
		checkText("state", in.State, entity.CustomerLocalityMaxLength, false),
		checkText("postal_code", in.PostalCode, entity.CustomerLocalityMaxLength, false),
		checkText("country", in.Country, entity.CustomerLocalityMaxLength, false),
	)
}

// Create crea un cliente activo. El email es único.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := validateCustomer(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	customer := &entity.Customer{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		PostalCode:  in.PostalCode,
		Country:     in.Country,
		Active:      true,
		CreatedDate: uc.clock.Now(),
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	uc.changed(ctx, customer.ID, ActionCreated)
	out := ToCustomerResponse(customer)
	return &out, nil
}

// Get obtiene un cliente por ID.
func (uc *CustomerUseCase) Get(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToCustomerResponse(customer)
	return &out, nil
}

// GetByEmail obtiene un cliente por email.
func (uc *CustomerUseCase) GetByEmail(ctx context.Context, email string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %q: %w", email, domain.ErrNotFound)
	}
	out := ToCustomerResponse(customer)
	return &out, nil
}

// Update reemplaza los campos editables del cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := validateCustomer(in); err != nil {
		return nil, err
	}
	customer, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	other, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, domain.ErrDuplicate
	}
	customer.FirstName = in.FirstName
	customer.LastName = in.LastName
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.Address = in.Address
	customer.City = in.City
	customer.State = in.State
	customer.PostalCode = in.PostalCode
	customer.Country = in.Country
	if in.Active != nil {
		customer.Active = *in.Active
	}
	now := uc.clock.Now()
	customer.UpdatedDate = &now
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	uc.changed(ctx, id, ActionUpdated)
	out := ToCustomerResponse(customer)
	return &out, nil
}

// Delete elimina un cliente. Sus pedidos conservan el customer_id (referencia débil).
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, id, ActionDeleted)
	return nil
}

// List lista clientes con paginación, orden y búsqueda por nombre, apellido, email o teléfono.
func (uc *CustomerUseCase) List(ctx context.Context, page repository.PageRequest) (*dto.CustomerListResponse, error) {
	page, err := normalizePage(page, repository.CustomerSortFields)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerListResponse{
		Items: mapAll(list, ToCustomerResponse),
		Page:  dto.PageResponse{Page: page.Page, Size: page.Size, Total: total},
	}, nil
}

// GetActive devuelve los clientes activos (lista de lookup, con caché).
func (uc *CustomerUseCase) GetActive(ctx context.Context) ([]dto.CustomerResponse, error) {
	var cached []dto.CustomerResponse
	if uc.cache.Get(ctx, CacheKeyActiveCustomers, &cached) {
		return cached, nil
	}
	version, verr := uc.cache.Version(ctx, CacheKeyActiveCustomers)
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := mapAll(list, ToCustomerResponse)
	if verr == nil {
		_ = uc.cache.SetIfVersion(ctx, CacheKeyActiveCustomers, out, version)
	}
	return out, nil
}

func (uc *CustomerUseCase) find(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %d: %w", id, domain.ErrNotFound)
	}
	return customer, nil
}

func (uc *CustomerUseCase) changed(ctx context.Context, id int64, action ChangeAction) {
	_ = uc.cache.Invalidate(ctx, CacheKeyActiveCustomers)
	uc.events.Publish(ctx, EntityChange{Entity: entityCustomer, ID: id, Action: action, At: uc.clock.Now()})
}
