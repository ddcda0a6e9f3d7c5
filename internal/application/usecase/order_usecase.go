package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
	"github.com/jhoicas/ecommerce-backoffice/pkg/clock"
	"github.com/shopspring/decimal"
)

const entityOrder = "order"

// orderNumberAttempts reintentos ante colisión del número generado.
const orderNumberAttempts = 3

// NewOrderNumber genera "ORD-" + los primeros 8 caracteres (en mayúscula) de un UUID aleatorio.
func NewOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// OrderUseCase casos de uso de pedidos: CRUD, cambios de estado y métricas.
type OrderUseCase struct {
	repo      repository.OrderRepository
	customers repository.CustomerRepository
	clock     clock.Clock
	events    ChangePublisher
	numbers   func() string
}

// NewOrderUseCase construye el caso de uso. customers valida la referencia al cliente.
func NewOrderUseCase(repo repository.OrderRepository, customers repository.CustomerRepository, clk clock.Clock, events ChangePublisher) *OrderUseCase {
	return &OrderUseCase{repo: repo, customers: customers, clock: clk, events: publisherOrNop(events), numbers: NewOrderNumber}
}

// WithNumberGenerator reemplaza el generador de números de pedido (tests).
func (uc *OrderUseCase) WithNumberGenerator(fn func() string) *OrderUseCase {
	uc.numbers = fn
	return uc
}

func validateOrderText(in dto.OrderRequest) error {
	return firstErr(
		checkText("shipping_address", in.ShippingAddress, entity.OrderAddressMaxLength, false),
		checkText("billing_address", in.BillingAddress, entity.OrderAddressMaxLength, false),
		checkText("notes", in.Notes, entity.OrderNotesMaxLength, false),
	)
}

func parseStatus(s string) (entity.OrderStatus, error) {
	status := entity.OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", invalidf("estado de pedido desconocido %q", s)
	}
	return status, nil
}

// Create registra un pedido en estado PENDING con número generado y fecha del pedido = ahora.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.OrderRequest) (*dto.OrderResponse, error) {
	if err := validateOrderText(in); err != nil {
		return nil, err
	}
	if in.CustomerID == nil {
		return nil, invalidf("customer_id es requerido")
	}
	if !in.TotalAmount.IsPositive() {
		return nil, invalidf("total_amount debe ser mayor que cero")
	}
	customer, err := uc.customers.GetByID(ctx, *in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, invalidf("el cliente %d no existe", *in.CustomerID)
	}
	now := uc.clock.Now()
	order := &entity.Order{
		CustomerID:      *in.CustomerID,
		TotalAmount:     in.TotalAmount,
		Status:          entity.OrderPending,
		ShippingAddress: in.ShippingAddress,
		BillingAddress:  in.BillingAddress,
		Notes:           in.Notes,
		OrderDate:       now,
		CreatedDate:     now,
	}
	for attempt := 1; ; attempt++ {
		order.OrderNumber = uc.numbers()
		err = uc.repo.Create(ctx, order)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicate) || attempt == orderNumberAttempts {
			return nil, err
		}
	}
	uc.changed(ctx, order.ID, ActionCreated)
	out := ToOrderResponse(order)
	return &out, nil
}

// Get obtiene un pedido por ID.
func (uc *OrderUseCase) Get(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToOrderResponse(order)
	return &out, nil
}

// Update cambia estado, direcciones y notas. Cliente, total y número no son editables.
func (uc *OrderUseCase) Update(ctx context.Context, id int64, in dto.OrderRequest) (*dto.OrderResponse, error) {
	if err := validateOrderText(in); err != nil {
		return nil, err
	}
	order, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	status := order.Status
	if in.Status != "" {
		if status, err = parseStatus(in.Status); err != nil {
			return nil, err
		}
	}
	now := uc.clock.Now()
	if status != order.Status {
		order.ApplyStatus(status, now)
	}
	order.ShippingAddress = in.ShippingAddress
	order.BillingAddress = in.BillingAddress
	order.Notes = in.Notes
	order.UpdatedDate = &now
	if err := uc.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	uc.changed(ctx, id, ActionUpdated)
	out := ToOrderResponse(order)
	return &out, nil
}

// UpdateStatus cambia solo el estado; SHIPPED y DELIVERED sellan su fecha.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id int64, rawStatus string) (*dto.OrderResponse, error) {
	status, err := parseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	order, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	order.ApplyStatus(status, now)
	order.UpdatedDate = &now
	if err := uc.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	uc.changed(ctx, id, ActionUpdated)
	out := ToOrderResponse(order)
	return &out, nil
}

// Delete elimina un pedido por ID.
func (uc *OrderUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, id, ActionDeleted)
	return nil
}

// List lista pedidos con paginación, orden y búsqueda por número o estado.
func (uc *OrderUseCase) List(ctx context.Context, page repository.PageRequest) (*dto.OrderListResponse, error) {
	page, err := normalizePage(page, repository.OrderSortFields)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return &dto.OrderListResponse{
		Items: mapAll(list, ToOrderResponse),
		Page:  dto.PageResponse{Page: page.Page, Size: page.Size, Total: total},
	}, nil
}

// GetByCustomer devuelve los pedidos de un cliente.
func (uc *OrderUseCase) GetByCustomer(ctx context.Context, customerID int64) ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return mapAll(list, ToOrderResponse), nil
}

// GetByStatus devuelve los pedidos en un estado.
func (uc *OrderUseCase) GetByStatus(ctx context.Context, rawStatus string) ([]dto.OrderResponse, error) {
	status, err := parseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return mapAll(list, ToOrderResponse), nil
}

// GetByDateRange devuelve los pedidos con fecha de pedido en [from, to].
func (uc *OrderUseCase) GetByDateRange(ctx context.Context, from, to time.Time) ([]dto.OrderResponse, error) {
	if to.Before(from) {
		return nil, invalidf("el rango de fechas está invertido")
	}
	list, err := uc.repo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return mapAll(list, ToOrderResponse), nil
}

// CountByStatus cuenta los pedidos en un estado.
func (uc *OrderUseCase) CountByStatus(ctx context.Context, rawStatus string) (int64, error) {
	status, err := parseStatus(rawStatus)
	if err != nil {
		return 0, err
	}
	return uc.repo.CountByStatus(ctx, status)
}

// TotalRevenue suma los pedidos entregados (DELIVERED); 0 si no hay.
func (uc *OrderUseCase) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	total, err := uc.repo.SumTotalByStatus(ctx, entity.OrderDelivered)
	if err != nil {
		return decimal.Zero, err
	}
	return total.Round(2), nil
}

func (uc *OrderUseCase) find(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("pedido %d: %w", id, domain.ErrNotFound)
	}
	return order, nil
}

func (uc *OrderUseCase) changed(ctx context.Context, id int64, action ChangeAction) {
	uc.events.Publish(ctx, EntityChange{Entity: entityOrder, ID: id, Action: action, At: uc.clock.Now()})
}
