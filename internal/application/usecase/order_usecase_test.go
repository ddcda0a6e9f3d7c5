package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/usecase"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/jhoicas/ecommerce-backoffice/internal/infrastructure/memory"
	"github.com/jhoicas/ecommerce-backoffice/pkg/clock"
)

type orderFixture struct {
	uc         *usecase.OrderUseCase
	clock      *clock.FakeClock
	customerID int64
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	store := memory.NewStore()
	customer := &entity.Customer{FirstName: "John", LastName: "Doe", Email: "john@example.com", Active: true, CreatedDate: testNow}
	require.NoError(t, store.Customers.Create(context.Background(), customer))
	clk := clock.NewFake(testNow)
	return &orderFixture{
		uc:         usecase.NewOrderUseCase(store.Orders, store.Customers, clk, nil),
		clock:      clk,
		customerID: customer.ID,
	}
}

func (f *orderFixture) create(t *testing.T, total string) *dto.OrderResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), dto.OrderRequest{
		CustomerID:  &f.customerID,
		TotalAmount: decimal.RequireFromString(total),
	})
	require.NoError(t, err)
	return out
}

func TestNewOrderNumber_Formato(t *testing.T) {
	for range 20 {
		assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, usecase.NewOrderNumber())
	}
}

func TestOrderUseCase_CreateInicializaPedido(t *testing.T) {
	f := newOrderFixture(t)

	got := f.create(t, "99.90")
	assert.Equal(t, string(entity.OrderPending), got.Status)
	assert.True(t, testNow.Equal(got.OrderDate))
	assert.True(t, testNow.Equal(got.CreatedDate))
	assert.Nil(t, got.ShippedDate)
	assert.Nil(t, got.DeliveredDate)
}

func TestOrderUseCase_CreateValidaciones(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	missing := int64(77)

	tests := []struct {
		name string
		in   dto.OrderRequest
	}{
		{"sin cliente", dto.OrderRequest{TotalAmount: decimal.NewFromInt(1)}},
		{"cliente inexistente", dto.OrderRequest{CustomerID: &missing, TotalAmount: decimal.NewFromInt(1)}},
		{"total cero", dto.OrderRequest{CustomerID: &f.customerID}},
		{"total negativo", dto.OrderRequest{CustomerID: &f.customerID, TotalAmount: decimal.NewFromInt(-3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Create(ctx, tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestOrderUseCase_ReintentaNumeroDuplicado(t *testing.T) {
	f := newOrderFixture(t)
	numbers := []string{"ORD-AAAAAAAA", "ORD-AAAAAAAA", "ORD-BBBBBBBB"}
	f.uc.WithNumberGenerator(func() string {
		n := numbers[0]
		numbers = numbers[1:]
		return n
	})

	first := f.create(t, "10")
	second := f.create(t, "20")
	assert.Equal(t, "ORD-AAAAAAAA", first.OrderNumber)
	assert.Equal(t, "ORD-BBBBBBBB", second.OrderNumber)
}

func TestOrderUseCase_AgotaReintentos(t *testing.T) {
	f := newOrderFixture(t)
	f.uc.WithNumberGenerator(func() string { return "ORD-FIXED000" })

	f.create(t, "10")
	_, err := f.uc.Create(context.Background(), dto.OrderRequest{CustomerID: &f.customerID, TotalAmount: decimal.NewFromInt(5)})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestOrderUseCase_EstadosSellanFechas(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.create(t, "10")

	f.clock.Advance(time.Hour)
	shipped, err := f.uc.UpdateStatus(ctx, order.ID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, "SHIPPED", shipped.Status)
	require.NotNil(t, shipped.ShippedDate)
	assert.True(t, testNow.Add(time.Hour).Equal(*shipped.ShippedDate))

	f.clock.Advance(time.Hour)
	delivered, err := f.uc.UpdateStatus(ctx, order.ID, "DELIVERED")
	require.NoError(t, err)
	require.NotNil(t, delivered.DeliveredDate)
	assert.True(t, testNow.Add(2*time.Hour).Equal(*delivered.DeliveredDate))
	assert.True(t, testNow.Add(time.Hour).Equal(*delivered.ShippedDate), "la fecha de envío se conserva")

	_, err = f.uc.UpdateStatus(ctx, order.ID, "EXTRAVIADO")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUseCase_UpdateSinCambioDeEstadoNoSella(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.create(t, "10")

	f.clock.Advance(time.Hour)
	updated, err := f.uc.Update(ctx, order.ID, dto.OrderRequest{Notes: "dejar en portería"})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", updated.Status)
	assert.Equal(t, "dejar en portería", updated.Notes)
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(10)), "el total no es editable")

	shipped, err := f.uc.Update(ctx, order.ID, dto.OrderRequest{Status: "SHIPPED"})
	require.NoError(t, err)
	require.NotNil(t, shipped.ShippedDate)

	f.clock.Advance(time.Hour)
	again, err := f.uc.Update(ctx, order.ID, dto.OrderRequest{Status: "SHIPPED"})
	require.NoError(t, err)
	assert.True(t, shipped.ShippedDate.Equal(*again.ShippedDate))
}

func TestOrderUseCase_MetricasYConsultas(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	a := f.create(t, "100.50")
	b := f.create(t, "49.50")
	f.create(t, "7")
	_, err := f.uc.UpdateStatus(ctx, a.ID, "DELIVERED")
	require.NoError(t, err)
	_, err = f.uc.UpdateStatus(ctx, b.ID, "DELIVERED")
	require.NoError(t, err)

	revenue, err := f.uc.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.True(t, revenue.Equal(decimal.NewFromInt(150)), revenue.String())

	pending, err := f.uc.CountByStatus(ctx, "pending")
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)

	delivered, err := f.uc.GetByStatus(ctx, "DELIVERED")
	require.NoError(t, err)
	assert.Len(t, delivered, 2)

	byCustomer, err := f.uc.GetByCustomer(ctx, f.customerID)
	require.NoError(t, err)
	assert.Len(t, byCustomer, 3)

	inRange, err := f.uc.GetByDateRange(ctx, testNow, testNow)
	require.NoError(t, err)
	assert.Len(t, inRange, 3, "el rango es inclusivo")

	_, err = f.uc.GetByDateRange(ctx, testNow, testNow.Add(-time.Second))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUseCase_RevenueSinEntregadosEsCero(t *testing.T) {
	f := newOrderFixture(t)
	f.create(t, "10")

	revenue, err := f.uc.TotalRevenue(context.Background())
	require.NoError(t, err)
	assert.True(t, revenue.IsZero())
}
