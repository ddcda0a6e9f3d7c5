package seed_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/seed"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
	"github.com/jhoicas/ecommerce-backoffice/internal/infrastructure/memory"
	"github.com/jhoicas/ecommerce-backoffice/pkg/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func TestRun_SiembraCatalogoVacio(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	seeded, err := seed.NewInitializer(s, clock.NewFake(now)).Run(ctx, s.Categories)
	require.NoError(t, err)
	assert.True(t, seeded)

	n, err := s.Categories.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	laptops, err := s.Categories.GetByName(ctx, "Laptops")
	require.NoError(t, err)
	electronics, err := s.Categories.GetByName(ctx, "Electronics")
	require.NoError(t, err)
	require.NotNil(t, laptops.ParentCategoryID)
	assert.Equal(t, electronics.ID, *laptops.ParentCategoryID)

	book, err := s.Products.GetBySKU(ctx, "BOOK-JAVA")
	require.NoError(t, err)
	assert.Equal(t, 200, book.StockQuantity)
	assert.True(t, decimal.RequireFromString("49.99").Equal(book.Price))

	pending, err := s.Orders.ListByStatus(ctx, entity.OrderPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, pending[0].OrderNumber)
	assert.Equal(t, "First order", pending[0].Notes)
	assert.Equal(t, now, pending[0].OrderDate)
}

func TestRun_NoSiembraSiHayCategorias(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Categories.Create(ctx, &entity.Category{Name: "Existente", Active: true, CreatedDate: now}))

	seeded, err := seed.NewInitializer(s, clock.NewFake(now)).Run(ctx, s.Categories)
	require.NoError(t, err)
	assert.False(t, seeded)

	_, total, err := s.Products.List(ctx, repository.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
}

type failingTx struct{}

func (failingTx) RunInTx(context.Context, func(context.Context, seed.Repositories) error) error {
	return errors.New("tx abortada")
}

func TestRun_PropagaErrorDeTransaccion(t *testing.T) {
	s := memory.NewStore()
	seeded, err := seed.NewInitializer(failingTx{}, clock.NewFake(now)).Run(context.Background(), s.Categories)
	assert.Error(t, err)
	assert.False(t, seeded)
}
