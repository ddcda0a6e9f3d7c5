// Package analytics contiene el resumen del dashboard del back-office y su reporte PDF.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/usecase"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
	"github.com/jhoicas/ecommerce-backoffice/pkg/clock"
	"github.com/shopspring/decimal"
)

const (
	// DefaultLowStockThreshold umbral de stock bajo del dashboard.
	DefaultLowStockThreshold = 10
	// RecentOrdersLimit pedidos recientes mostrados.
	RecentOrdersLimit = 5
)

// DashboardUseCase arma el resumen con las seis cifras del dashboard.
//
// Fuente de datos: repositorios de productos, clientes y pedidos (solo lectura).
type DashboardUseCase struct {
	products  repository.ProductRepository
	customers repository.CustomerRepository
	orders    repository.OrderRepository
	clock     clock.Clock
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	orders repository.OrderRepository,
	clk clock.Clock,
) *DashboardUseCase {
	return &DashboardUseCase{products: products, customers: customers, orders: orders, clock: clk}
}

// GetSummary consulta en paralelo las seis cifras; el primer error (en orden fijo) aborta el resumen.
//
//  1. SumTotalByStatus(DELIVERED) → TotalRevenue
//  2. CountByStatus(PENDING)      → PendingOrders
//  3. List(productos)             → TotalProducts
//  4. List(clientes)              → TotalCustomers
//  5. List(pedidos, order_date desc, 5) → RecentOrders
//  6. ListLowStock(threshold)     → LowStockProducts
func (uc *DashboardUseCase) GetSummary(ctx context.Context, threshold int) (*dto.DashboardSummaryDTO, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("%w: el umbral de stock no puede ser negativo", domain.ErrInvalidInput)
	}

	type revenueResult struct {
		total decimal.Decimal
		err   error
	}
	type countResult struct {
		n   int64
		err error
	}
	type totalResult struct {
		n   int
		err error
	}
	type ordersResult struct {
		orders []*entity.Order
		err    error
	}
	type productsResult struct {
		products []*entity.Product
		err      error
	}

	revenueCh := make(chan revenueResult, 1)
	pendingCh := make(chan countResult, 1)
	productsCh := make(chan totalResult, 1)
	customersCh := make(chan totalResult, 1)
	recentCh := make(chan ordersResult, 1)
	lowStockCh := make(chan productsResult, 1)

	one := repository.PageRequest{Page: 0, Size: 1}

	go func() {
		total, err := uc.orders.SumTotalByStatus(ctx, entity.OrderDelivered)
		revenueCh <- revenueResult{total, err}
	}()
	go func() {
		n, err := uc.orders.CountByStatus(ctx, entity.OrderPending)
		pendingCh <- countResult{n, err}
	}()
	go func() {
		_, n, err := uc.products.List(ctx, one)
		productsCh <- totalResult{n, err}
	}()
	go func() {
		_, n, err := uc.customers.List(ctx, one)
		customersCh <- totalResult{n, err}
	}()
	go func() {
		orders, _, err := uc.orders.List(ctx, repository.PageRequest{
			Page: 0,
			Size: RecentOrdersLimit,
			Sort: &repository.Sort{Field: "order_date", Desc: true},
		})
		recentCh <- ordersResult{orders, err}
	}()
	go func() {
		products, err := uc.products.ListLowStock(ctx, threshold)
		lowStockCh <- productsResult{products, err}
	}()

	revenue := <-revenueCh
	pending := <-pendingCh
	products := <-productsCh
	customers := <-customersCh
	recent := <-recentCh
	lowStock := <-lowStockCh

	switch {
	case revenue.err != nil:
		return nil, fmt.Errorf("dashboard: ingresos: %w", revenue.err)
	case pending.err != nil:
		return nil, fmt.Errorf("dashboard: pedidos pendientes: %w", pending.err)
	case products.err != nil:
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	case customers.err != nil:
		return nil, fmt.Errorf("dashboard: clientes: %w", customers.err)
	case recent.err != nil:
		return nil, fmt.Errorf("dashboard: pedidos recientes: %w", recent.err)
	case lowStock.err != nil:
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}

	summary := &dto.DashboardSummaryDTO{
		TotalRevenue:      revenue.total.Round(2),
		PendingOrders:     pending.n,
		TotalProducts:     products.n,
		TotalCustomers:    customers.n,
		RecentOrders:      make([]dto.OrderResponse, 0, len(recent.orders)),
		LowStockProducts:  make([]dto.ProductResponse, 0, len(lowStock.products)),
		LowStockThreshold: threshold,
		GeneratedAt:       uc.clock.Now(),
	}
	for _, o := range recent.orders {
		summary.RecentOrders = append(summary.RecentOrders, usecase.ToOrderResponse(o))
	}
	for _, p := range lowStock.products {
		summary.LowStockProducts = append(summary.LowStockProducts, usecase.ToProductResponse(p))
	}
	return summary, nil
}
