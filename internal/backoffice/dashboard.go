package backoffice

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
)

// Valores por defecto del dashboard.
const (
	DefaultDashboardLimit    = 1000
	DefaultLowStockThreshold = 10
	RecentOrdersLimit        = 5
)

// DashboardSource lecturas que alimentan el dashboard.
type DashboardSource interface {
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	CountOrdersByStatus(ctx context.Context, status string) (int64, error)
	ListProducts(ctx context.Context, q PageQuery) (Page[dto.ProductResponse], error)
	ListCustomers(ctx context.Context, q PageQuery) (Page[dto.CustomerResponse], error)
	ListOrders(ctx context.Context, q PageQuery) (Page[dto.OrderResponse], error)
	LowStockProducts(ctx context.Context, threshold int) ([]dto.ProductResponse, error)
}

// Panel valor o error de una consulta del dashboard.
type Panel[V any] struct {
	Value V
	Err   error
}

// OK indica si la consulta del panel tuvo éxito.
func (p Panel[V]) OK() bool { return p.Err == nil }

// DashboardData los seis paneles. Cada uno falla de forma independiente.
type DashboardData struct {
	TotalRevenue  Panel[decimal.Decimal]
	PendingOrders Panel[int64]
	Products      Panel[Page[dto.ProductResponse]]
	Customers     Panel[Page[dto.CustomerResponse]]
	RecentOrders  Panel[[]dto.OrderResponse]
	LowStock      Panel[[]dto.ProductResponse]
}

// Dashboard agregador de solo lectura.
type Dashboard struct {
	src       DashboardSource
	limit     int
	threshold int
	notifier  Notifier
}

// NewDashboard crea el agregador. limit acota productos y clientes; threshold es el umbral de stock bajo.
func NewDashboard(src DashboardSource, limit, threshold int, n Notifier) *Dashboard {
	if limit <= 0 {
		limit = DefaultDashboardLimit
	}
	if threshold < 0 {
		threshold = DefaultLowStockThreshold
	}
	return &Dashboard{src: src, limit: limit, threshold: threshold, notifier: notifierOrNop(n)}
}

// Load lanza las seis consultas en paralelo y retorna cuando todas terminaron.
// Un panel fallido se notifica y lleva su error; los demás se muestran igual.
func (d *Dashboard) Load(ctx context.Context) DashboardData {
	var data DashboardData
	var wg sync.WaitGroup
	run := func(panel string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				d.notifier.Notify("dashboard "+panel, err)
			}
		}()
	}

	run("revenue", func() error {
		data.TotalRevenue.Value, data.TotalRevenue.Err = d.src.TotalRevenue(ctx)
		return data.TotalRevenue.Err
	})
	run("pending", func() error {
		data.PendingOrders.Value, data.PendingOrders.Err = d.src.CountOrdersByStatus(ctx, string(entity.OrderPending))
		return data.PendingOrders.Err
	})
	run("products", func() error {
		data.Products.Value, data.Products.Err = d.src.ListProducts(ctx, PageQuery{Size: d.limit})
		return data.Products.Err
	})
	run("customers", func() error {
		data.Customers.Value, data.Customers.Err = d.src.ListCustomers(ctx, PageQuery{Size: d.limit})
		return data.Customers.Err
	})
	run("recent orders", func() error {
		page, err := d.src.ListOrders(ctx, PageQuery{Size: RecentOrdersLimit, Sort: "order_date,desc"})
		data.RecentOrders.Value, data.RecentOrders.Err = page.Items, err
		return err
	})
	run("low stock", func() error {
		data.LowStock.Value, data.LowStock.Err = d.src.LowStockProducts(ctx, d.threshold)
		return data.LowStock.Err
	})

	wg.Wait()
	return data
}
