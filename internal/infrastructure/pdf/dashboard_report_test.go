package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUSD(t *testing.T) {
	cases := map[string]string{
		"0":        "$0.00",
		"1234.5":   "$1,234.50",
		"999.99":   "$999.99",
		"1000000":  "$1,000,000.00",
		"-1029.98": "-$1,029.98",
		"10.005":   "$10.01",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatUSD(decimal.RequireFromString(in)), in)
	}
}

func TestDashboardReport_GeneraPDF(t *testing.T) {
	g := NewMarotoReportGenerator("E-commerce Back-office")
	now := time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC)
	summary := &dto.DashboardSummaryDTO{
		TotalRevenue:   decimal.RequireFromString("1029.98"),
		PendingOrders:  2,
		TotalProducts:  6,
		TotalCustomers: 2,
		RecentOrders: []dto.OrderResponse{
			{ID: 1, OrderNumber: "ORD-1A2B3C4D", CustomerID: 1, TotalAmount: decimal.RequireFromString("1029.98"), Status: "PENDING", OrderDate: now},
		},
		LowStockProducts:  []dto.ProductResponse{{ID: 2, Name: "MacBook Pro", SKU: "MACBOOK-PRO", StockQuantity: 5}},
		LowStockThreshold: 10,
		GeneratedAt:       now,
	}

	out, err := g.DashboardReport(context.Background(), summary)
	require.NoError(t, err)
	require.Greater(t, len(out), 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestDashboardReport_SinFilasNoFalla(t *testing.T) {
	out, err := NewMarotoReportGenerator("").DashboardReport(context.Background(), &dto.DashboardSummaryDTO{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
