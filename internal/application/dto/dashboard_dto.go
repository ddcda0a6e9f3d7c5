package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary y base del reporte PDF.
type DashboardSummaryDTO struct {
	TotalRevenue      decimal.Decimal   `json:"total_revenue"` // pedidos DELIVERED
	PendingOrders     int64             `json:"pending_orders"`
	TotalProducts     int               `json:"total_products"`
	TotalCustomers    int               `json:"total_customers"`
	RecentOrders      []OrderResponse   `json:"recent_orders"`
	LowStockProducts  []ProductResponse `json:"low_stock_products"`
	LowStockThreshold int               `json:"low_stock_threshold"`
	GeneratedAt       time.Time         `json:"generated_at"`
}
