package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/ecommerce-backoffice/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc     *appanalytics.DashboardUseCase
	report *appanalytics.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, report *appanalytics.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, report: report}
}

// GetSummary devuelve las seis cifras del dashboard.
// GET /api/dashboard/summary?threshold=10
//
// Respuesta: DashboardSummaryDTO (total_revenue, pending_orders, total_products,
// total_customers, recent_orders[5], low_stock_products).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	threshold, err := queryInt(c, "threshold", appanalytics.DefaultLowStockThreshold)
	if err != nil {
		return writeError(c, err)
	}
	summary, err := h.uc.GetSummary(c.UserContext(), threshold)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// Report devuelve el resumen en PDF.
// GET /api/dashboard/report.pdf?threshold=10
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	threshold, err := queryInt(c, "threshold", appanalytics.DefaultLowStockThreshold)
	if err != nil {
		return writeError(c, err)
	}
	pdf, err := h.report.DashboardPDF(c.UserContext(), threshold)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="dashboard.pdf"`)
	return c.Send(pdf)
}
