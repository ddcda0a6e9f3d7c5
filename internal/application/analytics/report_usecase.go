package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
)

// ReportGenerator renderiza el resumen del dashboard a PDF.
type ReportGenerator interface {
	DashboardReport(ctx context.Context, summary *dto.DashboardSummaryDTO) ([]byte, error)
}

// ReportUseCase genera el reporte PDF del dashboard.
type ReportUseCase struct {
	dashboard *DashboardUseCase
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(dashboard *DashboardUseCase, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{dashboard: dashboard, generator: generator}
}

// DashboardPDF arma el resumen y lo renderiza.
func (uc *ReportUseCase) DashboardPDF(ctx context.Context, threshold int) ([]byte, error) {
	summary, err := uc.dashboard.GetSummary(ctx, threshold)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.DashboardReport(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("reporte dashboard: %w", err)
	}
	return pdf, nil
}
