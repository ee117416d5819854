package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jpacevedo/inventario-pro/internal/application/analytics"
	"github.com/jpacevedo/inventario-pro/internal/application/dto"
	"github.com/jpacevedo/inventario-pro/internal/infrastructure/pdf"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc      *analytics.DashboardUseCase
	report  *pdf.StatusReportGenerator
	appName string
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, report *pdf.StatusReportGenerator, appName string) *DashboardHandler {
	return &DashboardHandler{uc: uc, report: report, appName: appName}
}

// GetSummary godoc
// @Summary      KPIs de salud de inventario
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/resumen [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// GetDetail devuelve la tabla de existencias con la alerta por producto.
// GET /api/dashboard/detalle
func (h *DashboardHandler) GetDetail(c *fiber.Ctx) error {
	detail, err := h.uc.GetDetail(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(detail), "rows": detail})
}

// GetReportPDF genera el reporte imprimible del estado de inventario.
// GET /api/dashboard/report.pdf
func (h *DashboardHandler) GetReportPDF(c *fiber.Ctx) error {
	rows, err := h.uc.StatusRows(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	doc, err := h.report.GenerateStatusReport(h.appName, rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="estado_inventario.pdf"`)
	return c.Send(doc)
}
