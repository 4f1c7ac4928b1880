package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/kardex-core/internal/application/reports"
)

// DashboardHandler maneja el endpoint del panel principal.
type DashboardHandler struct {
	uc *reports.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reports.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del panel: totales, top por stock,
// peores ratios stock/mínimo y próximos a vencer.
// GET /api/dashboard/summary
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
