package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/kardex-core/internal/application/dto"
	"github.com/tu-usuario/kardex-core/internal/application/reports"
)

// CriticalPDFGenerator genera la versión imprimible del reporte crítico.
// La implementación concreta usa Maroto; para tests se puede inyectar un mock.
type CriticalPDFGenerator interface {
	Generate(ctx context.Context, products []dto.CriticalProductDTO, generatedAt time.Time) ([]byte, error)
}

// ReportsHandler maneja los endpoints de reportes y alertas (protegido).
type ReportsHandler struct {
	uc  *reports.UseCase
	pdf CriticalPDFGenerator
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.UseCase, pdf CriticalPDFGenerator) *ReportsHandler {
	return &ReportsHandler{uc: uc, pdf: pdf}
}

// Movements devuelve totales por tipo, serie mensual y últimos movimientos.
// GET /api/reports/movements
func (h *ReportsHandler) Movements(c *fiber.Ctx) error {
	out, err := h.uc.Movements(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sales devuelve las métricas de venta sobre las salidas.
// GET /api/reports/sales
func (h *ReportsHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.Sales(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Financial devuelve la valorización del inventario.
// GET /api/reports/financial
func (h *ReportsHandler) Financial(c *fiber.Ctx) error {
	out, err := h.uc.Financial(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Inventory devuelve el estado general del inventario.
// GET /api/reports/inventory
func (h *ReportsHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Inventory(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Critical devuelve la unión de bajo stock y próximos a vencer, cada uno
// con sus razones.
// GET /api/reports/critical
func (h *ReportsHandler) Critical(c *fiber.Ctx) error {
	out, err := h.uc.Critical(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":     len(out),
		"productos": out,
	})
}

// CriticalPDF devuelve el reporte crítico como PDF descargable.
// GET /api/reports/critical/pdf
func (h *ReportsHandler) CriticalPDF(c *fiber.Ctx) error {
	products, err := h.uc.Critical(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	now := time.Now()
	doc, err := h.pdf.Generate(c.UserContext(), products, now)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		`attachment; filename="productos-criticos-`+now.Format("2006-01-02")+`.pdf"`)
	return c.Send(doc)
}

// Alerts devuelve las alertas derivadas del snapshot actual.
// GET /api/alerts
func (h *ReportsHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.Alerts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":   len(out),
		"alertas": out,
	})
}
