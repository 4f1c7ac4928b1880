// Package alerts deriva alertas de stock bajo y de vencimiento próximo a
// partir del snapshot actual de productos. Las alertas son una vista pura:
// nunca se persisten y el mismo snapshot produce siempre el mismo listado.
package alerts

import (
	"fmt"
	"time"

	"github.com/tu-usuario/kardex-core/internal/domain/entity"
	"github.com/tu-usuario/kardex-core/internal/domain/inventory"
)

// DefaultExpiryWindowDays es el horizonte estándar de vencimiento.
const DefaultExpiryWindowDays = 30

// DaysToExpiry devuelve los días calendario desde hoy hasta el vencimiento
// del producto. Negativo significa vencido. Ambas fechas se truncan a
// medianoche para que el resultado no dependa de la hora del día.
func DaysToExpiry(p entity.Product, today time.Time) (int, bool) {
	if !p.HasExpiry {
		return 0, false
	}
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(p.Expiry.Year(), p.Expiry.Month(), p.Expiry.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24), true
}

// NearExpiry informa si el producto vence dentro de la ventana (inclusive)
// o ya venció: no hay cota inferior, el stock vencido siempre se marca.
func NearExpiry(p entity.Product, today time.Time, windowDays int) bool {
	days, ok := DaysToExpiry(p, today)
	return ok && days <= windowDays
}

// Generate produce las alertas del snapshot en el orden de entrada de los
// productos; no reordena por severidad, eso decide cada vista. Un producto
// puede emitir a la vez alerta de stock y de vencimiento.
func Generate(products []entity.Product, now time.Time, windowDays int) []entity.Alert {
	out := make([]entity.Alert, 0)

	for _, p := range products {
		warehouse := p.Warehouse
		if warehouse == "" {
			warehouse = "Almacén"
		}

		switch inventory.StockStatus(p.Stock, p.MinStock) {
		case inventory.StatusCritical:
			out = append(out, entity.Alert{
				ID:          len(out) + 1,
				Type:        entity.AlertCritStock,
				Product:     p.Name,
				Message:     "Stock crítico o agotado - Reposición urgente",
				Severity:    entity.SeverityCritical,
				Warehouse:   warehouse,
				GeneratedAt: now,
			})
		case inventory.StatusLow:
			out = append(out, entity.Alert{
				ID:          len(out) + 1,
				Type:        entity.AlertLowStock,
				Product:     p.Name,
				Message:     "Stock por debajo del mínimo recomendado",
				Severity:    entity.SeverityHigh,
				Warehouse:   warehouse,
				GeneratedAt: now,
			})
		}

		if days, ok := DaysToExpiry(p, now); ok && days <= windowDays {
			severity := entity.SeverityMedium
			message := fmt.Sprintf("Vence en %d días", days)
			if days < 0 {
				severity = entity.SeverityHigh
				message = fmt.Sprintf("Vencido hace %d días", -days)
			} else if days == 0 {
				severity = entity.SeverityHigh
				message = "Vence hoy"
			}
			out = append(out, entity.Alert{
				ID:          len(out) + 1,
				Type:        entity.AlertNearExpiry,
				Product:     p.Name,
				Message:     message,
				Severity:    severity,
				Warehouse:   warehouse,
				GeneratedAt: now,
			})
		}
	}
	return out
}

// CriticalReasons devuelve las razones por las que un producto es crítico
// (bajo stock y/o próximo a vencer), vacío si no lo es. El reporte de
// productos críticos une ambas condiciones; el reporte de stock bajo del
// remoto filtra solo la primera y son vistas deliberadamente distintas.
func CriticalReasons(p entity.Product, today time.Time, windowDays int) []string {
	var reasons []string

	switch inventory.StockStatus(p.Stock, p.MinStock) {
	case inventory.StatusCritical:
		reasons = append(reasons, "Crítico")
	case inventory.StatusLow:
		reasons = append(reasons, "Stock Bajo")
	}

	if NearExpiry(p, today, windowDays) {
		reasons = append(reasons, "Próximo a vencer")
	}
	return reasons
}
