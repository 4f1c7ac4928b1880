package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/kardex-core/internal/domain/kardex"
)

// MovementsReportDTO respuesta de GET /api/reports/movements.
type MovementsReportDTO struct {
	Totals KindTotalsDTO         `json:"totales"`
	Series []kardex.PeriodBucket `json:"seriesMensual"`
	Latest []KardexRowDTO        `json:"ultimosMovimientos"`
}

// KindTotalsDTO totales por tipo de movimiento.
type KindTotalsDTO struct {
	Entries     kardex.KindStat `json:"entradas"`
	Exits       kardex.KindStat `json:"salidas"`
	Transfers   kardex.KindStat `json:"transferencias"`
	Adjustments kardex.KindStat `json:"ajustes"`
}

// SalesReportDTO respuesta de GET /api/reports/sales.
type SalesReportDTO struct {
	TotalAmount   decimal.Decimal       `json:"ventasTotales"`
	TotalUnits    int64                 `json:"unidadesVendidas"`
	TicketAverage decimal.Decimal       `json:"ticketPromedio"`
	GrossMargin   *decimal.Decimal      `json:"margenBruto,omitempty"` // % preagregado del remoto, si existe
	Series        []kardex.PeriodBucket `json:"seriesMensual"`
}

// FinancialReportDTO respuesta de GET /api/reports/financial.
type FinancialReportDTO struct {
	TotalCost   decimal.Decimal       `json:"costoTotal"`
	AverageCost decimal.Decimal       `json:"costoPromedio"`
	Categories  []kardex.CategoryStat `json:"valorPorCategoria"`
}

// InventoryReportDTO respuesta de GET /api/reports/inventory.
type InventoryReportDTO struct {
	TotalProducts int                   `json:"totalProductos"`
	TotalValue    decimal.Decimal       `json:"valorTotalInventario"`
	LowStock      int                   `json:"productosStockBajo"`
	NearExpiry    int                   `json:"proximosAVencer"`
	Categories    []kardex.CategoryStat `json:"categorias"`
	LowStockList  []ProductDTO          `json:"stockBajo"`
}

// CriticalProductDTO fila del reporte de productos críticos: unión de bajo
// stock y próximos a vencer, con sus razones legibles.
type CriticalProductDTO struct {
	ProductDTO
	Reasons []string `json:"razones"`
}

// AlertDTO alerta derivada del snapshot actual.
type AlertDTO struct {
	ID          int    `json:"id"`
	Type        string `json:"tipo"`
	Product     string `json:"producto"`
	Message     string `json:"mensaje"`
	Severity    string `json:"severidad"`
	Warehouse   string `json:"almacen"`
	GeneratedAt string `json:"generadaEn"` // fecha de cálculo, no persistida
}
