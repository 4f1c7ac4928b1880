package dto

import "github.com/shopspring/decimal"

// ProductDTO proyección de un producto del catálogo con su estado derivado.
type ProductDTO struct {
	ID       int64           `json:"id"`
	Code     string          `json:"codigo"`
	Name     string          `json:"nombre"`
	Category string          `json:"categoria"`
	Stock    int64           `json:"stock"`
	MinStock int64           `json:"stockMinimo"`
	Price    decimal.Decimal `json:"precio"`
	Expiry   string          `json:"fechaVencimiento,omitempty"`
	Status   string          `json:"estado"` // NORMAL, BAJO, CRITICO
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalProducts int             `json:"totalProductos"`
	TotalValue    decimal.Decimal `json:"valorTotalInventario"`
	LowStock      int             `json:"productosStockBajo"`
	NearExpiry    int             `json:"productosVencimiento"`

	// Top 5 por stock y los 4 productos con peor ratio stock/mínimo.
	TopProducts  []ProductDTO `json:"topProductos"`
	WorstStock   []ProductDTO `json:"stockBajo"`
	ExpiringSoon []ProductDTO `json:"proximosAVencer"`
}
