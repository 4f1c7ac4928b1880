// Package repository define los puertos de salida hacia el almacén remoto,
// la única fuente de verdad de productos y transacciones. Este servicio no
// persiste nada: cada carga reconstruye su snapshot completo desde aquí.
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/kardex-core/internal/domain/entity"
	"github.com/tu-usuario/kardex-core/internal/domain/kardex"
)

// ProductSource entrega el snapshot de productos del catálogo.
type ProductSource interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
}

// MovementSource entrega las transacciones crudas del kardex y registra
// movimientos nuevos. El remoto no devuelve saldo tras un registro; el
// llamador debe recargar para observar el efecto.
type MovementSource interface {
	ListMovements(ctx context.Context) ([]kardex.RawMovement, error)
	CreateMovement(ctx context.Context, m entity.Movement) error
}

// StoreSummary es el resumen preagregado de GET /reportes/api. Puede venir
// incompleto; los casos de uso recalculan desde crudo lo que falte.
type StoreSummary struct {
	TotalProducts      int              `json:"totalProductos"`
	TotalValue         decimal.Decimal  `json:"valorTotalInventario"`
	LowStockProducts   int              `json:"productosStockBajo"`
	ProductsByCategory map[string]int   `json:"productosPorCategoria"`
	GrossMarginPct     *decimal.Decimal `json:"margenBruto"`
}

// ExpirationReport es la respuesta de GET /reportes/api/vencimientos.
type ExpirationReport struct {
	Total    int              `json:"total"`
	Products []entity.Product `json:"productos"`
}

// CategoryReport es la respuesta de GET /reportes/api/productos: conteo y
// valor del inventario por categoría. Cualquiera de los mapas puede venir
// vacío; el fallback local recalcula desde el catálogo.
type CategoryReport struct {
	CountByCategory map[string]int             `json:"estadisticasPorCategoria"`
	ValueByCategory map[string]decimal.Decimal `json:"valorPorCategoria"`
}

// ReportSource entrega los reportes preagregados del remoto.
type ReportSource interface {
	Summary(ctx context.Context) (*StoreSummary, error)
	LowStock(ctx context.Context) ([]entity.Product, error)
	ByCategory(ctx context.Context) (*CategoryReport, error)
	Expirations(ctx context.Context, days int) (*ExpirationReport, error)
}
