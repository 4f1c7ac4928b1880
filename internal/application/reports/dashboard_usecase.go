package reports

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/kardex-core/internal/application/dto"
	"github.com/tu-usuario/kardex-core/internal/domain/inventory"
	"github.com/tu-usuario/kardex-core/internal/domain/repository"
)

const (
	dashboardTopProducts = 5 // productos con mayor stock en el widget
	dashboardWorstStock  = 4 // peores ratios stock/mínimo listados
)

// DashboardUseCase genera el resumen del panel principal.
//
// Dos consultas en paralelo:
//  1. ListProducts      → totales, top por stock y peores ratios
//  2. Expirations(30)   → conteo y listado de próximos a vencer
type DashboardUseCase struct {
	products   repository.ProductSource
	reports    repository.ReportSource
	windowDays int
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductSource, reports repository.ReportSource, windowDays int) *DashboardUseCase {
	if windowDays <= 0 {
		windowDays = 30
	}
	return &DashboardUseCase{products: products, reports: reports, windowDays: windowDays}
}

// GetSummary construye el DashboardSummaryDTO. Si cualquiera de las dos
// consultas falla, falla la carga completa: el panel no muestra parciales.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	prodCh := make(chan productsResult, 1)
	expCh := make(chan expirationsResult, 1)

	go func() {
		prods, err := uc.products.ListProducts(ctx)
		prodCh <- productsResult{prods, err}
	}()
	go func() {
		exp, err := uc.reports.Expirations(ctx, uc.windowDays)
		expCh <- expirationsResult{exp, err}
	}()

	prods := <-prodCh
	exp := <-expCh

	if prods.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", prods.err)
	}
	if exp.err != nil {
		return nil, fmt.Errorf("dashboard: vencimientos: %w", exp.err)
	}

	// ── Estadísticas ──────────────────────────────────────────────────────────
	totalValue := decimal.Zero
	lowStock := 0
	for _, p := range prods.products {
		totalValue = totalValue.Add(p.InventoryValue())
		if inventory.StockStatus(p.Stock, p.MinStock) != inventory.StatusNormal {
			lowStock++
		}
	}

	// ── Top por stock (proxy de rotación, como la vista original) ─────────────
	byStock := make([]dto.ProductDTO, 0, len(prods.products))
	for _, p := range prods.products {
		byStock = append(byStock, ToProductDTO(p))
	}
	sort.SliceStable(byStock, func(i, j int) bool { return byStock[i].Stock > byStock[j].Stock })
	top := byStock
	if len(top) > dashboardTopProducts {
		top = top[:dashboardTopProducts]
	}

	// ── Peores ratios stock/mínimo entre los productos bajo mínimo ────────────
	worst := make([]dto.ProductDTO, 0)
	for _, p := range prods.products {
		if p.MinStock > 0 && p.Stock <= p.MinStock {
			worst = append(worst, ToProductDTO(p))
		}
	}
	sort.SliceStable(worst, func(i, j int) bool {
		return ratio(worst[i]) < ratio(worst[j])
	})
	if len(worst) > dashboardWorstStock {
		worst = worst[:dashboardWorstStock]
	}

	// ── Próximos a vencer (preagregado del remoto) ────────────────────────────
	nearExpiry := 0
	expiring := make([]dto.ProductDTO, 0)
	if exp.report != nil {
		nearExpiry = exp.report.Total
		for _, p := range exp.report.Products {
			expiring = append(expiring, ToProductDTO(p))
		}
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts: len(prods.products),
		TotalValue:    totalValue,
		LowStock:      lowStock,
		NearExpiry:    nearExpiry,
		TopProducts:   top,
		WorstStock:    worst,
		ExpiringSoon:  expiring,
	}, nil
}

// ratio ordena qué tan hundido está el stock respecto del mínimo.
// El mínimo ya se validó > 0 al filtrar.
func ratio(p dto.ProductDTO) float64 {
	return float64(p.Stock) / float64(p.MinStock)
}
