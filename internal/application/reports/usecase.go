// Package reports contiene los casos de uso de reportes y dashboard.
// Cada carga arma su propio snapshot completo desde el remoto (las
// consultas de una vista viajan en paralelo y se espera a todas antes de
// calcular nada) y luego ejecuta las transformaciones puras del dominio.
// Una consulta fallida aborta la carga completa: nunca se muestran
// agregados parciales.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/kardex-core/internal/application/dto"
	appkardex "github.com/tu-usuario/kardex-core/internal/application/kardex"
	"github.com/tu-usuario/kardex-core/internal/domain/alerts"
	"github.com/tu-usuario/kardex-core/internal/domain/entity"
	"github.com/tu-usuario/kardex-core/internal/domain/inventory"
	"github.com/tu-usuario/kardex-core/internal/domain/kardex"
	"github.com/tu-usuario/kardex-core/internal/domain/repository"
)

const latestMovementsLimit = 10

// UseCase casos de uso de reportes sobre el snapshot remoto.
type UseCase struct {
	products   repository.ProductSource
	movements  repository.MovementSource
	reports    repository.ReportSource
	windowDays int
	now        func() time.Time
}

// NewUseCase construye el caso de uso. windowDays es la ventana de
// vencimiento (30 días si se pasa cero).
func NewUseCase(
	products repository.ProductSource,
	movements repository.MovementSource,
	reports repository.ReportSource,
	windowDays int,
) *UseCase {
	if windowDays <= 0 {
		windowDays = alerts.DefaultExpiryWindowDays
	}
	return &UseCase{
		products:   products,
		movements:  movements,
		reports:    reports,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// Movements construye el reporte de movimientos de stock: totales por
// tipo, serie mensual y últimos movimientos.
func (uc *UseCase) Movements(ctx context.Context) (*dto.MovementsReportDTO, error) {
	raws, err := uc.movements.ListMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte de movimientos: %w", err)
	}
	movs := kardex.NormalizeAll(raws)
	totals := kardex.ByKind(movs)

	// Últimos movimientos, el más reciente primero.
	start := len(movs) - latestMovementsLimit
	if start < 0 {
		start = 0
	}
	latest := make([]dto.KardexRowDTO, 0, len(movs)-start)
	for i := len(movs) - 1; i >= start; i-- {
		latest = append(latest, appkardex.ToRow(movs[i]))
	}

	return &dto.MovementsReportDTO{
		Totals: dto.KindTotalsDTO{
			Entries:     totals.Entries,
			Exits:       totals.Exits,
			Transfers:   totals.Transfers,
			Adjustments: totals.Adjustments,
		},
		Series: kardex.MonthlySeries(movs),
		Latest: latest,
	}, nil
}

// Sales construye el reporte de ventas: métricas sobre los movimientos de
// SALIDA con la cascada de precios, serie mensual de ventas y el margen
// bruto preagregado del remoto cuando existe.
func (uc *UseCase) Sales(ctx context.Context) (*dto.SalesReportDTO, error) {
	var (
		rawsCh    = make(chan movementsResult, 1)
		prodCh    = make(chan productsResult, 1)
		summaryCh = make(chan summaryResult, 1)
	)
	go func() {
		raws, err := uc.movements.ListMovements(ctx)
		rawsCh <- movementsResult{raws, err}
	}()
	go func() {
		prods, err := uc.products.ListProducts(ctx)
		prodCh <- productsResult{prods, err}
	}()
	go func() {
		s, err := uc.reports.Summary(ctx)
		summaryCh <- summaryResult{s, err}
	}()

	raws := <-rawsCh
	prods := <-prodCh
	summary := <-summaryCh

	if raws.err != nil {
		return nil, fmt.Errorf("reporte de ventas: transacciones: %w", raws.err)
	}
	if prods.err != nil {
		return nil, fmt.Errorf("reporte de ventas: productos: %w", prods.err)
	}
	if summary.err != nil {
		return nil, fmt.Errorf("reporte de ventas: resumen: %w", summary.err)
	}

	movs := kardex.NormalizeAll(raws.movements)
	sales := make([]entity.Movement, 0, len(movs))
	for _, m := range movs {
		if m.Kind == entity.KindExit {
			sales = append(sales, m)
		}
	}

	metrics := kardex.Sales(sales, kardex.PriceIndex(prods.products))

	out := &dto.SalesReportDTO{
		TotalAmount:   metrics.TotalAmount,
		TotalUnits:    metrics.TotalUnits,
		TicketAverage: metrics.TicketAverage,
		Series:        kardex.MonthlySeries(sales),
	}
	if summary.summary != nil {
		out.GrossMargin = summary.summary.GrossMarginPct
	}
	return out, nil
}

// Financial construye el reporte financiero: costo total del inventario,
// costo promedio por producto y valor por categoría. El rollup por
// categoría del remoto manda sobre el recálculo local cuando trae datos.
func (uc *UseCase) Financial(ctx context.Context) (*dto.FinancialReportDTO, error) {
	prodCh := make(chan productsResult, 1)
	catCh := make(chan categoryResult, 1)

	go func() {
		prods, err := uc.products.ListProducts(ctx)
		prodCh <- productsResult{prods, err}
	}()
	go func() {
		cat, err := uc.reports.ByCategory(ctx)
		catCh <- categoryResult{cat, err}
	}()

	prods := <-prodCh
	cat := <-catCh

	if prods.err != nil {
		return nil, fmt.Errorf("reporte financiero: productos: %w", prods.err)
	}
	if cat.err != nil {
		return nil, fmt.Errorf("reporte financiero: categorías: %w", cat.err)
	}

	v := kardex.Valuate(prods.products)
	out := &dto.FinancialReportDTO{
		TotalCost:   v.TotalValue,
		AverageCost: v.AverageCost,
		Categories:  v.Categories,
	}
	if cat.report != nil && len(cat.report.ValueByCategory) > 0 {
		total := decimal.Zero
		for _, value := range cat.report.ValueByCategory {
			total = total.Add(value)
		}
		out.TotalCost = total
	}
	return out, nil
}

// Inventory construye el estado de inventario combinando el snapshot de
// productos con los preagregados del remoto (stock bajo y vencimientos).
// Las cuatro consultas viajan en paralelo, como hace la pantalla original.
func (uc *UseCase) Inventory(ctx context.Context) (*dto.InventoryReportDTO, error) {
	var (
		prodCh    = make(chan productsResult, 1)
		summaryCh = make(chan summaryResult, 1)
		lowCh     = make(chan productsResult, 1)
		expCh     = make(chan expirationsResult, 1)
	)
	go func() {
		prods, err := uc.products.ListProducts(ctx)
		prodCh <- productsResult{prods, err}
	}()
	go func() {
		s, err := uc.reports.Summary(ctx)
		summaryCh <- summaryResult{s, err}
	}()
	go func() {
		low, err := uc.reports.LowStock(ctx)
		lowCh <- productsResult{low, err}
	}()
	go func() {
		exp, err := uc.reports.Expirations(ctx, uc.windowDays)
		expCh <- expirationsResult{exp, err}
	}()

	prods := <-prodCh
	summary := <-summaryCh
	low := <-lowCh
	exp := <-expCh

	if prods.err != nil {
		return nil, fmt.Errorf("estado de inventario: productos: %w", prods.err)
	}
	if summary.err != nil {
		return nil, fmt.Errorf("estado de inventario: resumen: %w", summary.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("estado de inventario: stock bajo: %w", low.err)
	}
	if exp.err != nil {
		return nil, fmt.Errorf("estado de inventario: vencimientos: %w", exp.err)
	}

	v := kardex.Valuate(prods.products)

	lowList := make([]dto.ProductDTO, 0, len(low.products))
	for _, p := range low.products {
		lowList = append(lowList, ToProductDTO(p))
	}

	out := &dto.InventoryReportDTO{
		TotalProducts: v.TotalProducts,
		TotalValue:    v.TotalValue,
		LowStock:      v.LowStock,
		Categories:    v.Categories,
		LowStockList:  lowList,
	}
	if exp.report != nil {
		out.NearExpiry = exp.report.Total
	}
	// El remoto manda si trae totales; el recálculo local es el respaldo.
	if summary.summary != nil && summary.summary.TotalProducts > 0 {
		out.TotalProducts = summary.summary.TotalProducts
	}
	if summary.summary != nil && summary.summary.LowStockProducts > 0 {
		out.LowStock = summary.summary.LowStockProducts
	}
	return out, nil
}

// Critical devuelve los productos críticos: la unión de bajo stock y
// próximos a vencer. Es deliberadamente más amplio que el reporte de
// stock bajo del remoto; las dos vistas no deben confundirse.
func (uc *UseCase) Critical(ctx context.Context) ([]dto.CriticalProductDTO, error) {
	prods, err := uc.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("productos críticos: %w", err)
	}

	now := uc.now()
	out := make([]dto.CriticalProductDTO, 0)
	for _, p := range prods {
		reasons := alerts.CriticalReasons(p, now, uc.windowDays)
		if len(reasons) == 0 {
			continue
		}
		out = append(out, dto.CriticalProductDTO{
			ProductDTO: ToProductDTO(p),
			Reasons:    reasons,
		})
	}
	return out, nil
}

// Alerts deriva las alertas del snapshot actual de productos.
func (uc *UseCase) Alerts(ctx context.Context) ([]dto.AlertDTO, error) {
	prods, err := uc.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("alertas: productos: %w", err)
	}

	generated := alerts.Generate(prods, uc.now(), uc.windowDays)
	out := make([]dto.AlertDTO, 0, len(generated))
	for _, a := range generated {
		out = append(out, dto.AlertDTO{
			ID:          a.ID,
			Type:        a.Type,
			Product:     a.Product,
			Message:     a.Message,
			Severity:    a.Severity,
			Warehouse:   a.Warehouse,
			GeneratedAt: a.GeneratedAt.Format("2006-01-02"),
		})
	}
	return out, nil
}

// ToProductDTO proyecta un producto con su estado de stock derivado.
func ToProductDTO(p entity.Product) dto.ProductDTO {
	d := dto.ProductDTO{
		ID:       p.ID,
		Code:     p.Code,
		Name:     p.Name,
		Category: p.Category,
		Stock:    p.Stock,
		MinStock: p.MinStock,
		Price:    p.Price,
		Status:   string(inventory.StockStatus(p.Stock, p.MinStock)),
	}
	if p.HasExpiry {
		d.Expiry = p.Expiry.Format("2006-01-02")
	}
	return d
}

// Resultados intercambiados por canal entre las consultas paralelas.
type movementsResult struct {
	movements []kardex.RawMovement
	err       error
}

type productsResult struct {
	products []entity.Product
	err      error
}

type summaryResult struct {
	summary *repository.StoreSummary
	err     error
}

type expirationsResult struct {
	report *repository.ExpirationReport
	err    error
}

type categoryResult struct {
	report *repository.CategoryReport
	err    error
}
