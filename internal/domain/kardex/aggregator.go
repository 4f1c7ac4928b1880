package kardex

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/kardex-core/internal/domain/entity"
	"github.com/tu-usuario/kardex-core/internal/domain/inventory"
)

// KindStat acumula movimientos y unidades (magnitud absoluta) de un tipo.
type KindStat struct {
	Count int   `json:"movimientos"`
	Units int64 `json:"unidades"`
}

// KindTotals son los totales por tipo de movimiento. Los tipos no
// reconocidos (OTROS) no entran en ningún bucket; solo se cuentan para
// poder cuadrar contra el total de registros de entrada.
type KindTotals struct {
	Entries     KindStat `json:"entradas"`
	Exits       KindStat `json:"salidas"`
	Transfers   KindStat `json:"transferencias"`
	Adjustments KindStat `json:"ajustes"`
	Others      int      `json:"otros"` // conteo de excluidos, sin unidades
}

// ByKind calcula los totales por tipo sobre movimientos ya normalizados.
func ByKind(movs []entity.Movement) KindTotals {
	var t KindTotals
	for _, m := range movs {
		switch m.Kind {
		case entity.KindEntry:
			t.Entries.Count++
			t.Entries.Units += m.Quantity
		case entity.KindExit:
			t.Exits.Count++
			t.Exits.Units += m.Quantity
		case entity.KindTransfer:
			t.Transfers.Count++
			t.Transfers.Units += m.Quantity
		case entity.KindAdjust:
			t.Adjustments.Count++
			t.Adjustments.Units += m.Quantity
		default:
			t.Others++
		}
	}
	return t
}

// PeriodBucket es un punto de la serie mensual.
type PeriodBucket struct {
	Label string `json:"month"`
	Units int64  `json:"value"`
}

// Abreviaturas de mes en el locale fijo del sistema (es-PE).
var monthLabels = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// MonthLabel devuelve la abreviatura del mes de una fecha canónica
// (YYYY-MM-DD). Devuelve vacío si la fecha no trae un mes interpretable.
func MonthLabel(date string) string {
	if len(date) < 7 {
		return ""
	}
	m, err := strconv.Atoi(date[5:7])
	if err != nil || m < 1 || m > 12 {
		return ""
	}
	return monthLabels[m-1]
}

// MonthlySeries agrupa unidades (magnitud absoluta) por etiqueta de mes en
// orden de primera aparición. Los movimientos sin fecha interpretable se
// omiten y las etiquetas sin volumen no se emiten: un consumidor que
// necesite un eje continuo debe rellenarlo él mismo.
func MonthlySeries(movs []entity.Movement) []PeriodBucket {
	totals := make(map[string]int64)
	var order []string

	for _, m := range movs {
		label := MonthLabel(m.Date)
		if label == "" {
			continue
		}
		if _, seen := totals[label]; !seen {
			order = append(order, label)
		}
		totals[label] += m.Quantity
	}

	buckets := make([]PeriodBucket, 0, len(order))
	for _, label := range order {
		if totals[label] == 0 {
			continue
		}
		buckets = append(buckets, PeriodBucket{Label: label, Units: totals[label]})
	}
	return buckets
}

// PriceResolver resuelve el precio de referencia de un producto por nombre
// o código. Devuelve cero si no lo conoce.
type PriceResolver func(product string) decimal.Decimal

// PriceIndex construye un PriceResolver desde un snapshot de productos,
// indexado por nombre y por código.
func PriceIndex(products []entity.Product) PriceResolver {
	byKey := make(map[string]decimal.Decimal, 2*len(products))
	for _, p := range products {
		if p.Name != "" {
			byKey[p.Name] = p.Price
		}
		if p.Code != "" {
			byKey[p.Code] = p.Price
		}
	}
	return func(product string) decimal.Decimal {
		return byKey[product]
	}
}

// SalesMetrics son los KPIs de venta de un período.
type SalesMetrics struct {
	TotalAmount   decimal.Decimal `json:"totalImporte"`
	TotalUnits    int64           `json:"totalUnidades"`
	TicketAverage decimal.Decimal `json:"ticketPromedio"`
}

// Sales calcula las métricas de venta sobre los movimientos de SALIDA
// (únicamente; VENTA ya fue normalizada a SALIDA). El precio unitario se
// resuelve en cascada: precio explícito → total explícito / cantidad →
// precio de referencia del producto. El total de línea es el total
// explícito si existe, si no precio * cantidad. El ticket promedio es 0
// con lista vacía, nunca una división por cero.
func Sales(movs []entity.Movement, refPrice PriceResolver) SalesMetrics {
	var (
		amount decimal.Decimal
		units  int64
		count  int64
	)

	for _, m := range movs {
		if m.Kind != entity.KindExit {
			continue
		}
		count++
		units += m.Quantity

		qty := decimal.NewFromInt(m.Quantity)
		unitPrice := m.UnitPrice
		if unitPrice.IsZero() && !m.Total.IsZero() && m.Quantity > 0 {
			unitPrice = m.Total.Div(qty)
		}
		if unitPrice.IsZero() && refPrice != nil {
			unitPrice = refPrice(m.Product)
		}

		lineTotal := m.Total
		if lineTotal.IsZero() {
			lineTotal = unitPrice.Mul(qty)
		}
		amount = amount.Add(lineTotal)
	}

	metrics := SalesMetrics{TotalAmount: amount, TotalUnits: units, TicketAverage: decimal.Zero}
	if count > 0 {
		metrics.TicketAverage = amount.Div(decimal.NewFromInt(count))
	}
	return metrics
}

// CategoryStat es la valorización de una categoría de productos.
type CategoryStat struct {
	Category string          `json:"categoria"`
	Count    int             `json:"cantidad"`
	Value    decimal.Decimal `json:"valorTotal"`
}

// Valuation es el resumen financiero del inventario completo.
type Valuation struct {
	TotalProducts int             `json:"totalProductos"`
	TotalValue    decimal.Decimal `json:"valorTotalInventario"`
	AverageCost   decimal.Decimal `json:"costoPromedio"`
	LowStock      int             `json:"productosStockBajo"`
	Categories    []CategoryStat  `json:"valorPorCategoria"`
}

// Valuate construye la valorización financiera desde el snapshot de
// productos: valor por categoría (orden de primera aparición), valor
// total, costo promedio por producto (0 con catálogo vacío) y conteo de
// productos en stock bajo o crítico.
func Valuate(products []entity.Product) Valuation {
	perCategory := make(map[string]*CategoryStat)
	var order []string

	v := Valuation{TotalValue: decimal.Zero, AverageCost: decimal.Zero}
	for _, p := range products {
		v.TotalProducts++
		value := p.InventoryValue()
		v.TotalValue = v.TotalValue.Add(value)

		if inventory.StockStatus(p.Stock, p.MinStock) != inventory.StatusNormal {
			v.LowStock++
		}

		cat := p.Category
		if cat == "" {
			cat = "Sin categoría"
		}
		stat, ok := perCategory[cat]
		if !ok {
			stat = &CategoryStat{Category: cat, Value: decimal.Zero}
			perCategory[cat] = stat
			order = append(order, cat)
		}
		stat.Count++
		stat.Value = stat.Value.Add(value)
	}

	if v.TotalProducts > 0 {
		v.AverageCost = v.TotalValue.Div(decimal.NewFromInt(int64(v.TotalProducts))).Round(2)
	}

	v.Categories = make([]CategoryStat, 0, len(order))
	for _, cat := range order {
		v.Categories = append(v.Categories, *perCategory[cat])
	}
	return v
}
