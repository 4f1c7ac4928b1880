// Package pdf implementa la generación del reporte imprimible de productos
// críticos usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Stock | Mín | Precio | Razones   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de productos críticos + leyenda               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/kardex-core/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCritical = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// esPE formatea números con separadores locales (1,234.50).
var esPE = message.NewPrinter(language.MustParse("es-PE"))

// ── Generator ─────────────────────────────────────────────────────────────────

// CriticalReportGenerator genera el PDF del reporte de productos críticos.
type CriticalReportGenerator struct{}

// NewCriticalReportGenerator construye el generador.
func NewCriticalReportGenerator() *CriticalReportGenerator { return &CriticalReportGenerator{} }

// Generate genera el PDF y devuelve sus bytes. Los productos vienen en el
// orden en que deban imprimirse; aquí no se reordena nada.
func (g *CriticalReportGenerator) Generate(
	_ context.Context,
	products []dto.CriticalProductDTO,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Productos Críticos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt, len(products)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(products) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte crítico: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time, total int) core.Row {
	fecha := generatedAt.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE PRODUCTOS CRÍTICOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Stock bajo mínimo y vencimientos próximos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d productos", total), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorCritical, Top: 2,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Stock", 1, align.Center),
		h("Mín.", 1, align.Center),
		h("Precio", 2, align.Right),
		h("Razones", 3, align.Left),
	)
}

func tableRows(products []dto.CriticalProductDTO) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		stockColor := colorGray
		if p.Status == "CRITICO" {
			stockColor = colorCritical
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				nonEmpty(p.Code, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				p.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", p.Stock),
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: stockColor, Style: fontstyle.Bold},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", p.MinStock),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(p.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				strings.Join(p.Reasons, ", "),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
		))
	}
	return result
}

func footerRow(total int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf(
			"Total: %d productos requieren atención. Priorice la reposición de los marcados como críticos.",
			total,
		), props.Text{Size: 7, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea un precio con separadores de miles locales.
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return esPE.Sprintf("S/ %.2f", f)
}
