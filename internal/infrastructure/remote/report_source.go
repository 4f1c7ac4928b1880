package remote

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tu-usuario/kardex-core/internal/domain/entity"
	"github.com/tu-usuario/kardex-core/internal/domain/repository"
)

const (
	summaryPath     = "/reportes/api"
	lowStockPath    = "/reportes/api/stock-bajo"
	byCategoryPath  = "/reportes/api/productos"
	expirationsPath = "/reportes/api/vencimientos"
)

// ReportSource implementa repository.ReportSource sobre los preagregados
// del remoto.
type ReportSource struct {
	client *Client
}

// NewReportSource construye el adaptador de reportes.
func NewReportSource(client *Client) *ReportSource {
	return &ReportSource{client: client}
}

// Summary trae el resumen general preagregado.
func (s *ReportSource) Summary(ctx context.Context) (*repository.StoreSummary, error) {
	var out repository.StoreSummary
	if err := s.client.get(ctx, summaryPath, &out); err != nil {
		return nil, fmt.Errorf("resumen del remoto: %w", err)
	}
	return &out, nil
}

// LowStock trae los productos bajo mínimo según el remoto.
func (s *ReportSource) LowStock(ctx context.Context) ([]entity.Product, error) {
	var raws []rawProduct
	if err := s.client.get(ctx, lowStockPath, &raws); err != nil {
		return nil, fmt.Errorf("stock bajo del remoto: %w", err)
	}

	out := make([]entity.Product, 0, len(raws))
	for _, r := range raws {
		out = append(out, r.toEntity())
	}
	return out, nil
}

// ByCategory trae el rollup de inventario por categoría.
func (s *ReportSource) ByCategory(ctx context.Context) (*repository.CategoryReport, error) {
	var out repository.CategoryReport
	if err := s.client.get(ctx, byCategoryPath, &out); err != nil {
		return nil, fmt.Errorf("reporte por categoría del remoto: %w", err)
	}
	return &out, nil
}

// rawExpirations es la respuesta de /reportes/api/vencimientos.
type rawExpirations struct {
	Total    int          `json:"total"`
	Products []rawProduct `json:"productos"`
}

// Expirations trae los productos que vencen dentro de days días.
func (s *ReportSource) Expirations(ctx context.Context, days int) (*repository.ExpirationReport, error) {
	path := expirationsPath + "?dias=" + strconv.Itoa(days)

	var raw rawExpirations
	if err := s.client.get(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("vencimientos del remoto: %w", err)
	}

	report := &repository.ExpirationReport{
		Total:    raw.Total,
		Products: make([]entity.Product, 0, len(raw.Products)),
	}
	for _, r := range raw.Products {
		report.Products = append(report.Products, r.toEntity())
	}
	return report, nil
}
