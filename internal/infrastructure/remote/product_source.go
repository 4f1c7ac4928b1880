package remote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/kardex-core/internal/domain/entity"
	"github.com/tu-usuario/kardex-core/internal/domain/kardex"
)

const productsPath = "/productos/api"

// rawProduct es un producto tal como lo entrega GET /productos/api. El
// mínimo llega como stockMinimo o stock_minimo según la versión del
// remoto; se aceptan ambos.
type rawProduct struct {
	ID        int64            `json:"id"`
	Code      string           `json:"codigo"`
	Name      string           `json:"nombre"`
	Category  string           `json:"categoria"`
	Warehouse string           `json:"ubicacion"`
	Price     kardex.RawAmount `json:"precio"`
	Stock     int64            `json:"stock"`
	MinStock  *int64           `json:"stockMinimo"`
	MinSnake  *int64           `json:"stock_minimo"`
	Expiry    string           `json:"fechaVencimiento"`
	State     string           `json:"estado"`
}

// ProductSource implementa repository.ProductSource sobre el remoto.
type ProductSource struct {
	client *Client
}

// NewProductSource construye el adaptador de productos.
func NewProductSource(client *Client) *ProductSource {
	return &ProductSource{client: client}
}

// ListProducts trae el snapshot completo del catálogo.
func (s *ProductSource) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var raws []rawProduct
	if err := s.client.get(ctx, productsPath, &raws); err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}

	out := make([]entity.Product, 0, len(raws))
	for _, r := range raws {
		out = append(out, r.toEntity())
	}
	return out, nil
}

func (r rawProduct) toEntity() entity.Product {
	minStock := int64(0)
	if r.MinStock != nil {
		minStock = *r.MinStock
	} else if r.MinSnake != nil {
		minStock = *r.MinSnake
	}

	p := entity.Product{
		ID:        r.ID,
		Code:      r.Code,
		Name:      r.Name,
		Category:  r.Category,
		Warehouse: r.Warehouse,
		Price:     r.Price.Value,
		Stock:     r.Stock,
		MinStock:  minStock,
		State:     r.State,
	}
	if expiry, ok := parseExpiry(r.Expiry); ok {
		p.Expiry = expiry
		p.HasExpiry = true
	}
	return p
}

// parseExpiry acepta la fecha sola o con hora (separador "T" o espacio).
func parseExpiry(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
