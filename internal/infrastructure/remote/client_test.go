package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/kardex-core/internal/domain"
	"github.com/tu-usuario/kardex-core/internal/domain/entity"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zerolog.Nop())
}

func TestClient_ReenviaElBearer(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	ctx := WithToken(context.Background(), "abc123")
	_, err := NewProductSource(c).ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestClient_SinTokenNoMandaHeader(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	_, err := NewProductSource(c).ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_401EsSesionExpirada(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := NewProductSource(c).ListProducts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestClient_5xxEsRemotoNoDisponible(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := NewMovementSource(c).ListMovements(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestProductSource_MapeaElCatalogo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/productos/api", r.URL.Path)
		w.Write([]byte(`[
			{"id":1,"codigo":"MED-001","nombre":"Paracetamol 500mg","categoria":"Medicamentos",
			 "ubicacion":"Farmacia Central","precio":"2.50","stock":40,"stockMinimo":10,
			 "fechaVencimiento":"2026-12-31","estado":"ACTIVO"},
			{"id":2,"codigo":"INS-002","nombre":"Gasas","precio":1.1,"stock":5,"stock_minimo":20},
			{"id":3,"nombre":"Sin nada","precio":null}
		]`))
	})

	prods, err := NewProductSource(c).ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, prods, 3)

	p := prods[0]
	assert.Equal(t, "MED-001", p.Code)
	assert.Equal(t, "Farmacia Central", p.Warehouse)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("2.50")))
	assert.Equal(t, int64(10), p.MinStock)
	require.True(t, p.HasExpiry)
	assert.Equal(t, "2026-12-31", p.Expiry.Format("2006-01-02"))

	assert.Equal(t, int64(20), prods[1].MinStock, "stock_minimo también se acepta")
	assert.False(t, prods[2].HasExpiry)
	assert.True(t, prods[2].Price.IsZero())
}

func TestMovementSource_PostFirmado(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transacciones/api", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})

	err := NewMovementSource(c).CreateMovement(context.Background(), entity.Movement{
		Product:   "Gasas",
		Warehouse: "Central",
		Kind:      entity.KindExit,
		Quantity:  4,
		Date:      "2026-02-10",
		Time:      "08:15",
		User:      "mgonzalez",
		Reference: "TRX-AB12CD34",
		State:     "ACTIVO",
	})
	require.NoError(t, err)

	assert.Equal(t, "Gasas", got["producto"])
	assert.Equal(t, float64(-4), got["cantidad"], "SALIDA viaja negativa")
	assert.Equal(t, "SALIDA", got["tipo"])
	assert.Equal(t, "2026-02-10T08:15:00", got["fecha"])
	assert.Equal(t, "TRX-AB12CD34", got["codigo"])
}

func TestReportSource_Vencimientos(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reportes/api/vencimientos", r.URL.Path)
		assert.Equal(t, "15", r.URL.Query().Get("dias"))
		w.Write([]byte(`{"total":1,"productos":[{"id":9,"nombre":"Insulina","fechaVencimiento":"2026-09-10T00:00:00"}]}`))
	})

	report, err := NewReportSource(c).Expirations(context.Background(), 15)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Total)
	require.Len(t, report.Products, 1)
	assert.True(t, report.Products[0].HasExpiry)
}

func TestReportSource_PorCategoria(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reportes/api/productos", r.URL.Path)
		w.Write([]byte(`{"estadisticasPorCategoria":{"Medicamentos":12},"valorPorCategoria":{"Medicamentos":"840.50"}}`))
	})

	report, err := NewReportSource(c).ByCategory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, report.CountByCategory["Medicamentos"])
	assert.True(t, report.ValueByCategory["Medicamentos"].Equal(decimal.RequireFromString("840.50")))
}

func TestReportSource_Resumen(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reportes/api", r.URL.Path)
		w.Write([]byte(`{"totalProductos":42,"valorTotalInventario":"1234.56","productosStockBajo":3,"margenBruto":28.4}`))
	})

	summary, err := NewReportSource(c).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, summary.TotalProducts)
	assert.Equal(t, 3, summary.LowStockProducts)
	require.NotNil(t, summary.GrossMarginPct)
	assert.True(t, summary.GrossMarginPct.Equal(decimal.RequireFromString("28.4")))
}
