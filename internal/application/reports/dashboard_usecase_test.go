package reports_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/kardex-core/internal/application/reports"
	"github.com/tu-usuario/kardex-core/internal/domain/entity"
	"github.com/tu-usuario/kardex-core/internal/domain/repository"
)

func TestGetSummary_Completo(t *testing.T) {
	prods := []entity.Product{
		{Name: "Alcohol", Price: dec("5"), Stock: 200, MinStock: 20},
		{Name: "Guantes", Price: dec("1"), Stock: 500, MinStock: 50},
		{Name: "Jeringas", Price: dec("0.5"), Stock: 300, MinStock: 30},
		{Name: "Paracetamol", Price: dec("2"), Stock: 8, MinStock: 10},  // bajo (0.8)
		{Name: "Ibuprofeno", Price: dec("3"), Stock: 2, MinStock: 10},   // crítico (0.2)
		{Name: "Amoxicilina", Price: dec("4"), Stock: 5, MinStock: 10},  // crítico (0.5)
		{Name: "Suero", Price: dec("10"), Stock: 100, MinStock: 10},
	}
	src := &fakeReports{expirations: &repository.ExpirationReport{
		Total:    2,
		Products: []entity.Product{{Name: "Suero"}, {Name: "Insulina"}},
	}}

	out, err := reports.NewDashboardUseCase(&fakeProducts{products: prods}, src, 0).
		GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, out.TotalProducts)
	// 1000 + 500 + 150 + 16 + 6 + 20 + 1000
	assert.True(t, out.TotalValue.Equal(dec("2692")), "valor total = %s", out.TotalValue)
	assert.Equal(t, 3, out.LowStock, "bajo y crítico cuentan juntos")
	assert.Equal(t, 2, out.NearExpiry)

	require.Len(t, out.TopProducts, 5)
	assert.Equal(t, "Guantes", out.TopProducts[0].Name)
	assert.Equal(t, "Jeringas", out.TopProducts[1].Name)

	require.Len(t, out.WorstStock, 3)
	assert.Equal(t, "Ibuprofeno", out.WorstStock[0].Name, "el peor ratio primero")
	assert.Equal(t, "Amoxicilina", out.WorstStock[1].Name)
	assert.Equal(t, "Paracetamol", out.WorstStock[2].Name)

	require.Len(t, out.ExpiringSoon, 2)
	assert.Equal(t, "Suero", out.ExpiringSoon[0].Name)
}

func TestGetSummary_RecortaPeores(t *testing.T) {
	prods := []entity.Product{
		{Name: "A", Stock: 1, MinStock: 10},
		{Name: "B", Stock: 2, MinStock: 10},
		{Name: "C", Stock: 3, MinStock: 10},
		{Name: "D", Stock: 4, MinStock: 10},
		{Name: "E", Stock: 5, MinStock: 10},
	}
	out, err := reports.NewDashboardUseCase(&fakeProducts{products: prods}, &fakeReports{}, 0).
		GetSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, out.WorstStock, 4)
	assert.Equal(t, "A", out.WorstStock[0].Name)
	assert.Equal(t, "D", out.WorstStock[3].Name)
}

func TestGetSummary_SinMinimoNoEsPeor(t *testing.T) {
	// Sin mínimo configurado no hay ratio que calcular ni alerta que dar.
	prods := []entity.Product{{Name: "Sin mínimo", Stock: 0, MinStock: 0}}

	out, err := reports.NewDashboardUseCase(&fakeProducts{products: prods}, &fakeReports{}, 0).
		GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, out.LowStock)
	assert.Empty(t, out.WorstStock)
}

func TestGetSummary_FalloAbortaTodo(t *testing.T) {
	boom := errors.New("sesión expirada")

	_, err := reports.NewDashboardUseCase(&fakeProducts{err: boom}, &fakeReports{}, 0).
		GetSummary(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
