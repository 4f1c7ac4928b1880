package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appkardex "github.com/tu-usuario/kardex-core/internal/application/kardex"
	"github.com/tu-usuario/kardex-core/internal/domain"
	"github.com/tu-usuario/kardex-core/internal/domain/entity"
	domkardex "github.com/tu-usuario/kardex-core/internal/domain/kardex"
	apphttp "github.com/tu-usuario/kardex-core/internal/interfaces/http"
)

type stubMovements struct {
	raws []domkardex.RawMovement
	err  error
}

func (s *stubMovements) ListMovements(ctx context.Context) ([]domkardex.RawMovement, error) {
	return s.raws, s.err
}

func (s *stubMovements) CreateMovement(ctx context.Context, m entity.Movement) error {
	return s.err
}

func kardexApp(src *stubMovements) *fiber.App {
	app := fiber.New()
	h := apphttp.NewKardexHandler(appkardex.NewUseCase(src))
	app.Get("/api/kardex", h.List)
	app.Post("/api/kardex", h.Register)
	return app
}

func TestKardexHandler_SesionExpiradaDelRemoto(t *testing.T) {
	// El contrato con el remoto: su 401 cierra la sesión local.
	app := kardexApp(&stubMovements{err: domain.ErrSessionExpired})

	req := httptest.NewRequest(http.MethodGet, "/api/kardex", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SESSION_EXPIRED")
}

func TestKardexHandler_RemotoCaidoEs502(t *testing.T) {
	app := kardexApp(&stubMovements{err: domain.ErrStoreUnavailable})

	req := httptest.NewRequest(http.MethodGet, "/api/kardex", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestKardexHandler_ListaNormalizada(t *testing.T) {
	kind := "salida"
	product := "Gasas"
	app := kardexApp(&stubMovements{raws: []domkardex.RawMovement{
		{ID: 7, Product: &product, Kind: &kind, Quantity: domkardex.RawQuantity{Raw: "--2"}},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/kardex", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"total":1`)
	assert.Contains(t, string(body), `"SALIDA"`)
	assert.Contains(t, string(body), `"-2"`)
}

func TestKardexHandler_RegistroInvalidoEs400(t *testing.T) {
	app := kardexApp(&stubMovements{})

	req := httptest.NewRequest(http.MethodPost, "/api/kardex",
		strings.NewReader(`{"producto":"","almacen":"Central","tipo":"ENTRADA","cantidad":1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestKardexHandler_RegistroValidoEs201(t *testing.T) {
	app := kardexApp(&stubMovements{})

	req := httptest.NewRequest(http.MethodPost, "/api/kardex",
		strings.NewReader(`{"producto":"Gasas","almacen":"Central","tipo":"ENTRADA","cantidad":5}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
