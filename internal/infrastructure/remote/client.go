// Package remote implementa los adaptadores HTTP hacia el almacén remoto,
// la única fuente de verdad de productos y transacciones. Cada request
// viaja con el bearer token de la sesión que originó la carga; un 401 del
// remoto se traduce a domain.ErrSessionExpired para que la capa HTTP
// cierre la sesión del llamador.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tu-usuario/kardex-core/internal/domain"
)

const defaultTimeout = 30 * time.Second

// maxResponseBytes acota la lectura de respuestas del remoto (4 MB).
const maxResponseBytes = 4 << 20

// ── Token de sesión en el contexto ────────────────────────────────────────────

type tokenKey struct{}

// WithToken adjunta el bearer token de la sesión al contexto. El cliente lo
// reenvía tal cual en cada request al remoto.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom extrae el token adjuntado con WithToken; vacío si no hay.
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// ── Cliente base ──────────────────────────────────────────────────────────────

// Client es el cliente HTTP base contra el almacén remoto. Los adaptadores
// de productos, transacciones y reportes se construyen sobre él.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient construye el cliente. timeout cero aplica el valor por defecto.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// get ejecuta un GET y decodifica el JSON de respuesta en out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// post serializa body como JSON y lo envía. out puede ser nil si la
// respuesta no interesa.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("remoto: serializar payload: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, payload, out)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("remoto: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("remoto: %s %s: %w", method, path, ctx.Err())
		}
		c.log.Warn().Err(err).Str("path", path).Msg("almacén remoto inalcanzable")
		return fmt.Errorf("%w: %s %s: %v", domain.ErrStoreUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("remoto: leer respuesta de %s: %w", path, err)
	}

	if err := c.checkStatus(resp.StatusCode, method, path, raw); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("remoto: decodificar respuesta de %s: %w", path, err)
	}
	return nil
}

// checkStatus traduce los códigos HTTP del remoto a errores del dominio.
func (c *Client) checkStatus(status int, method, path string, raw []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		// Contrato con el remoto: token vencido o revocado, la sesión
		// local debe cerrarse.
		return fmt.Errorf("%w: %s %s", domain.ErrSessionExpired, method, path)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, method, path)
	case status >= 500:
		c.log.Error().Int("status", status).Str("path", path).Msg("error del almacén remoto")
		return fmt.Errorf("%w: %s %s devolvió %d", domain.ErrStoreUnavailable, method, path, status)
	default:
		return fmt.Errorf("remoto: %s %s devolvió %d: %s", method, path, status, truncate(raw, 200))
	}
}

func truncate(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
