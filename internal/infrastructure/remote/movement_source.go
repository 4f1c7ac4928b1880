package remote

import (
	"context"
	"fmt"

	"github.com/tu-usuario/kardex-core/internal/domain/entity"
	"github.com/tu-usuario/kardex-core/internal/domain/kardex"
)

const movementsPath = "/transacciones/api"

// MovementSource implementa repository.MovementSource sobre el remoto.
type MovementSource struct {
	client *Client
}

// NewMovementSource construye el adaptador de transacciones.
func NewMovementSource(client *Client) *MovementSource {
	return &MovementSource{client: client}
}

// ListMovements trae las transacciones crudas; la normalización vive en el
// dominio, aquí no se interpreta nada.
func (s *MovementSource) ListMovements(ctx context.Context) ([]kardex.RawMovement, error) {
	var raws []kardex.RawMovement
	if err := s.client.get(ctx, movementsPath, &raws); err != nil {
		return nil, fmt.Errorf("listar transacciones: %w", err)
	}
	return raws, nil
}

// createMovementRequest es el payload de POST /transacciones/api. La
// cantidad viaja ya firmada según el tipo; el remoto la almacena tal cual.
type createMovementRequest struct {
	Product   string `json:"producto"`
	Warehouse string `json:"almacen"`
	Quantity  int64  `json:"cantidad"`
	Code      string `json:"codigo"`
	State     string `json:"estado"`
	Date      string `json:"fecha"`
	Notes     string `json:"observaciones,omitempty"`
	Kind      string `json:"tipo"`
	User      string `json:"usuario"`
}

// CreateMovement registra un movimiento nuevo. El remoto no devuelve el
// saldo resultante; el llamador recarga para observar el efecto.
func (s *MovementSource) CreateMovement(ctx context.Context, m entity.Movement) error {
	date := m.Date
	if m.Time != "" {
		date = m.Date + "T" + m.Time + ":00"
	}
	req := createMovementRequest{
		Product:   m.Product,
		Warehouse: m.Warehouse,
		Quantity:  m.Signed(),
		Code:      m.Reference,
		State:     m.State,
		Date:      date,
		Notes:     m.Notes,
		Kind:      m.Kind,
		User:      m.User,
	}
	if err := s.client.post(ctx, movementsPath, req, nil); err != nil {
		return fmt.Errorf("registrar transacción: %w", err)
	}
	return nil
}
