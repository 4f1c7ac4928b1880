// Package kardex contiene los casos de uso del libro de movimientos: el
// listado normalizado del kardex y el registro de movimientos nuevos
// contra el almacén remoto.
package kardex

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/kardex-core/internal/application/dto"
	"github.com/tu-usuario/kardex-core/internal/domain"
	"github.com/tu-usuario/kardex-core/internal/domain/entity"
	domkardex "github.com/tu-usuario/kardex-core/internal/domain/kardex"
	"github.com/tu-usuario/kardex-core/internal/domain/repository"
)

// UseCase casos de uso del kardex.
type UseCase struct {
	movements repository.MovementSource
	now       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(movements repository.MovementSource) *UseCase {
	return &UseCase{movements: movements, now: time.Now}
}

// List devuelve el kardex completo en orden cronológico del remoto, con
// cada transacción cruda ya normalizada. Un registro malformado se muestra
// con cantidad cero en lugar de tumbar el listado.
func (uc *UseCase) List(ctx context.Context) ([]dto.KardexRowDTO, error) {
	raws, err := uc.movements.ListMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("kardex: listar transacciones: %w", err)
	}

	rows := make([]dto.KardexRowDTO, 0, len(raws))
	for _, m := range domkardex.NormalizeAll(raws) {
		rows = append(rows, ToRow(m))
	}
	return rows, nil
}

// ToRow proyecta un movimiento canónico a fila de kardex. La cantidad se
// formatea reaplicando el signo canónico derivado del tipo.
func ToRow(m entity.Movement) dto.KardexRowDTO {
	quantity := strconv.FormatInt(m.Quantity, 10)
	if m.Negative() {
		quantity = "-" + quantity
	}
	return dto.KardexRowDTO{
		ID:        m.ID,
		Date:      orDash(m.Date),
		Time:      m.Time,
		Product:   orDash(m.Product),
		Warehouse: orDash(m.Warehouse),
		Kind:      m.Kind,
		Quantity:  quantity,
		Signed:    m.Signed(),
		User:      orDash(m.User),
		Reference: orDash(m.Reference),
	}
}

// Register valida y envía un movimiento nuevo al remoto. La cantidad llega
// como magnitud y el signo con el que viaja al remoto se deriva del tipo;
// el signo que pudiera traer el request se ignora. El remoto no devuelve
// saldo: el llamador debe recargar el kardex para ver el efecto.
func (uc *UseCase) Register(ctx context.Context, user string, req dto.RegisterMovementRequest) error {
	if strings.TrimSpace(req.Product) == "" || strings.TrimSpace(req.Warehouse) == "" {
		return fmt.Errorf("%w: producto y almacén son obligatorios", domain.ErrInvalidInput)
	}
	if req.Quantity == 0 {
		return fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}

	kind := domkardex.NormalizeKind(req.Kind)
	if req.Kind != "" && kind == entity.KindOther && strings.ToUpper(strings.TrimSpace(req.Kind)) != entity.KindOther {
		return fmt.Errorf("%w: tipo de movimiento desconocido %q", domain.ErrInvalidInput, req.Kind)
	}

	quantity := req.Quantity
	if quantity < 0 {
		quantity = -quantity
	}
	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		reference = "TRX-" + strings.ToUpper(uuid.NewString()[:8])
	}

	if user == "" {
		user = "Sistema"
	}
	now := uc.now()

	movement := entity.Movement{
		Product:   strings.TrimSpace(req.Product),
		Warehouse: strings.TrimSpace(req.Warehouse),
		Kind:      kind,
		Quantity:  quantity,
		Date:      now.Format("2006-01-02"),
		Time:      now.Format("15:04"),
		User:      user,
		Reference: reference,
		Notes:     req.Notes,
		State:     "ACTIVO",
	}

	if err := uc.movements.CreateMovement(ctx, movement); err != nil {
		return fmt.Errorf("kardex: registrar movimiento: %w", err)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
