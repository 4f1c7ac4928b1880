package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/kardex-core/internal/application/dto"
	appkardex "github.com/tu-usuario/kardex-core/internal/application/kardex"
)

// KardexHandler maneja los endpoints del libro de movimientos (protegido).
type KardexHandler struct {
	uc *appkardex.UseCase
}

// NewKardexHandler construye el handler.
func NewKardexHandler(uc *appkardex.UseCase) *KardexHandler {
	return &KardexHandler{uc: uc}
}

// List devuelve el kardex completo ya normalizado, en el orden del remoto.
// GET /api/kardex
func (h *KardexHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":       len(rows),
		"movimientos": rows,
	})
}

// Register registra un movimiento nuevo en el remoto. El usuario sale del
// token de sesión, nunca del body.
// POST /api/kardex
func (h *KardexHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	if err := h.uc.Register(c.UserContext(), GetUserName(c), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimiento registrado"})
}
