package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de ciclo de vida de un producto.
const (
	ProductActive       = "ACTIVO"
	ProductInactive     = "INACTIVO"
	ProductDiscontinued = "DESCONTINUADO"
)

// Product representa un producto del catálogo tal como lo entrega el
// almacén remoto. Stock es el valor autoritativo del remoto en el momento
// del snapshot; este servicio nunca mantiene un saldo propio.
type Product struct {
	ID        int64
	Code      string // código/SKU único
	Name      string
	Category  string
	Warehouse string          // etiqueta de ubicación/almacén
	Price     decimal.Decimal // precio unitario de referencia
	Stock     int64           // stock actual (no negativo)
	MinStock  int64           // stockMinimo configurado
	Expiry    time.Time       // fecha de vencimiento (solo si HasExpiry)
	HasExpiry bool
	State     string // ACTIVO, INACTIVO, DESCONTINUADO
}

// InventoryValue devuelve stock * precio para las valorizaciones.
func (p Product) InventoryValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(p.Stock))
}
