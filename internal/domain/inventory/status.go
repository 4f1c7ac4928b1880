// Package inventory contiene los servicios de dominio puros sobre el
// estado de stock de un producto.
package inventory

// Status es el nivel de severidad del stock de un producto.
type Status string

// Niveles de stock, de mejor a peor.
const (
	StatusNormal   Status = "NORMAL"
	StatusLow      Status = "BAJO"
	StatusCritical Status = "CRITICO"
)

// StockStatus clasifica el stock actual frente al mínimo configurado:
//
//	CRITICO si stock <= mínimo/2
//	BAJO    si stock <= mínimo
//	NORMAL  en otro caso
//
// La comparación con mínimo/2 se hace en enteros (2*stock <= mínimo) para
// no perder el caso de mínimos impares. Un mínimo de 0 significa "sin
// umbral configurado" y siempre clasifica NORMAL, incluso con stock 0.
func StockStatus(stock, minStock int64) Status {
	if minStock <= 0 {
		return StatusNormal
	}
	if 2*stock <= minStock {
		return StatusCritical
	}
	if stock <= minStock {
		return StatusLow
	}
	return StatusNormal
}
