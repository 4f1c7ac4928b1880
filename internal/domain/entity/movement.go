package entity

import "github.com/shopspring/decimal"

// Tipos de movimiento del kardex. Los valores coinciden con el campo `tipo`
// del almacén remoto; VENTA llega por el mismo canal y se normaliza a SALIDA.
const (
	KindEntry    = "ENTRADA"
	KindExit     = "SALIDA"
	KindTransfer = "TRANSFERENCIA"
	KindAdjust   = "AJUSTE"
	KindOther    = "OTROS" // tipo no reconocido; se muestra, no se agrega
)

// KnownKinds es el conjunto cerrado de tipos que participan en los
// agregados por tipo. OTROS queda fuera de los cuatro buckets.
var KnownKinds = []string{KindEntry, KindExit, KindTransfer, KindAdjust}

// Movement es la forma canónica de un movimiento del kardex después de
// pasar por el normalizador. Quantity es siempre magnitud absoluta; el
// signo se deriva exclusivamente del tipo (ver Signed).
type Movement struct {
	ID        int64
	Product   string // referencia por nombre; el remoto no impone FK estricta
	Warehouse string
	Kind      string // ENTRADA, SALIDA, TRANSFERENCIA, AJUSTE u OTROS
	Quantity  int64  // magnitud absoluta, nunca negativa
	Date      string // YYYY-MM-DD, vacío si la fecha no se pudo interpretar
	Time      string // HH:MM, vacío si no hay componente de hora
	User      string
	Reference string // código libre de referencia
	Notes     string
	State     string

	// Datos monetarios opcionales del remoto; cero equivale a ausente,
	// igual que en los payloads de origen.
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Negative informa si el tipo se muestra con signo negativo.
// SALIDA y AJUSTE restan stock; el resto (incluido OTROS) se muestra sin signo.
func (m Movement) Negative() bool {
	return m.Kind == KindExit || m.Kind == KindAdjust
}

// Signed devuelve la cantidad con el signo canónico derivado del tipo.
func (m Movement) Signed() int64 {
	if m.Negative() {
		return -m.Quantity
	}
	return m.Quantity
}
