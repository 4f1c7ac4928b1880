// Package kardex implementa el libro de movimientos de inventario: la
// normalización de transacciones crudas del almacén remoto y los agregados
// derivados (totales por tipo, series por período, métricas de venta y
// valorización). Todas las funciones son puras; cada vista recalcula desde
// cero sobre su propio snapshot.
package kardex

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/kardex-core/internal/domain/entity"
)

// RawMovement es una transacción tal como la entrega el almacén remoto.
// Los campos pueden venir nulos, las cantidades como número o como texto
// (incluyendo artefactos tipo "--1") y la fecha con separador espacio o "T".
type RawMovement struct {
	ID        int64       `json:"id"`
	Product   *string     `json:"producto"`
	Warehouse *string     `json:"almacen"`
	Quantity  RawQuantity `json:"cantidad"`
	Code      *string     `json:"codigo"`
	State     *string     `json:"estado"`
	Date      *string     `json:"fecha"`
	Notes     *string     `json:"observaciones"`
	Kind      *string     `json:"tipo"`
	User      *string     `json:"usuario"`

	// Campos monetarios opcionales; no todos los endpoints los incluyen.
	UnitPrice  RawAmount `json:"precioUnitario"`
	Price      RawAmount `json:"precio"`
	UnitAmount RawAmount `json:"montoUnitario"`
	Total      RawAmount `json:"total"`
	Amount     RawAmount `json:"monto"`
}

// RawQuantity conserva la cantidad cruda como texto para poder limpiar los
// marcadores de signo redundantes antes de reaplicar el signo canónico.
type RawQuantity struct {
	Raw string
}

// UnmarshalJSON acepta número, texto o null.
func (q *RawQuantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		q.Raw = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		q.Raw = s
		return nil
	}
	q.Raw = string(data)
	return nil
}

// MarshalJSON reexpone la forma cruda (solo para logging/depuración).
func (q RawQuantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.Raw)
}

// RawAmount es un monto que puede venir como número, texto o null.
// Cero equivale a ausente, igual que en los payloads de origen.
type RawAmount struct {
	Value decimal.Decimal
}

// UnmarshalJSON tolera número, texto o null; lo no interpretable queda en cero.
func (a *RawAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		a.Value = decimal.Zero
		return nil
	}
	s := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		a.Value = decimal.Zero
		return nil
	}
	a.Value = d
	return nil
}

// MarshalJSON serializa el valor decimal.
func (a RawAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Value)
}

// Normalize convierte una transacción cruda en su forma canónica.
// Nunca descarta el registro: una cantidad malformada queda en magnitud
// cero (visible para el operador) y un tipo desconocido pasa como OTROS.
func Normalize(raw RawMovement) entity.Movement {
	date, hour := SplitTimestamp(deref(raw.Date))

	return entity.Movement{
		ID:        raw.ID,
		Product:   deref(raw.Product),
		Warehouse: deref(raw.Warehouse),
		Kind:      NormalizeKind(deref(raw.Kind)),
		Quantity:  Magnitude(raw.Quantity.Raw),
		Date:      date,
		Time:      hour,
		User:      deref(raw.User),
		Reference: deref(raw.Code),
		Notes:     deref(raw.Notes),
		State:     deref(raw.State),
		UnitPrice: firstNonZero(raw.UnitPrice.Value, raw.Price.Value, raw.UnitAmount.Value),
		Total:     firstNonZero(raw.Total.Value, raw.Amount.Value),
	}
}

// NormalizeAll normaliza una lista completa conservando el orden de entrada.
func NormalizeAll(raws []RawMovement) []entity.Movement {
	out := make([]entity.Movement, 0, len(raws))
	for _, r := range raws {
		out = append(out, Normalize(r))
	}
	return out
}

// NormalizeKind lleva el tipo a mayúsculas y lo valida contra el conjunto
// conocido. VENTA es un alias histórico de SALIDA; cualquier otro valor no
// reconocido (incluido vacío) pasa como OTROS en lugar de fallar.
func NormalizeKind(kind string) string {
	k := strings.ToUpper(strings.TrimSpace(kind))
	switch k {
	case entity.KindEntry, entity.KindExit, entity.KindTransfer, entity.KindAdjust:
		return k
	case "VENTA":
		return entity.KindExit
	default:
		return entity.KindOther
	}
}

// Magnitude extrae la magnitud absoluta de una cantidad cruda. Quita todos
// los marcadores de signo del frente ("--1" → "1") antes de interpretar el
// número, para que el signo almacenado —de confianza dudosa— nunca se
// duplique con el canónico. Lo malformado normaliza a cero.
// Es idempotente: Magnitude sobre su propio resultado devuelve lo mismo.
func Magnitude(raw string) int64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimLeft(s, "-+")
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return -n
		}
		return n
	}
	// Algunos backends serializan enteros como "3.0".
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f < 0 {
			f = -f
		}
		return int64(f)
	}
	return 0
}

// SplitTimestamp separa una marca de tiempo en fecha (YYYY-MM-DD) y hora
// (HH:MM), tolerando separador "T" o espacio. Una marca vacía o inválida
// produce valores vacíos, nunca la hora actual.
func SplitTimestamp(ts string) (date, hour string) {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return "", ""
	}
	sep := " "
	if strings.Contains(ts, "T") {
		sep = "T"
	}
	parts := strings.SplitN(ts, sep, 2)
	date = parts[0]
	if len(date) > 10 {
		date = date[:10]
	}
	if len(parts) == 2 {
		hour = parts[1]
		if len(hour) > 5 {
			hour = hour[:5]
		}
	}
	return date, hour
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonZero(vals ...decimal.Decimal) decimal.Decimal {
	for _, v := range vals {
		if !v.IsZero() {
			return v
		}
	}
	return decimal.Zero
}
