package entity

import "time"

// Severidades de alerta.
const (
	SeverityCritical = "CRITICA"
	SeverityHigh     = "ALTA"
	SeverityMedium   = "MEDIA"
	SeverityLow      = "BAJA"
)

// Motivos de alerta.
const (
	AlertLowStock   = "stock_bajo"
	AlertCritStock  = "stock_critico"
	AlertNearExpiry = "vencimiento"
)

// Alert es una alerta derivada del snapshot de productos. Nunca se
// persiste: el mismo snapshot produce siempre las mismas alertas, solo
// cambia GeneratedAt (reloj de pared al momento del cálculo).
type Alert struct {
	ID          int    // secuencial dentro del lote generado
	Type        string // stock_bajo, stock_critico, vencimiento
	Product     string
	Message     string
	Severity    string // CRITICA, ALTA, MEDIA, BAJA
	Warehouse   string
	GeneratedAt time.Time
}
