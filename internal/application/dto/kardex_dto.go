package dto

// RegisterMovementRequest body para POST /api/kardex. La cantidad llega
// como magnitud; el signo lo deriva siempre el servidor desde el tipo.
type RegisterMovementRequest struct {
	Product   string `json:"producto"`
	Warehouse string `json:"almacen"`
	Kind      string `json:"tipo"`
	Quantity  int64  `json:"cantidad"`
	Reference string `json:"codigo,omitempty"`
	Notes     string `json:"observaciones,omitempty"`
}

// KardexRowDTO es una fila del kardex lista para mostrar: la cantidad va
// formateada con el signo canónico (SALIDA/AJUSTE con guion al frente) y
// además en crudo firmado para quien quiera operar con ella.
type KardexRowDTO struct {
	ID        int64  `json:"id"`
	Date      string `json:"fecha"`
	Time      string `json:"hora"`
	Product   string `json:"producto"`
	Warehouse string `json:"almacen"`
	Kind      string `json:"tipo"`
	Quantity  string `json:"cantidad"`
	Signed    int64  `json:"cantidadFirmada"`
	User      string `json:"usuario"`
	Reference string `json:"referencia"`
}
