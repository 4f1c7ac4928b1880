package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrSessionExpired   = errors.New("sesión expirada")
	ErrStoreUnavailable = errors.New("almacén remoto no disponible")
	ErrUnauthorized     = errors.New("no autorizado")
)
