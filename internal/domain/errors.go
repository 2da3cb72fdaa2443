package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidIdentifier = errors.New("identificador inválido")
	ErrInvalidPayload    = errors.New("cuerpo de la petición inválido")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrStore             = errors.New("error del almacén de documentos")
)
