package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvoiceNotFound   = errors.New("factura no encontrada")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidEntity     = errors.New("entidad de tipo incorrecto")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnsupportedFormat = errors.New("formato no soportado")
)
