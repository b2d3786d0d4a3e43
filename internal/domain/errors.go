package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidID    = errors.New("identificador inválido")
	ErrIDMismatch   = errors.New("el id del cuerpo no coincide con el de la ruta")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
)
