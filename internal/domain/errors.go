package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrConstraint    = errors.New("la referencia no existe")
	ErrHasDependents = errors.New("el recurso tiene dependientes")
	ErrUnauthorized  = errors.New("credenciales inválidas")
	ErrForbidden     = errors.New("acceso denegado")
)
