package models

import "errors"

var (
	// ErrNotFound se devuelve cuando una categoría o variación no existe
	ErrNotFound = errors.New("not found")
	// ErrCycle se devuelve cuando un cambio de padre crearía un ciclo
	ErrCycle = errors.New("category cannot be moved under itself or one of its descendants")
)

// ValidationError representa un error de validación
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
