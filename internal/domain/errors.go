package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP los traduce a códigos de estado.
var (
	ErrValidation         = errors.New("entrada inválida")
	ErrConflict           = errors.New("usuario o email ya existe")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthenticated    = errors.New("token requerido")
	ErrForbidden          = errors.New("token inválido")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrNotFound           = errors.New("item no encontrado")
)

// ValidationError detalle de una validación fallida; errors.Is(err, ErrValidation) es true.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError construye un ValidationError.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
