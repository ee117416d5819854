package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrStoreUnavailable = errors.New("base de datos no disponible")
)

// MovementRejectedError encapsula el mensaje de negocio que la base de datos
// lanza vía RAISE EXCEPTION dentro de sp_registrar_movimiento (SKU desconocido,
// stock insuficiente, etc.). El mensaje es apto para mostrar al usuario.
type MovementRejectedError struct {
	Message string
}

func (e *MovementRejectedError) Error() string {
	return e.Message
}

// IsMovementRejected indica si err es un rechazo de negocio de la BD.
func IsMovementRejected(err error) bool {
	var rej *MovementRejectedError
	return errors.As(err, &rej)
}
