package repository

import "errors"

var (
	// ErrNoDatabase indica que el driver requiere una conexión que no está configurada.
	ErrNoDatabase = errors.New("no database configured")

	// ErrUnknownDriver indica que no hay adapter registrado con ese nombre.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrNotImplemented indica que la operación no está implementada por este driver.
	ErrNotImplemented = errors.New("not implemented")
)

// IsNoDatabase verifica si el error es ErrNoDatabase.
func IsNoDatabase(err error) bool {
	return errors.Is(err, ErrNoDatabase)
}
