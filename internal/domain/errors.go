package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUsernameTaken      = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)

// InsufficientStockError indica que una salida dejaría el stock en negativo.
// Lleva el stock actual y la cantidad solicitada para que la capa HTTP pueda
// mostrar un mensaje concreto.
type InsufficientStockError struct {
	Current   int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: hay %d, se solicitan %d", e.Current, e.Requested)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
