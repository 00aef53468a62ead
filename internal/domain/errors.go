package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrAlreadyCancelled  = errors.New("la venta ya fue cancelada o reembolsada")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrItemInUse         = errors.New("el artículo tiene ventas asociadas")
	ErrCustomerInUse     = errors.New("el cliente tiene ventas asociadas")
)
