package entity

import "time"

// Customer representa un cliente de la tienda.
type Customer struct {
	ID        string
	Code      string // único, generado (prefijo CU)
	Name      string
	Phone     string // único si no está vacío
	Email     string
	Address   string
	Birthday  *time.Time
	Notes     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
