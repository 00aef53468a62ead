package entity

import "time"

// ItemType representa una categoría de artículos (alimento, juguete, accesorio...).
type ItemType struct {
	ID          string
	Name        string // único
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // soft delete: nil = visible
}
