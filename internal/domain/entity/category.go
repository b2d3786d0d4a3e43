package entity

import "time"

// Category representa una categoría de tickets de la mesa de servicio.
type Category struct {
	ID          string
	Name        string // único en toda la instalación
	Description string
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
