package dto

import "time"

// CategoryRequest cuerpo para crear (POST) o reemplazar (PUT) una categoría.
// ID es puntero para distinguir "sin id" de "id vacío": en POST debe venir
// ausente y en PUT debe venir y coincidir con el id de la ruta.
type CategoryRequest struct {
	ID          *string `json:"id"`
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description string  `json:"description"`
	Status      string  `json:"status"` // active, inactive; vacío = active
}

// CategoryPatchRequest cuerpo merge-patch (PATCH): solo los campos presentes
// sobreescriben el valor almacenado; un campo ausente queda intacto.
type CategoryPatchRequest struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
