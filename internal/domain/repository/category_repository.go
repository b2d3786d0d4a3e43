package repository

import "github.com/jhoicas/servicedesk-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	// Update aplica un UPDATE condicional sobre la fila y devuelve la fila
	// resultante, o nil si el registro ya no existe. Al ser una sola sentencia,
	// cierra la ventana entre la verificación de existencia y la escritura.
	Update(category *entity.Category) (*entity.Category, error)
	List(limit, offset int, orderBy string) ([]*entity.Category, error)
	Count() (int64, error)
	ExistsByID(id string) (bool, error)
	Delete(id string) error
}
