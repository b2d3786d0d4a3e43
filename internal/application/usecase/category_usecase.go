package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/servicedesk-api/internal/application/dto"
	"github.com/jhoicas/servicedesk-api/internal/domain"
	"github.com/jhoicas/servicedesk-api/internal/domain/entity"
	"github.com/jhoicas/servicedesk-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías de la mesa de servicio.
// El ID y los timestamps se asignan aquí; el cliente nunca manda el ID.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una nueva categoría. El nombre es único en la instalación.
func (uc *CategoryUseCase) Create(in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Status == "" {
		in.Status = "active"
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update reemplaza por completo una categoría existente (PUT).
// Devuelve ErrNotFound si la fila desapareció antes de la escritura.
func (uc *CategoryUseCase) Update(id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.Status == "" {
		in.Status = "active"
	}
	category := &entity.Category{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		UpdatedAt:   time.Now(),
	}
	updated, err := uc.repo.Update(category)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(updated), nil
}

// PartialUpdate aplica semántica merge-patch: solo los campos presentes en el
// cuerpo sobreescriben lo almacenado. Devuelve nil (sin error) si la categoría
// no existe al leerla o desapareció antes del UPDATE condicional.
func (uc *CategoryUseCase) PartialUpdate(id string, in dto.CategoryPatchRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Status != nil {
		category.Status = *in.Status
	}
	category.UpdatedAt = time.Now()
	updated, err := uc.repo.Update(category)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	return toCategoryResponse(updated), nil
}

// List devuelve la página solicitada y el total de filas para los headers
// de paginación.
func (uc *CategoryUseCase) List(page dto.PageRequest) ([]dto.CategoryResponse, int64, error) {
	list, err := uc.repo.List(page.Size, page.Offset(), page.OrderBy())
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, cat := range list {
		items = append(items, *toCategoryResponse(cat))
	}
	return items, total, nil
}

// GetByID obtiene una categoría por ID; nil si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// ExistsByID verifica si existe una categoría con ese ID.
func (uc *CategoryUseCase) ExistsByID(id string) (bool, error) {
	return uc.repo.ExistsByID(id)
}

// Delete elimina una categoría por ID. Borrar un ID inexistente no es error.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
