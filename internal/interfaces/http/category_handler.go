package http

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/servicedesk-api/internal/application/dto"
	"github.com/jhoicas/servicedesk-api/internal/application/usecase"
	"github.com/jhoicas/servicedesk-api/internal/domain"
)

const mergePatchContentType = "application/merge-patch+json"

// CategoryHandler maneja las peticiones HTTP para Category. Valida la forma de
// la petición (id ausente/presente/coincidente, existencia previa) y delega la
// lógica de negocio en el caso de uso.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "Datos de la categoría (sin id)"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ID != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "una categoría nueva no puede traer id"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una categoría con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderLocation, "/api/categories/"+out.ID)
	setCreationAlert(c, out.ID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.CategoryRequest  true  "Datos completos (id requerido)"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.checkIdentifier(id, in.ID); err != nil {
		return h.identifierError(c, err)
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		// La fila desapareció entre la verificación y el UPDATE: mismo 400
		// que devuelve la verificación previa.
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la categoría no existe"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una categoría con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	setUpdateAlert(c, id)
	return c.JSON(out)
}

// PartialUpdate godoc
// @Summary      Actualizar parcialmente una categoría (merge-patch)
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.CategoryPatchRequest  true  "Campos a sobreescribir (id requerido)"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      415   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [patch]
func (h *CategoryHandler) PartialUpdate(c *fiber.Ctx) error {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), mergePatchContentType) {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_MEDIA_TYPE", Message: "se requiere Content-Type " + mergePatchContentType})
	}
	id := c.Params("id")
	// BodyParser solo decodifica application/json; el merge-patch se
	// deserializa a mano.
	var in dto.CategoryPatchRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.checkIdentifier(id, in.ID); err != nil {
		return h.identifierError(c, err)
	}
	out, err := h.uc.PartialUpdate(id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// La fila desapareció entre la verificación de existencia y el UPDATE
	// condicional: aquí sí es 404, a diferencia del PUT. Send(nil) y no
	// SendStatus: este último escribe el texto del status como cuerpo.
	if out == nil {
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	setUpdateAlert(c, id)
	return c.JSON(out)
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Param        page  query  int     false  "Página (base 0)"         default(0)
// @Param        size  query  int     false  "Tamaño de página"        default(20)
// @Param        sort  query  string  false  "Orden: campo,asc|desc"
// @Success      200   {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page: c.QueryInt("page", 0),
		Size: c.QueryInt("size", 20),
		Sort: c.Query("sort"),
	}
	page.Normalize()
	items, total, err := h.uc.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	setPaginationHeaders(c, page, total)
	return c.JSON(items)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  "No existe"
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		// 404 sin cuerpo: el frontend distingue "no existe" por el status.
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Param        id   path  string  true  "ID de la categoría"
// @Success      204  "Eliminada"
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	// Sin verificación de existencia: borrar un ID ausente también es 204
	// (DELETE idempotente).
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	setDeletionAlert(c, id)
	return c.SendStatus(fiber.StatusNoContent)
}

// checkIdentifier valida las invariantes de identificador de PUT y PATCH:
// el cuerpo debe traer id, debe coincidir con el de la ruta y la categoría
// debe existir. La verificación de existencia es consultiva; la escritura
// posterior vuelve a comprobarla de forma atómica.
func (h *CategoryHandler) checkIdentifier(pathID string, bodyID *string) error {
	if bodyID == nil || *bodyID == "" {
		return domain.ErrInvalidID
	}
	if *bodyID != pathID {
		return domain.ErrIDMismatch
	}
	exists, err := h.uc.ExistsByID(pathID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

// identifierError traduce los errores de checkIdentifier a respuestas HTTP.
// "No existe" también es 400 aquí: la petición referencia una entidad inválida.
func (h *CategoryHandler) identifierError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidID:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "el cuerpo debe incluir el id"})
	case domain.ErrIDMismatch:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_MISMATCH", Message: "el id del cuerpo no coincide con el de la ruta"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la categoría no existe"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
