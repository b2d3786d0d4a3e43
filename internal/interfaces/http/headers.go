package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/servicedesk-api/internal/application/dto"
)

// Headers de notificación y paginación que consume el frontend de la mesa de
// servicio: X-Servicedesk-Alert indica qué operación ocurrió y sobre qué
// entidad; X-Total-Count y Link describen la página devuelta.
const (
	HeaderAlert      = "X-Servicedesk-Alert"
	HeaderParams     = "X-Servicedesk-Params"
	HeaderTotalCount = "X-Total-Count"
)

const entityName = "category"

func setCreationAlert(c *fiber.Ctx, id string) {
	c.Set(HeaderAlert, "servicedeskApp."+entityName+".created")
	c.Set(HeaderParams, id)
}

func setUpdateAlert(c *fiber.Ctx, id string) {
	c.Set(HeaderAlert, "servicedeskApp."+entityName+".updated")
	c.Set(HeaderParams, id)
}

func setDeletionAlert(c *fiber.Ctx, id string) {
	c.Set(HeaderAlert, "servicedeskApp."+entityName+".deleted")
	c.Set(HeaderParams, id)
}

// setPaginationHeaders escribe X-Total-Count y el header Link con las
// relaciones next/prev/last/first calculadas sobre la URI actual.
func setPaginationHeaders(c *fiber.Ctx, page dto.PageRequest, total int64) {
	c.Set(HeaderTotalCount, strconv.FormatInt(total, 10))
	c.Set(fiber.HeaderLink, paginationLinks(c.BaseURL()+c.Path(), page, total))
}

// paginationLinks construye el valor del header Link. Siempre incluye last y
// first; next solo si hay página siguiente y prev solo si hay anterior.
func paginationLinks(baseURL string, page dto.PageRequest, total int64) string {
	totalPages := int64(0)
	if page.Size > 0 {
		totalPages = (total + int64(page.Size) - 1) / int64(page.Size)
	}
	lastPage := totalPages - 1
	if lastPage < 0 {
		lastPage = 0
	}

	var links []string
	if int64(page.Page) < lastPage {
		links = append(links, pageLink(baseURL, page, int64(page.Page)+1, "next"))
	}
	if page.Page > 0 {
		links = append(links, pageLink(baseURL, page, int64(page.Page)-1, "prev"))
	}
	links = append(links,
		pageLink(baseURL, page, lastPage, "last"),
		pageLink(baseURL, page, 0, "first"),
	)
	return strings.Join(links, ",")
}

func pageLink(baseURL string, page dto.PageRequest, target int64, rel string) string {
	query := fmt.Sprintf("page=%d&size=%d", target, page.Size)
	if page.Sort != "" {
		query += "&sort=" + page.Sort
	}
	return fmt.Sprintf("<%s?%s>; rel=\"%s\"", baseURL, query, rel)
}
