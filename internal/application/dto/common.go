package dto

import "strings"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// columnas permitidas en el parámetro sort (nombre expuesto -> columna SQL).
var sortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"status":     "status",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// PageRequest paginación estilo page/size/sort para listados.
type PageRequest struct {
	Page int    `query:"page"`
	Size int    `query:"size"`
	Sort string `query:"sort"` // "campo,asc" o "campo,desc"
}

// Normalize aplica valores por defecto y topes a Page y Size.
func (p *PageRequest) Normalize() {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
}

// Offset devuelve el desplazamiento en filas para la página actual.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// OrderBy traduce el parámetro sort a una cláusula ORDER BY segura.
// Solo admite columnas de la lista blanca; cualquier otro valor cae al
// orden por defecto (created_at DESC).
func (p PageRequest) OrderBy() string {
	field, dir, _ := strings.Cut(p.Sort, ",")
	col, ok := sortColumns[strings.TrimSpace(field)]
	if !ok {
		return "created_at DESC"
	}
	if strings.EqualFold(strings.TrimSpace(dir), "desc") {
		return col + " DESC"
	}
	return col + " ASC"
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
