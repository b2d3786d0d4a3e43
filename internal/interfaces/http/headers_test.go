package http

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/servicedesk-api/internal/application/dto"
)

const baseURL = "http://localhost:8080/api/categories"

func TestPaginationLinks_PaginaIntermedia(t *testing.T) {
	page := dto.PageRequest{Page: 1, Size: 10}
	link := paginationLinks(baseURL, page, 35) // 4 páginas (0..3)

	assert.Contains(t, link, `<`+baseURL+`?page=2&size=10>; rel="next"`)
	assert.Contains(t, link, `<`+baseURL+`?page=0&size=10>; rel="prev"`)
	assert.Contains(t, link, `<`+baseURL+`?page=3&size=10>; rel="last"`)
	assert.Contains(t, link, `<`+baseURL+`?page=0&size=10>; rel="first"`)
}

func TestPaginationLinks_PrimeraPaginaSinPrev(t *testing.T) {
	link := paginationLinks(baseURL, dto.PageRequest{Page: 0, Size: 10}, 35)

	assert.Contains(t, link, `rel="next"`)
	assert.NotContains(t, link, `rel="prev"`)
}

func TestPaginationLinks_UltimaPaginaSinNext(t *testing.T) {
	link := paginationLinks(baseURL, dto.PageRequest{Page: 3, Size: 10}, 35)

	assert.NotContains(t, link, `rel="next"`)
	assert.Contains(t, link, `rel="prev"`)
}

func TestPaginationLinks_SinFilas(t *testing.T) {
	link := paginationLinks(baseURL, dto.PageRequest{Page: 0, Size: 10}, 0)

	// Sin filas igual se emiten last y first apuntando a la página 0.
	assert.Contains(t, link, `<`+baseURL+`?page=0&size=10>; rel="last"`)
	assert.Contains(t, link, `<`+baseURL+`?page=0&size=10>; rel="first"`)
	assert.NotContains(t, link, `rel="next"`)
	assert.NotContains(t, link, `rel="prev"`)
}

func TestPaginationLinks_ConservaSort(t *testing.T) {
	link := paginationLinks(baseURL, dto.PageRequest{Page: 0, Size: 5, Sort: "name,desc"}, 12)

	assert.Contains(t, link, `?page=1&size=5&sort=name,desc>; rel="next"`)
}
