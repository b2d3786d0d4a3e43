package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/servicedesk-api/internal/application/dto"
)

func TestPageRequest_NormalizeAplicaDefaults(t *testing.T) {
	p := dto.PageRequest{Page: -3, Size: 0}
	p.Normalize()

	assert.Equal(t, 0, p.Page)
	assert.Equal(t, 20, p.Size)
}

func TestPageRequest_NormalizeAplicaTope(t *testing.T) {
	p := dto.PageRequest{Size: 500}
	p.Normalize()

	assert.Equal(t, 100, p.Size, "size se limita a 100")
}

func TestPageRequest_Offset(t *testing.T) {
	p := dto.PageRequest{Page: 3, Size: 25}
	assert.Equal(t, 75, p.Offset())
}

func TestPageRequest_OrderByListaBlanca(t *testing.T) {
	cases := []struct {
		sort string
		want string
	}{
		{"name,asc", "name ASC"},
		{"name,desc", "name DESC"},
		{"updated_at,desc", "updated_at DESC"},
		{"name", "name ASC"},
		{"", "created_at DESC"},
		{"campo_inexistente,asc", "created_at DESC"},
		// Un intento de inyección cae al orden por defecto.
		{"name; DROP TABLE categories;--,asc", "created_at DESC"},
	}
	for _, tc := range cases {
		p := dto.PageRequest{Sort: tc.sort}
		assert.Equal(t, tc.want, p.OrderBy(), "sort=%q", tc.sort)
	}
}
