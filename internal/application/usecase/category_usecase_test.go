package usecase_test

import (
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/servicedesk-api/internal/application/dto"
	"github.com/jhoicas/servicedesk-api/internal/application/usecase"
	"github.com/jhoicas/servicedesk-api/internal/domain"
	"github.com/jhoicas/servicedesk-api/internal/domain/entity"
	"github.com/jhoicas/servicedesk-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*memRepo)(nil)

// memRepo fake mínimo del puerto CategoryRepository para el caso de uso.
type memRepo struct {
	mu   sync.Mutex
	byID map[string]*entity.Category
}

func newMemRepo() *memRepo {
	return &memRepo{byID: make(map[string]*entity.Category)}
}

func (m *memRepo) Create(c *entity.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *memRepo) GetByID(id string) (*entity.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memRepo) GetByName(name string) (*entity.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.byID {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRepo) Update(c *entity.Category) (*entity.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.byID[c.ID]
	if !ok {
		return nil, nil
	}
	stored.Name = c.Name
	stored.Description = c.Description
	stored.Status = c.Status
	stored.UpdatedAt = c.UpdatedAt
	cp := *stored
	return &cp, nil
}

func (m *memRepo) List(limit, offset int, orderBy string) ([]*entity.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]*entity.Category, 0, len(m.byID))
	for _, c := range m.byID {
		cp := *c
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool {
		if strings.HasPrefix(orderBy, "name") {
			return all[i].Name < all[j].Name
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *memRepo) Count() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.byID)), nil
}

func (m *memRepo) ExistsByID(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byID[id]
	return ok, nil
}

func (m *memRepo) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AsignaIDYTimestamps(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemRepo())

	out, err := uc.Create(dto.CategoryRequest{Name: "Hardware", Description: "equipos"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID, "el id lo asigna el caso de uso, nunca el cliente")
	assert.Equal(t, "active", out.Status, "status por defecto")
	assert.False(t, out.CreatedAt.IsZero())
	assert.Equal(t, out.CreatedAt, out.UpdatedAt, "al crear, created_at y updated_at coinciden")
}

func TestCreate_NombreDuplicado(t *testing.T) {
	repo := newMemRepo()
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(dto.CategoryRequest{Name: "Hardware"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CategoryRequest{Name: "Hardware"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdate_FilaInexistente(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemRepo())

	_, err := uc.Update("no-existe", dto.CategoryRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPartialUpdate_IgnoraCamposAusentes(t *testing.T) {
	repo := newMemRepo()
	require.NoError(t, repo.Create(&entity.Category{
		ID: "cat-1", Name: "Hardware", Description: "equipos", Status: "active",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}))
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.PartialUpdate("cat-1", dto.CategoryPatchRequest{
		ID:   strPtr("cat-1"),
		Name: strPtr("Periféricos"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Periféricos", out.Name)
	assert.Equal(t, "equipos", out.Description, "descripción ausente del patch queda intacta")
	assert.Equal(t, "active", out.Status, "status ausente del patch queda intacto")
}

func TestPartialUpdate_SobreescribeConVacio(t *testing.T) {
	repo := newMemRepo()
	require.NoError(t, repo.Create(&entity.Category{
		ID: "cat-1", Name: "Hardware", Description: "equipos", Status: "active",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}))
	uc := usecase.NewCategoryUseCase(repo)

	// Un campo presente con valor vacío sí sobreescribe: presente != ausente.
	out, err := uc.PartialUpdate("cat-1", dto.CategoryPatchRequest{
		ID:          strPtr("cat-1"),
		Description: strPtr(""),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Hardware", out.Name)
	assert.Empty(t, out.Description)
}

func TestPartialUpdate_NilSiNoExiste(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemRepo())

	out, err := uc.PartialUpdate("no-existe", dto.CategoryPatchRequest{Name: strPtr("X")})
	require.NoError(t, err)
	assert.Nil(t, out, "categoría inexistente devuelve nil sin error")
}

func TestList_DevuelveTotalYPagina(t *testing.T) {
	repo := newMemRepo()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Create(&entity.Category{
			ID:        string(rune('a' + i)),
			Name:      "cat-" + string(rune('a'+i)),
			Status:    "active",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			UpdatedAt: base,
		}))
	}
	uc := usecase.NewCategoryUseCase(repo)

	page := dto.PageRequest{Page: 1, Size: 3}
	page.Normalize()
	items, total, err := uc.List(page)
	require.NoError(t, err)

	assert.Equal(t, int64(7), total, "el total cuenta todas las filas, no la página")
	assert.Len(t, items, 3)
}

func TestDelete_IDInexistenteNoEsError(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemRepo())
	assert.NoError(t, uc.Delete("no-existe"))
}
