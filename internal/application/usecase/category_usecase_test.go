package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-erp/internal/application/dto"
	"github.com/jhoicas/gestion-erp/internal/domain"
	"github.com/jhoicas/gestion-erp/internal/domain/entity"
	"github.com/jhoicas/gestion-erp/internal/domain/repository"
)

type fakeCategoryRepo struct {
	categories map[string]entity.Category
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]entity.Category{}}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.categories[c.ID] = *c
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	if c, ok := r.categories[id]; ok {
		cp := c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	r.categories[c.ID] = *c
	return nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range r.categories {
		cp := c
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeCategoryRepo) ListRoot() ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range r.categories {
		if c.ParentID == nil {
			cp := c
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeCategoryRepo) ListChildren(parentID string) ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range r.categories {
		if c.ParentID != nil && *c.ParentID == parentID {
			cp := c
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeCategoryRepo) HasChildren(id string) (bool, error) {
	for _, c := range r.categories {
		if c.ParentID != nil && *c.ParentID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

// buildChain crea A ← B ← C (C hija de B, B hija de A) y devuelve los IDs.
func buildChain(t *testing.T, uc *CategoryUseCase) (string, string, string) {
	t.Helper()
	a, err := uc.Create(dto.CreateCategoryRequest{Name: "Alimentos"})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas", ParentID: &a.ID})
	require.NoError(t, err)
	c, err := uc.Create(dto.CreateCategoryRequest{Name: "Cervezas", ParentID: &b.ID})
	require.NoError(t, err)
	return a.ID, b.ID, c.ID
}

func TestCategoryUpdate_RechazaCiclo(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo())
	aID, _, cID := buildChain(t, uc)

	// Mover la raíz bajo su descendiente formaría A → C → B → A.
	_, err := uc.Update(aID, dto.CreateCategoryRequest{Name: "Alimentos", ParentID: &cID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryUpdate_RechazaSerSuPropioPadre(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo())
	aID, _, _ := buildChain(t, uc)

	_, err := uc.Update(aID, dto.CreateCategoryRequest{Name: "Alimentos", ParentID: &aID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryUpdate_MoverAOtraRamaValida(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo())
	aID, _, cID := buildChain(t, uc)

	// C puede colgarse directamente de A sin ciclo.
	out, err := uc.Update(cID, dto.CreateCategoryRequest{Name: "Cervezas", ParentID: &aID})
	require.NoError(t, err)
	assert.Equal(t, aID, *out.ParentID)
}

func TestCategoryCreate_PadreInexistente(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo())
	ghost := "no-existe"

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Huérfana", ParentID: &ghost})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryDelete_ConHijasRechazado(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo())
	aID, bID, cID := buildChain(t, uc)

	err := uc.Delete(aID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	err = uc.Delete(bID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// La hoja sí se elimina.
	require.NoError(t, uc.Delete(cID))
}

func TestCategoryListRootYChildren(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo())
	aID, bID, _ := buildChain(t, uc)

	roots, err := uc.ListRoot()
	require.NoError(t, err)
	require.Len(t, roots.Items, 1)
	assert.Equal(t, aID, roots.Items[0].ID)

	children, err := uc.ListChildren(aID)
	require.NoError(t, err)
	require.Len(t, children.Items, 1)
	assert.Equal(t, bID, children.Items[0].ID)
}
