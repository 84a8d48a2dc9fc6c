package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-erp/internal/application/dto"
	"github.com/jhoicas/gestion-erp/internal/domain"
	"github.com/jhoicas/gestion-erp/internal/domain/entity"
	"github.com/jhoicas/gestion-erp/internal/domain/repository"
)

// CategoryUseCase casos de uso de categorías jerárquicas. La jerarquía es
// un árbol auto-referenciado: el update rechaza ciclos recorriendo la
// cadena de ancestros del padre propuesto.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría; si trae padre, valida que exista.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != nil {
		parent, err := uc.repo.GetByID(*in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		ParentID:    in.ParentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return categoryToResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return categoryToResponse(category), nil
}

// Update actualiza una categoría. Rechaza que sea su propio padre y que el
// nuevo padre forme un ciclo en la jerarquía.
func (uc *CategoryUseCase) Update(id string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.ParentID != nil {
		if *in.ParentID == id {
			return nil, domain.ErrInvalidInput
		}
		parent, err := uc.repo.GetByID(*in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
		// Sube por la cadena de ancestros del padre propuesto: si aparece
		// la propia categoría, la operación formaría un ciclo.
		for current := parent; current.ParentID != nil; {
			if *current.ParentID == id {
				return nil, domain.ErrInvalidInput
			}
			current, err = uc.repo.GetByID(*current.ParentID)
			if err != nil {
				return nil, err
			}
			if current == nil {
				break
			}
		}
	}
	category.Name = in.Name
	category.Description = in.Description
	category.ParentID = in.ParentID
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return categoryToResponse(category), nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List() (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return categoriesToListResponse(list), nil
}

// ListRoot lista las categorías sin padre.
func (uc *CategoryUseCase) ListRoot() (*dto.CategoryListResponse, error) {
	list, err := uc.repo.ListRoot()
	if err != nil {
		return nil, err
	}
	return categoriesToListResponse(list), nil
}

// ListChildren lista las subcategorías directas de una categoría.
func (uc *CategoryUseCase) ListChildren(id string) (*dto.CategoryListResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListChildren(id)
	if err != nil {
		return nil, err
	}
	return categoriesToListResponse(list), nil
}

// Delete elimina una categoría sin subcategorías.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	hasChildren, err := uc.repo.HasChildren(id)
	if err != nil {
		return err
	}
	if hasChildren {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func categoriesToListResponse(list []*entity.Category) *dto.CategoryListResponse {
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *categoryToResponse(c))
	}
	return &dto.CategoryListResponse{Items: items}
}

func categoryToResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
