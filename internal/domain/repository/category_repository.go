package repository

import "github.com/jhoicas/gestion-erp/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	ListRoot() ([]*entity.Category, error)
	ListChildren(parentID string) ([]*entity.Category, error)
	HasChildren(id string) (bool, error)
	Delete(id string) error
}
