package repository

import "github.com/jhoicas/gestion-erp/internal/domain/entity"

// DepartmentRepository define el puerto de persistencia para Department.
type DepartmentRepository interface {
	Create(department *entity.Department) error
	GetByID(id string) (*entity.Department, error)
	Update(department *entity.Department) error
	List(companyID string, limit, offset int) ([]*entity.Department, error)
	Delete(id string) error
}
