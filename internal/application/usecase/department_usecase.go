package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-erp/internal/application/dto"
	"github.com/jhoicas/gestion-erp/internal/domain"
	"github.com/jhoicas/gestion-erp/internal/domain/entity"
	"github.com/jhoicas/gestion-erp/internal/domain/repository"
)

// DepartmentUseCase casos de uso de departamentos.
type DepartmentUseCase struct {
	repo        repository.DepartmentRepository
	companyRepo repository.CompanyRepository
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(repo repository.DepartmentRepository, companyRepo repository.CompanyRepository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo, companyRepo: companyRepo}
}

// Create crea un departamento validando que la empresa exista.
func (uc *DepartmentUseCase) Create(in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if in.Name == "" || in.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	department := &entity.Department{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CompanyID: in.CompanyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(department); err != nil {
		return nil, err
	}
	return departmentToResponse(department), nil
}

// GetByID obtiene un departamento por ID.
func (uc *DepartmentUseCase) GetByID(id string) (*dto.DepartmentResponse, error) {
	department, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrNotFound
	}
	return departmentToResponse(department), nil
}

// Update actualiza nombre y empresa de un departamento.
func (uc *DepartmentUseCase) Update(id string, in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if in.Name == "" || in.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}
	department, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	department.Name = in.Name
	department.CompanyID = in.CompanyID
	department.UpdatedAt = time.Now()
	if err := uc.repo.Update(department); err != nil {
		return nil, err
	}
	return departmentToResponse(department), nil
}

// List lista departamentos, opcionalmente filtrados por empresa.
func (uc *DepartmentUseCase) List(companyID string, limit, offset int) (*dto.DepartmentListResponse, error) {
	list, err := uc.repo.List(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *departmentToResponse(d))
	}
	return &dto.DepartmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un departamento por ID.
func (uc *DepartmentUseCase) Delete(id string) error {
	department, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if department == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func departmentToResponse(d *entity.Department) *dto.DepartmentResponse {
	if d == nil {
		return nil
	}
	return &dto.DepartmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		CompanyID: d.CompanyID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
