package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-erp/internal/application/dto"
	"github.com/jhoicas/gestion-erp/internal/domain"
	"github.com/jhoicas/gestion-erp/internal/domain/entity"
	"github.com/jhoicas/gestion-erp/internal/domain/repository"
)

const hireDateLayout = "2006-01-02"

// EmployeeUseCase casos de uso de colaboradores.
type EmployeeUseCase struct {
	repo           repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, departmentRepo repository.DepartmentRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, departmentRepo: departmentRepo}
}

// Create crea un colaborador validando que el departamento exista.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	hireDate, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Position:     in.Position,
		Salary:       in.Salary,
		HireDate:     hireDate,
		DepartmentID: in.DepartmentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return employeeToResponse(employee), nil
}

// GetByID obtiene un colaborador por ID.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return employeeToResponse(employee), nil
}

// Update actualiza un colaborador.
func (uc *EmployeeUseCase) Update(id string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	hireDate, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	employee.Name = in.Name
	employee.Position = in.Position
	employee.Salary = in.Salary
	employee.HireDate = hireDate
	employee.DepartmentID = in.DepartmentID
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return employeeToResponse(employee), nil
}

// List lista colaboradores, opcionalmente filtrados por departamento.
func (uc *EmployeeUseCase) List(departmentID string, limit, offset int) (*dto.EmployeeListResponse, error) {
	list, err := uc.repo.List(departmentID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *employeeToResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un colaborador por ID.
func (uc *EmployeeUseCase) Delete(id string) error {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// validate chequea campos obligatorios y que el departamento exista.
func (uc *EmployeeUseCase) validate(in dto.CreateEmployeeRequest) (time.Time, error) {
	if in.Name == "" || in.Position == "" || in.HireDate == "" || in.DepartmentID == "" {
		return time.Time{}, domain.ErrInvalidInput
	}
	if in.Salary.IsNegative() {
		return time.Time{}, domain.ErrInvalidInput
	}
	hireDate, err := time.Parse(hireDateLayout, in.HireDate)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	department, err := uc.departmentRepo.GetByID(in.DepartmentID)
	if err != nil {
		return time.Time{}, err
	}
	if department == nil {
		return time.Time{}, domain.ErrNotFound
	}
	return hireDate, nil
}

func employeeToResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Position:     e.Position,
		Salary:       e.Salary,
		HireDate:     e.HireDate.Format(hireDateLayout),
		DepartmentID: e.DepartmentID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
