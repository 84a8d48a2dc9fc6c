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

type fakeCompanyRepo struct {
	companies map[string]entity.Company
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]entity.Company{}}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	r.companies[c.ID] = *c
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	if c, ok := r.companies[id]; ok {
		cp := c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCompanyRepo) GetByCNPJ(cnpj string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.CNPJ == cnpj {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error {
	r.companies[c.ID] = *c
	return nil
}

func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range r.companies {
		cp := c
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeCompanyRepo) Delete(id string) error {
	delete(r.companies, id)
	return nil
}

func TestCompanyCreate_CNPJDuplicado(t *testing.T) {
	uc := NewCompanyUseCase(newFakeCompanyRepo())

	_, err := uc.Create(dto.CreateCompanyRequest{Name: "Acme", CNPJ: "11.222.333/0001-44", BusinessArea: "Comercio"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCompanyRequest{Name: "Otra", CNPJ: "11.222.333/0001-44", BusinessArea: "Comercio"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCompanyCreate_CamposObligatorios(t *testing.T) {
	uc := NewCompanyUseCase(newFakeCompanyRepo())

	_, err := uc.Create(dto.CreateCompanyRequest{Name: "", CNPJ: "x", BusinessArea: "Comercio"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateCompanyRequest{Name: "Acme", CNPJ: "", BusinessArea: "Comercio"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateCompanyRequest{Name: "Acme", CNPJ: "x", BusinessArea: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompanyUpdate_CambioDeCNPJRevisaUnicidad(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := NewCompanyUseCase(repo)

	a, err := uc.Create(dto.CreateCompanyRequest{Name: "Acme", CNPJ: "cnpj-a", BusinessArea: "Comercio"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateCompanyRequest{Name: "Beta", CNPJ: "cnpj-b", BusinessArea: "Servicios"})
	require.NoError(t, err)

	// Cambiar al CNPJ de otra empresa falla; conservar el propio no.
	_, err = uc.Update(a.ID, dto.CreateCompanyRequest{Name: "Acme", CNPJ: "cnpj-b", BusinessArea: "Comercio"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	out, err := uc.Update(a.ID, dto.CreateCompanyRequest{Name: "Acme SA", CNPJ: "cnpj-a", BusinessArea: "Comercio"})
	require.NoError(t, err)
	assert.Equal(t, "Acme SA", out.Name)
}

func TestCompanyGetByID_Inexistente(t *testing.T) {
	uc := NewCompanyUseCase(newFakeCompanyRepo())

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
