package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-erp/internal/application/dto"
	"github.com/jhoicas/gestion-erp/internal/application/usecase"
	"github.com/jhoicas/gestion-erp/internal/domain/entity"
	"github.com/jhoicas/gestion-erp/internal/domain/repository"
)

type memCompanyRepo struct {
	companies map[string]entity.Company
}

var _ repository.CompanyRepository = (*memCompanyRepo)(nil)

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: map[string]entity.Company{}}
}

func (r *memCompanyRepo) Create(c *entity.Company) error {
	r.companies[c.ID] = *c
	return nil
}

func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	if c, ok := r.companies[id]; ok {
		cp := c
		return &cp, nil
	}
	return nil, nil
}

func (r *memCompanyRepo) GetByCNPJ(cnpj string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.CNPJ == cnpj {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCompanyRepo) Update(c *entity.Company) error {
	r.companies[c.ID] = *c
	return nil
}

func (r *memCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range r.companies {
		cp := c
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memCompanyRepo) Delete(id string) error {
	delete(r.companies, id)
	return nil
}

func newCompanyApp() *fiber.App {
	app := fiber.New()
	h := NewCompanyHandler(usecase.NewCompanyUseCase(newMemCompanyRepo()))
	g := app.Group("/api/companies")
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCompanyHandler_CreateDevuelve201(t *testing.T) {
	app := newCompanyApp()

	resp := postJSON(t, app, "/api/companies", dto.CreateCompanyRequest{
		Name: "Acme", CNPJ: "11.222.333/0001-44", BusinessArea: "Comercio",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.CompanyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Acme", out.Name)
}

func TestCompanyHandler_ValidacionDevuelve400(t *testing.T) {
	app := newCompanyApp()

	resp := postJSON(t, app, "/api/companies", dto.CreateCompanyRequest{Name: "", CNPJ: "x", BusinessArea: "y"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

func TestCompanyHandler_DuplicadoDevuelve409(t *testing.T) {
	app := newCompanyApp()
	in := dto.CreateCompanyRequest{Name: "Acme", CNPJ: "cnpj-1", BusinessArea: "Comercio"}

	resp := postJSON(t, app, "/api/companies", in)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/companies", in)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decodeError(t, resp).Code)
}

func TestCompanyHandler_InexistenteDevuelve404(t *testing.T) {
	app := newCompanyApp()

	req := httptest.NewRequest(fiber.MethodGet, "/api/companies/no-existe", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

func TestCompanyHandler_CuerpoInvalidoDevuelve400(t *testing.T) {
	app := newCompanyApp()

	req := httptest.NewRequest(fiber.MethodPost, "/api/companies", bytes.NewReader([]byte("{no es json")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

func TestCompanyHandler_DeleteDevuelve204(t *testing.T) {
	app := newCompanyApp()

	resp := postJSON(t, app, "/api/companies", dto.CreateCompanyRequest{
		Name: "Acme", CNPJ: "cnpj-1", BusinessArea: "Comercio",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created dto.CompanyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	req := httptest.NewRequest(fiber.MethodDelete, "/api/companies/"+created.ID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
