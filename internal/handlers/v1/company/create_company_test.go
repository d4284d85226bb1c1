package company

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// mockCompanyService is a mock for the company service interfaces used by the
// handlers in this package.
type mockCompanyService struct {
	mock.Mock
}

func (m *mockCompanyService) CreateCompany(ctx context.Context, name, industry string) (*service.Company, bool, error) {
	args := m.Called(ctx, name, industry)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*service.Company), args.Bool(1), args.Error(2)
}

func (m *mockCompanyService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func makeServiceCompany(name string) *service.Company {
	return &service.Company{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      name,
		Industry:  "Retail",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newCreateTestAPI(t *testing.T, svc companyCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateCompanyHandler(svc).Register(api)
	return api
}

func TestHTTP_CreateCompany_Success(t *testing.T) {
	mockSvc := new(mockCompanyService)
	created := makeServiceCompany("Acme")
	mockSvc.On("CreateCompany", mock.Anything, "Acme", "Retail").Return(created, false, nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/companies", CreateCompanyBody{
		Name:     "Acme",
		Industry: "Retail",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CreateCompanyResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, created.ID.String(), body.Data.ID)
	assert.Empty(t, body.Message)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateCompany_ReusesExisting(t *testing.T) {
	mockSvc := new(mockCompanyService)
	existing := makeServiceCompany("Acme")
	mockSvc.On("CreateCompany", mock.Anything, "Acme", "").Return(existing, true, nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/companies", CreateCompanyBody{Name: "Acme"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CreateCompanyResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Company with this name already exists. Using existing company.", body.Message)
	assert.Equal(t, existing.ID.String(), body.Data.ID)
}

func TestHTTP_CreateCompany_BlankName(t *testing.T) {
	mockSvc := new(mockCompanyService)
	mockSvc.On("CreateCompany", mock.Anything, "   ", "").
		Return(nil, false, fmt.Errorf("%w: company name is required", service.ErrValidation))

	resp := newCreateTestAPI(t, mockSvc).Post("/companies", CreateCompanyBody{Name: "   "})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateCompany_MissingName(t *testing.T) {
	mockSvc := new(mockCompanyService)
	mockSvc.On("CreateCompany", mock.Anything, "", "").
		Return(nil, false, fmt.Errorf("%w: company name is required", service.ErrValidation))

	resp := newCreateTestAPI(t, mockSvc).Post("/companies", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_DeleteCompany_Success(t *testing.T) {
	mockSvc := new(mockCompanyService)
	id := uuid.Must(uuid.NewV4())
	mockSvc.On("DeleteCompany", mock.Anything, id).Return(nil)

	_, api := humatest.New(t)
	NewDeleteCompanyHandler(mockSvc).Register(api)

	resp := api.Delete("/companies/" + id.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DeleteCompanyResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fmt.Sprintf("Company %s deleted successfully.", id), body.Message)
}

func TestHTTP_DeleteCompany_NotFound(t *testing.T) {
	mockSvc := new(mockCompanyService)
	id := uuid.Must(uuid.NewV4())
	mockSvc.On("DeleteCompany", mock.Anything, id).
		Return(fmt.Errorf("%w: company not found", service.ErrNotFound))

	_, api := humatest.New(t)
	NewDeleteCompanyHandler(mockSvc).Register(api)

	resp := api.Delete("/companies/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteCompany_InvalidID(t *testing.T) {
	mockSvc := new(mockCompanyService)

	_, api := humatest.New(t)
	NewDeleteCompanyHandler(mockSvc).Register(api)

	resp := api.Delete("/companies/not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "DeleteCompany")
}
