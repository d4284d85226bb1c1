package category

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// mockCategoryService is a mock for the category service interfaces used by
// the handlers in this package.
type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, create service.CategoryCreate) (*service.Category, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Category), args.Error(1)
}

func (m *mockCategoryService) ListCompanyCategories(ctx context.Context, companyID uuid.UUID) ([]service.Category, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Category), args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCategoryService) ListCategoryExpenses(ctx context.Context, categoryID uuid.UUID) ([]service.Expense, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Expense), args.Error(1)
}

func makeServiceCategory(name string) *service.Category {
	budget := decimal.RequireFromString("500.00")
	return &service.Category{
		ID:           uuid.Must(uuid.NewV4()),
		CompanyID:    uuid.Must(uuid.NewV4()),
		Name:         name,
		BudgetAmount: &budget,
		IsActive:     true,
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestHTTP_CreateCategory_Success(t *testing.T) {
	mockSvc := new(mockCategoryService)
	created := makeServiceCategory("Office")

	mockSvc.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c service.CategoryCreate) bool {
		return c.CompanyID == created.CompanyID &&
			c.Name == "Office" &&
			c.BudgetAmount != nil && c.BudgetAmount.Equal(decimal.RequireFromString("500.00"))
	})).Return(created, nil)

	_, api := humatest.New(t)
	NewCreateCategoryHandler(mockSvc).Register(api)

	resp := api.Post("/categories", CreateCategoryBody{
		CompanyID:    created.CompanyID.String(),
		Name:         "Office",
		BudgetAmount: "500.00",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CreateCategoryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "success", body.Status)
	assert.True(t, body.Data.IsActive)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateCategory_InvalidBudget(t *testing.T) {
	mockSvc := new(mockCategoryService)

	_, api := humatest.New(t)
	NewCreateCategoryHandler(mockSvc).Register(api)

	resp := api.Post("/categories", CreateCategoryBody{
		CompanyID:    uuid.Must(uuid.NewV4()).String(),
		Name:         "Office",
		BudgetAmount: "not-a-decimal",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateCategory")
}

func TestHTTP_CreateCategory_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockCategoryService)

	_, api := humatest.New(t)
	NewCreateCategoryHandler(mockSvc).Register(api)

	resp := api.Post("/categories", CreateCategoryBody{Name: "Office"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "missing required fields")
	mockSvc.AssertNotCalled(t, "CreateCategory")
}

func TestHTTP_ListCategories_Success(t *testing.T) {
	mockSvc := new(mockCategoryService)
	companyID := uuid.Must(uuid.NewV4())
	mockSvc.On("ListCompanyCategories", mock.Anything, companyID).
		Return([]service.Category{*makeServiceCategory("Office")}, nil)

	_, api := humatest.New(t)
	NewListCategoriesHandler(mockSvc).Register(api)

	resp := api.Get("/categories/company/" + companyID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListCategoriesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, "Office", body.Data[0].Name)
}

func TestHTTP_DeleteCategory_Success(t *testing.T) {
	mockSvc := new(mockCategoryService)
	id := uuid.Must(uuid.NewV4())
	mockSvc.On("DeleteCategory", mock.Anything, id).Return(nil)

	_, api := humatest.New(t)
	NewDeleteCategoryHandler(mockSvc).Register(api)

	resp := api.Delete("/categories/" + id.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DeleteCategoryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fmt.Sprintf("Category %s deleted successfully.", id), body.Message)
}

func TestHTTP_DeleteCategory_NotFound(t *testing.T) {
	mockSvc := new(mockCategoryService)
	id := uuid.Must(uuid.NewV4())
	mockSvc.On("DeleteCategory", mock.Anything, id).
		Return(fmt.Errorf("%w: category not found", service.ErrNotFound))

	_, api := humatest.New(t)
	NewDeleteCategoryHandler(mockSvc).Register(api)

	resp := api.Delete("/categories/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_ListCategoryExpenses_Empty(t *testing.T) {
	mockSvc := new(mockCategoryService)
	id := uuid.Must(uuid.NewV4())
	mockSvc.On("ListCategoryExpenses", mock.Anything, id).Return([]service.Expense{}, nil)

	_, api := humatest.New(t)
	NewListCategoryExpensesHandler(mockSvc).Register(api)

	resp := api.Get("/categories/" + id.String() + "/expenses")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListCategoryExpensesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Data)
	assert.NotEmpty(t, body.Message)
}
