package expense

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

// mockExpenseService is a mock for the expense service interfaces used by the
// handlers in this package.
type mockExpenseService struct {
	mock.Mock
}

func (m *mockExpenseService) ListExpenses(ctx context.Context) ([]service.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Expense), args.Error(1)
}

func (m *mockExpenseService) ListCompanyExpenses(ctx context.Context, companyID uuid.UUID) ([]service.Expense, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Expense), args.Error(1)
}

func (m *mockExpenseService) UpdateExpense(ctx context.Context, id uuid.UUID, update service.ExpenseUpdate) (*service.Expense, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Expense), args.Error(1)
}

func (m *mockExpenseService) VoidExpense(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func makeServiceExpense() service.Expense {
	return service.Expense{
		ID:          uuid.Must(uuid.NewV4()),
		CompanyID:   uuid.Must(uuid.NewV4()),
		VendorID:    uuid.Must(uuid.NewV4()),
		VendorName:  "Staples",
		BillNumber:  "EXP-1750000000",
		BillDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.RequireFromString("120.00"),
		BalanceDue:  decimal.RequireFromString("120.00"),
		Status:      "draft",
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// -- List tests --

func TestHTTP_ListExpenses_Success(t *testing.T) {
	mockSvc := new(mockExpenseService)
	mockSvc.On("ListExpenses", mock.Anything).
		Return([]service.Expense{makeServiceExpense()}, nil)

	_, api := humatest.New(t)
	NewListExpensesHandler(mockSvc).Register(api)

	resp := api.Get("/expenses")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListExpensesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, "Staples", body.Data[0].VendorName)
	assert.Equal(t, "2025-06-01", body.Data[0].BillDate)
	assert.Equal(t, "120.00", body.Data[0].TotalAmount)
}

func TestHTTP_ListCompanyExpenses_InvalidID(t *testing.T) {
	mockSvc := new(mockExpenseService)

	_, api := humatest.New(t)
	NewListExpensesHandler(mockSvc).Register(api)

	resp := api.Get("/expenses/company/not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ListCompanyExpenses")
}

// -- Update tests --

func TestHTTP_UpdateExpense_Success(t *testing.T) {
	mockSvc := new(mockExpenseService)
	updated := makeServiceExpense()

	mockSvc.On("UpdateExpense", mock.Anything, updated.ID, mock.MatchedBy(func(u service.ExpenseUpdate) bool {
		return u.Amount != nil && u.Amount.Equal(decimal.RequireFromString("75.50")) &&
			u.VendorName == nil
	})).Return(&updated, nil)

	_, api := humatest.New(t)
	NewUpdateExpenseHandler(mockSvc).Register(api)

	amount := "75.50"
	resp := api.Patch("/expenses/"+updated.ID.String(), UpdateExpenseBody{Amount: &amount})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body UpdateExpenseResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, updated.ID.String(), body.Data.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateExpense_InvalidAmount(t *testing.T) {
	mockSvc := new(mockExpenseService)

	_, api := humatest.New(t)
	NewUpdateExpenseHandler(mockSvc).Register(api)

	amount := "not-a-decimal"
	resp := api.Patch("/expenses/"+uuid.Must(uuid.NewV4()).String(), UpdateExpenseBody{Amount: &amount})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateExpense")
}

func TestHTTP_UpdateExpense_NoFields(t *testing.T) {
	mockSvc := new(mockExpenseService)
	id := uuid.Must(uuid.NewV4())
	mockSvc.On("UpdateExpense", mock.Anything, id, mock.Anything).
		Return(nil, fmt.Errorf("%w: no update fields provided", service.ErrValidation))

	_, api := humatest.New(t)
	NewUpdateExpenseHandler(mockSvc).Register(api)

	resp := api.Patch("/expenses/"+id.String(), UpdateExpenseBody{})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// -- Void tests --

func TestHTTP_DeleteExpense_Success(t *testing.T) {
	mockSvc := new(mockExpenseService)
	id := uuid.Must(uuid.NewV4())
	mockSvc.On("VoidExpense", mock.Anything, id).Return(nil)

	_, api := humatest.New(t)
	NewDeleteExpenseHandler(mockSvc).Register(api)

	resp := api.Delete("/expenses/" + id.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DeleteExpenseResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fmt.Sprintf("Expense %s voided successfully.", id), body.Message)
}

func TestHTTP_DeleteExpense_NotFound(t *testing.T) {
	mockSvc := new(mockExpenseService)
	id := uuid.Must(uuid.NewV4())
	mockSvc.On("VoidExpense", mock.Anything, id).
		Return(fmt.Errorf("%w: expense not found", service.ErrNotFound))

	_, api := humatest.New(t)
	NewDeleteExpenseHandler(mockSvc).Register(api)

	resp := api.Delete("/expenses/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
