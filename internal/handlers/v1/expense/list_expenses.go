package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/logging"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// ListExpensesInput is the Huma input for listing all expenses.
type ListExpensesInput struct{}

// ListCompanyExpensesInput is the Huma input for listing a company's expenses.
type ListCompanyExpensesInput struct {
	CompanyID string `path:"company_id" doc:"Company UUID"`
}

// ListExpensesResponseBody is the response envelope for expense listings.
type ListExpensesResponseBody struct {
	Status string    `json:"status" doc:"Always 'success'"`
	Data   []Expense `json:"data" doc:"Expenses"`
}

// ListExpensesOutput is the Huma output for expense listings.
type ListExpensesOutput struct {
	Body ListExpensesResponseBody
}

// expenseLister is the interface for listing expenses.
type expenseLister interface {
	ListExpenses(ctx context.Context) ([]service.Expense, error)
	ListCompanyExpenses(ctx context.Context, companyID uuid.UUID) ([]service.Expense, error)
}

// ListExpensesHandler handles GET /expenses and GET /expenses/company/{company_id}.
type ListExpensesHandler struct {
	ExpenseService expenseLister
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(svc expenseLister) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc}
}

// Register registers both expense listing endpoints with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/expenses",
		Summary:     "List expenses",
		Description: "Returns all expenses with vendor names.",
		Tags:        []string{"Expenses"},
	}, h.handleList)

	huma.Register(api, huma.Operation{
		OperationID: "list-company-expenses",
		Method:      http.MethodGet,
		Path:        "/expenses/company/{company_id}",
		Summary:     "List company expenses",
		Description: "Returns a single company's expenses with vendor names.",
		Tags:        []string{"Expenses"},
	}, h.handleListByCompany)
}

func (h *ListExpensesHandler) handleList(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := h.ExpenseService.ListExpenses(ctx)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return listOutput(ctx, expenses), nil
}

func (h *ListExpensesHandler) handleListByCompany(ctx context.Context, input *ListCompanyExpensesInput) (*ListExpensesOutput, error) {
	companyID, err := uuid.FromString(input.CompanyID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid company id", err)
	}

	expenses, err := h.ExpenseService.ListCompanyExpenses(ctx, companyID)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return listOutput(ctx, expenses), nil
}

func listOutput(ctx context.Context, expenses []service.Expense) *ListExpensesOutput {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("expenseCount", len(expenses))
	}

	resp := ListExpensesResponseBody{
		Status: "success",
		Data:   make([]Expense, len(expenses)),
	}
	for i, e := range expenses {
		resp.Data[i] = FromService(e)
	}
	return &ListExpensesOutput{Body: resp}
}
