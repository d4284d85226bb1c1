package expense

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// UpdateExpenseBody is the request body for updating an expense. Only the
// fields present are applied; amount updates both total and balance due.
type UpdateExpenseBody struct {
	VendorName *string `json:"vendor_name,omitempty" doc:"New vendor name, created under the bill's company when absent"`
	Amount     *string `json:"amount,omitempty" doc:"New decimal amount"`
	Memo       *string `json:"memo,omitempty" doc:"New memo"`
	Date       *string `json:"date,omitempty" doc:"New bill date (YYYY-MM-DD)"`
	Status     *string `json:"status,omitempty" doc:"New status"`
}

// UpdateExpenseInput is the Huma input for updating an expense.
type UpdateExpenseInput struct {
	ID   string `path:"id" doc:"Expense UUID"`
	Body UpdateExpenseBody
}

// UpdateExpenseResponseBody is the response envelope for expense updates.
type UpdateExpenseResponseBody struct {
	Status string  `json:"status" doc:"Always 'success'"`
	Data   Expense `json:"data" doc:"The updated expense"`
}

// UpdateExpenseOutput is the Huma output for updating an expense.
type UpdateExpenseOutput struct {
	Body UpdateExpenseResponseBody
}

// expenseUpdater is the interface for updating expenses.
type expenseUpdater interface {
	UpdateExpense(ctx context.Context, id uuid.UUID, update service.ExpenseUpdate) (*service.Expense, error)
}

// UpdateExpenseHandler handles PATCH /expenses/{id}.
type UpdateExpenseHandler struct {
	ExpenseService expenseUpdater
}

// NewUpdateExpenseHandler creates a new UpdateExpenseHandler.
func NewUpdateExpenseHandler(svc expenseUpdater) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{ExpenseService: svc}
}

// Register registers the update expense endpoint with the Huma API.
func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-expense",
		Method:      http.MethodPatch,
		Path:        "/expenses/{id}",
		Summary:     "Update expense",
		Description: "Applies a partial update to an expense.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *UpdateExpenseHandler) handle(ctx context.Context, input *UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid expense id", err)
	}

	update := service.ExpenseUpdate{
		VendorName: input.Body.VendorName,
		Memo:       input.Body.Memo,
		Status:     input.Body.Status,
	}
	if input.Body.Amount != nil {
		amount, parseErr := decimal.NewFromString(*input.Body.Amount)
		if parseErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid amount", parseErr)
		}
		update.Amount = &amount
	}
	if input.Body.Date != nil {
		date, parseErr := time.Parse(billDateFormat, *input.Body.Date)
		if parseErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", parseErr)
		}
		update.Date = &date
	}

	updated, err := h.ExpenseService.UpdateExpense(ctx, id, update)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &UpdateExpenseOutput{Body: UpdateExpenseResponseBody{
		Status: "success",
		Data:   FromService(*updated),
	}}, nil
}
