package expense

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
)

// DeleteExpenseInput is the Huma input for voiding an expense.
type DeleteExpenseInput struct {
	ID string `path:"id" doc:"Expense UUID"`
}

// DeleteExpenseResponseBody is the response envelope for expense voiding.
type DeleteExpenseResponseBody struct {
	Status  string `json:"status" doc:"Always 'success'"`
	Message string `json:"message" doc:"Void confirmation"`
}

// DeleteExpenseOutput is the Huma output for voiding an expense.
type DeleteExpenseOutput struct {
	Body DeleteExpenseResponseBody
}

// expenseVoider is the interface for voiding expenses.
type expenseVoider interface {
	VoidExpense(ctx context.Context, id uuid.UUID) error
}

// DeleteExpenseHandler handles DELETE /expenses/{id}. The bill is never
// removed; its status is set to void.
type DeleteExpenseHandler struct {
	ExpenseService expenseVoider
}

// NewDeleteExpenseHandler creates a new DeleteExpenseHandler.
func NewDeleteExpenseHandler(svc expenseVoider) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{ExpenseService: svc}
}

// Register registers the delete expense endpoint with the Huma API.
func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-expense",
		Method:      http.MethodDelete,
		Path:        "/expenses/{id}",
		Summary:     "Void expense",
		Description: "Soft-deletes an expense by setting its status to void.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid expense id", err)
	}

	if err := h.ExpenseService.VoidExpense(ctx, id); err != nil {
		return nil, httperr.FromService(err)
	}

	return &DeleteExpenseOutput{Body: DeleteExpenseResponseBody{
		Status:  "success",
		Message: fmt.Sprintf("Expense %s voided successfully.", id),
	}}, nil
}
