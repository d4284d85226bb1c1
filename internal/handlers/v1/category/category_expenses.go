package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/expense"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// ListCategoryExpensesInput is the Huma input for listing a category's expenses.
type ListCategoryExpensesInput struct {
	ID string `path:"id" doc:"Category UUID"`
}

// ListCategoryExpensesResponseBody is the response envelope for category
// expense listings.
type ListCategoryExpensesResponseBody struct {
	Status  string            `json:"status" doc:"Always 'success'"`
	Data    []expense.Expense `json:"data" doc:"Expenses recorded under this category"`
	Message string            `json:"message,omitempty" doc:"Explanatory note"`
}

// ListCategoryExpensesOutput is the Huma output for category expense listings.
type ListCategoryExpensesOutput struct {
	Body ListCategoryExpensesResponseBody
}

// categoryExpenseLister is the interface for listing a category's expenses.
type categoryExpenseLister interface {
	ListCategoryExpenses(ctx context.Context, categoryID uuid.UUID) ([]service.Expense, error)
}

// ListCategoryExpensesHandler handles GET /categories/{id}/expenses. Bills do
// not reference categories yet, so the listing is always empty.
type ListCategoryExpensesHandler struct {
	CategoryService categoryExpenseLister
}

// NewListCategoryExpensesHandler creates a new ListCategoryExpensesHandler.
func NewListCategoryExpensesHandler(svc categoryExpenseLister) *ListCategoryExpensesHandler {
	return &ListCategoryExpensesHandler{CategoryService: svc}
}

// Register registers the category expenses endpoint with the Huma API.
func (h *ListCategoryExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-category-expenses",
		Method:      http.MethodGet,
		Path:        "/categories/{id}/expenses",
		Summary:     "List category expenses",
		Description: "Returns the expenses recorded under a category.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoryExpensesHandler) handle(ctx context.Context, input *ListCategoryExpensesInput) (*ListCategoryExpensesOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}

	expenses, err := h.CategoryService.ListCategoryExpenses(ctx, id)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	data := make([]expense.Expense, len(expenses))
	for i, e := range expenses {
		data[i] = expense.FromService(e)
	}
	return &ListCategoryExpensesOutput{Body: ListCategoryExpensesResponseBody{
		Status:  "success",
		Data:    data,
		Message: "Category expense tracking is not linked to bills yet.",
	}}, nil
}
