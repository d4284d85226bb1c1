package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	CompanyID    string `json:"company_id,omitempty" doc:"Owning company UUID"`
	Name         string `json:"name,omitempty" doc:"Category name"`
	Description  string `json:"description,omitempty" doc:"Category description"`
	BudgetAmount string `json:"budget_amount,omitempty" doc:"Decimal budget amount"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryResponseBody is the response envelope for category creation.
type CreateCategoryResponseBody struct {
	Status string   `json:"status" doc:"Always 'success'"`
	Data   Category `json:"data" doc:"The created category"`
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Body CreateCategoryResponseBody
}

// categoryCreator is the interface for creating categories.
type categoryCreator interface {
	CreateCategory(ctx context.Context, create service.CategoryCreate) (*service.Category, error)
}

// CreateCategoryHandler handles POST /categories.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/categories",
		Summary:     "Create category",
		Description: "Creates a new active expense category.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	if input.Body.CompanyID == "" || input.Body.Name == "" {
		return nil, huma.NewError(http.StatusBadRequest, "missing required fields: company_id, name")
	}
	companyID, err := uuid.FromString(input.Body.CompanyID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid company id", err)
	}

	create := service.CategoryCreate{
		CompanyID:   companyID,
		Name:        input.Body.Name,
		Description: input.Body.Description,
	}
	if input.Body.BudgetAmount != "" {
		budget, parseErr := decimal.NewFromString(input.Body.BudgetAmount)
		if parseErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid budget_amount", parseErr)
		}
		create.BudgetAmount = &budget
	}

	created, err := h.CategoryService.CreateCategory(ctx, create)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &CreateCategoryOutput{Body: CreateCategoryResponseBody{Status: "success", Data: categoryFromService(*created)}}, nil
}
