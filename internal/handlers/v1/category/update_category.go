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

// UpdateCategoryBody is the request body for updating a category. Only the
// fields present are applied.
type UpdateCategoryBody struct {
	Name         *string `json:"name,omitempty" doc:"New category name"`
	Description  *string `json:"description,omitempty" doc:"New description"`
	BudgetAmount *string `json:"budget_amount,omitempty" doc:"New decimal budget amount"`
	IsActive     *bool   `json:"is_active,omitempty" doc:"Active flag"`
}

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	ID   string `path:"id" doc:"Category UUID"`
	Body UpdateCategoryBody
}

// UpdateCategoryResponseBody is the response envelope for category updates.
type UpdateCategoryResponseBody struct {
	Status string   `json:"status" doc:"Always 'success'"`
	Data   Category `json:"data" doc:"The updated category"`
}

// UpdateCategoryOutput is the Huma output for updating a category.
type UpdateCategoryOutput struct {
	Body UpdateCategoryResponseBody
}

// categoryUpdater is the interface for updating categories.
type categoryUpdater interface {
	UpdateCategory(ctx context.Context, id uuid.UUID, update service.CategoryUpdate) (*service.Category, error)
}

// UpdateCategoryHandler handles PATCH /categories/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPatch,
		Path:        "/categories/{id}",
		Summary:     "Update category",
		Description: "Applies a partial update to a category.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}

	update := service.CategoryUpdate{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		IsActive:    input.Body.IsActive,
	}
	if input.Body.BudgetAmount != nil {
		budget, parseErr := decimal.NewFromString(*input.Body.BudgetAmount)
		if parseErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid budget_amount", parseErr)
		}
		update.BudgetAmount = &budget
	}

	category, err := h.CategoryService.UpdateCategory(ctx, id, update)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &UpdateCategoryOutput{Body: UpdateCategoryResponseBody{
		Status: "success",
		Data:   categoryFromService(*category),
	}}, nil
}
