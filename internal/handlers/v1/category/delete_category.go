package category

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	ID string `path:"id" doc:"Category UUID"`
}

// DeleteCategoryResponseBody is the response envelope for category deletion.
type DeleteCategoryResponseBody struct {
	Status  string `json:"status" doc:"Always 'success'"`
	Message string `json:"message" doc:"Deletion confirmation"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Body DeleteCategoryResponseBody
}

// categoryDeleter is the interface for deleting categories.
type categoryDeleter interface {
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// DeleteCategoryHandler handles DELETE /categories/{id}. Deletion is a soft
// delete: the category is marked inactive and drops out of listings.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/categories/{id}",
		Summary:     "Delete category",
		Description: "Soft-deletes a category by marking it inactive.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}

	if err := h.CategoryService.DeleteCategory(ctx, id); err != nil {
		return nil, httperr.FromService(err)
	}

	return &DeleteCategoryOutput{Body: DeleteCategoryResponseBody{
		Status:  "success",
		Message: fmt.Sprintf("Category %s deleted successfully.", id),
	}}, nil
}
