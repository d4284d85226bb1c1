package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// ListCompanyCategoriesInput is the Huma input for listing a company's categories.
type ListCompanyCategoriesInput struct {
	CompanyID string `path:"company_id" doc:"Company UUID"`
}

// ListCategoriesResponseBody is the response envelope for category listings.
type ListCategoriesResponseBody struct {
	Status string     `json:"status" doc:"Always 'success'"`
	Data   []Category `json:"data" doc:"Active categories"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// categoryLister is the interface for listing categories.
type categoryLister interface {
	ListCompanyCategories(ctx context.Context, companyID uuid.UUID) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /categories/company/{company_id}.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the category listing endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-company-categories",
		Method:      http.MethodGet,
		Path:        "/categories/company/{company_id}",
		Summary:     "List company categories",
		Description: "Returns a company's active categories; soft-deleted ones are excluded.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCompanyCategoriesInput) (*ListCategoriesOutput, error) {
	companyID, err := uuid.FromString(input.CompanyID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid company id", err)
	}

	categories, err := h.CategoryService.ListCompanyCategories(ctx, companyID)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	resp := ListCategoriesResponseBody{
		Status: "success",
		Data:   make([]Category, len(categories)),
	}
	for i, c := range categories {
		resp.Data[i] = categoryFromService(c)
	}
	return &ListCategoriesOutput{Body: resp}, nil
}
