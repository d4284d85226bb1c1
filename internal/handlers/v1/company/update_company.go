package company

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// UpdateCompanyBody is the request body for updating a company. Only the
// fields present are applied.
type UpdateCompanyBody struct {
	Name     *string `json:"name,omitempty" doc:"New company name"`
	Industry *string `json:"industry,omitempty" doc:"New industry label"`
}

// UpdateCompanyInput is the Huma input for updating a company.
type UpdateCompanyInput struct {
	ID   string `path:"id" doc:"Company UUID"`
	Body UpdateCompanyBody
}

// UpdateCompanyResponseBody is the response envelope for company updates.
type UpdateCompanyResponseBody struct {
	Status string  `json:"status" doc:"Always 'success'"`
	Data   Company `json:"data" doc:"The updated company"`
}

// UpdateCompanyOutput is the Huma output for updating a company.
type UpdateCompanyOutput struct {
	Body UpdateCompanyResponseBody
}

// companyUpdater is the interface for updating companies.
type companyUpdater interface {
	UpdateCompany(ctx context.Context, id uuid.UUID, update service.CompanyUpdate) (*service.Company, error)
}

// UpdateCompanyHandler handles PATCH /companies/{id}.
type UpdateCompanyHandler struct {
	CompanyService companyUpdater
}

// NewUpdateCompanyHandler creates a new UpdateCompanyHandler.
func NewUpdateCompanyHandler(svc companyUpdater) *UpdateCompanyHandler {
	return &UpdateCompanyHandler{CompanyService: svc}
}

// Register registers the update company endpoint with the Huma API.
func (h *UpdateCompanyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-company",
		Method:      http.MethodPatch,
		Path:        "/companies/{id}",
		Summary:     "Update company",
		Description: "Applies a partial update to a company.",
		Tags:        []string{"Companies"},
	}, h.handle)
}

func (h *UpdateCompanyHandler) handle(ctx context.Context, input *UpdateCompanyInput) (*UpdateCompanyOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid company id", err)
	}

	company, err := h.CompanyService.UpdateCompany(ctx, id, service.CompanyUpdate{
		Name:     input.Body.Name,
		Industry: input.Body.Industry,
	})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &UpdateCompanyOutput{Body: UpdateCompanyResponseBody{
		Status: "success",
		Data:   companyFromService(*company),
	}}, nil
}
