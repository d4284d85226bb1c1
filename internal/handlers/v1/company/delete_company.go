package company

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
)

// DeleteCompanyInput is the Huma input for deleting a company.
type DeleteCompanyInput struct {
	ID string `path:"id" doc:"Company UUID"`
}

// DeleteCompanyResponseBody is the response envelope for company deletion.
type DeleteCompanyResponseBody struct {
	Status  string `json:"status" doc:"Always 'success'"`
	Message string `json:"message" doc:"Deletion confirmation"`
}

// DeleteCompanyOutput is the Huma output for deleting a company.
type DeleteCompanyOutput struct {
	Body DeleteCompanyResponseBody
}

// companyDeleter is the interface for deleting companies.
type companyDeleter interface {
	DeleteCompany(ctx context.Context, id uuid.UUID) error
}

// DeleteCompanyHandler handles DELETE /companies/{id}.
type DeleteCompanyHandler struct {
	CompanyService companyDeleter
}

// NewDeleteCompanyHandler creates a new DeleteCompanyHandler.
func NewDeleteCompanyHandler(svc companyDeleter) *DeleteCompanyHandler {
	return &DeleteCompanyHandler{CompanyService: svc}
}

// Register registers the delete company endpoint with the Huma API.
func (h *DeleteCompanyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-company",
		Method:      http.MethodDelete,
		Path:        "/companies/{id}",
		Summary:     "Delete company",
		Description: "Removes a company.",
		Tags:        []string{"Companies"},
	}, h.handle)
}

func (h *DeleteCompanyHandler) handle(ctx context.Context, input *DeleteCompanyInput) (*DeleteCompanyOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid company id", err)
	}

	if err := h.CompanyService.DeleteCompany(ctx, id); err != nil {
		return nil, httperr.FromService(err)
	}

	return &DeleteCompanyOutput{Body: DeleteCompanyResponseBody{
		Status:  "success",
		Message: fmt.Sprintf("Company %s deleted successfully.", id),
	}}, nil
}
