package company

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// GetCompanyInput is the Huma input for fetching one company.
type GetCompanyInput struct {
	ID string `path:"id" doc:"Company UUID"`
}

// GetCompanyResponseBody is the response envelope for a single company.
type GetCompanyResponseBody struct {
	Status string  `json:"status" doc:"Always 'success'"`
	Data   Company `json:"data" doc:"The company with its users"`
}

// GetCompanyOutput is the Huma output for fetching one company.
type GetCompanyOutput struct {
	Body GetCompanyResponseBody
}

// companyGetter is the interface for fetching one company.
type companyGetter interface {
	GetCompany(ctx context.Context, id uuid.UUID) (*service.Company, error)
}

// GetCompanyHandler handles GET /companies/{id}.
type GetCompanyHandler struct {
	CompanyService companyGetter
}

// NewGetCompanyHandler creates a new GetCompanyHandler.
func NewGetCompanyHandler(svc companyGetter) *GetCompanyHandler {
	return &GetCompanyHandler{CompanyService: svc}
}

// Register registers the get company endpoint with the Huma API.
func (h *GetCompanyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-company",
		Method:      http.MethodGet,
		Path:        "/companies/{id}",
		Summary:     "Get company",
		Description: "Returns one company with its users.",
		Tags:        []string{"Companies"},
	}, h.handle)
}

func (h *GetCompanyHandler) handle(ctx context.Context, input *GetCompanyInput) (*GetCompanyOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid company id", err)
	}

	company, err := h.CompanyService.GetCompany(ctx, id)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &GetCompanyOutput{Body: GetCompanyResponseBody{
		Status: "success",
		Data:   companyFromService(*company),
	}}, nil
}
