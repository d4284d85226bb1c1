package company

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// CreateCompanyBody is the request body for creating a company.
type CreateCompanyBody struct {
	Name     string `json:"name,omitempty" doc:"Company name, trimmed before matching"`
	Industry string `json:"industry,omitempty" doc:"Industry label"`
}

// CreateCompanyInput is the Huma input for creating a company.
type CreateCompanyInput struct {
	Body CreateCompanyBody
}

// CreateCompanyResponseBody is the response envelope for company creation.
// Message is set when an existing company was reused instead of inserting.
type CreateCompanyResponseBody struct {
	Status  string  `json:"status" doc:"Always 'success'"`
	Data    Company `json:"data" doc:"The created or reused company"`
	Message string  `json:"message,omitempty" doc:"Set when an existing company was reused"`
}

// CreateCompanyOutput is the Huma output for creating a company.
type CreateCompanyOutput struct {
	Body CreateCompanyResponseBody
}

// companyCreator is the interface for creating companies.
type companyCreator interface {
	CreateCompany(ctx context.Context, name, industry string) (*service.Company, bool, error)
}

// CreateCompanyHandler handles POST /companies.
type CreateCompanyHandler struct {
	CompanyService companyCreator
}

// NewCreateCompanyHandler creates a new CreateCompanyHandler.
func NewCreateCompanyHandler(svc companyCreator) *CreateCompanyHandler {
	return &CreateCompanyHandler{CompanyService: svc}
}

// Register registers the create company endpoint with the Huma API.
func (h *CreateCompanyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-company",
		Method:      http.MethodPost,
		Path:        "/companies",
		Summary:     "Create company",
		Description: "Creates a company, or returns the existing company with the same name.",
		Tags:        []string{"Companies"},
	}, h.handle)
}

func (h *CreateCompanyHandler) handle(ctx context.Context, input *CreateCompanyInput) (*CreateCompanyOutput, error) {
	company, existed, err := h.CompanyService.CreateCompany(ctx, input.Body.Name, input.Body.Industry)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	resp := CreateCompanyResponseBody{
		Status: "success",
		Data:   companyFromService(*company),
	}
	if existed {
		resp.Message = "Company with this name already exists. Using existing company."
	}
	return &CreateCompanyOutput{Body: resp}, nil
}
