package company

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/logging"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// ListCompaniesInput is the Huma input for listing companies.
type ListCompaniesInput struct{}

// ListCompaniesResponseBody is the response envelope for company listings.
type ListCompaniesResponseBody struct {
	Status string    `json:"status" doc:"Always 'success'"`
	Data   []Company `json:"data" doc:"Companies"`
}

// ListCompaniesOutput is the Huma output for listing companies.
type ListCompaniesOutput struct {
	Body ListCompaniesResponseBody
}

// companyLister is the interface for listing companies.
type companyLister interface {
	ListCompanies(ctx context.Context) ([]service.Company, error)
	ListCompaniesWithUsers(ctx context.Context) ([]service.Company, error)
}

// ListCompaniesHandler handles GET /companies and GET /companies/with-users.
type ListCompaniesHandler struct {
	CompanyService companyLister
}

// NewListCompaniesHandler creates a new ListCompaniesHandler.
func NewListCompaniesHandler(svc companyLister) *ListCompaniesHandler {
	return &ListCompaniesHandler{CompanyService: svc}
}

// Register registers both company listing endpoints with the Huma API.
func (h *ListCompaniesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-companies",
		Method:      http.MethodGet,
		Path:        "/companies",
		Summary:     "List companies",
		Description: "Returns all companies, deduplicated by name.",
		Tags:        []string{"Companies"},
	}, h.handleList)

	huma.Register(api, huma.Operation{
		OperationID: "list-companies-with-users",
		Method:      http.MethodGet,
		Path:        "/companies/with-users",
		Summary:     "List companies with users",
		Description: "Returns all companies along with their associated users.",
		Tags:        []string{"Companies"},
	}, h.handleListWithUsers)
}

func (h *ListCompaniesHandler) handleList(ctx context.Context, input *ListCompaniesInput) (*ListCompaniesOutput, error) {
	companies, err := h.CompanyService.ListCompanies(ctx)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return listOutput(ctx, companies), nil
}

func (h *ListCompaniesHandler) handleListWithUsers(ctx context.Context, input *ListCompaniesInput) (*ListCompaniesOutput, error) {
	companies, err := h.CompanyService.ListCompaniesWithUsers(ctx)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return listOutput(ctx, companies), nil
}

func listOutput(ctx context.Context, companies []service.Company) *ListCompaniesOutput {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("companyCount", len(companies))
	}

	resp := ListCompaniesResponseBody{
		Status: "success",
		Data:   make([]Company, len(companies)),
	}
	for i, c := range companies {
		resp.Data[i] = companyFromService(c)
	}
	return &ListCompaniesOutput{Body: resp}
}
