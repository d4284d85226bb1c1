package company

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// Member is the API response model for a user listed under a company,
// including the company summary.
type Member struct {
	ID        string         `json:"id" doc:"User UUID"`
	Email     string         `json:"email,omitempty" doc:"User email"`
	FullName  string         `json:"full_name,omitempty" doc:"User full name"`
	CompanyID string         `json:"company_id,omitempty" doc:"Company UUID"`
	Role      string         `json:"role,omitempty" doc:"User role"`
	UserType  string         `json:"user_type,omitempty" doc:"User type"`
	CreatedAt string         `json:"created_at" doc:"RFC3339 creation time"`
	Company   *MemberCompany `json:"companies,omitempty" doc:"Company summary"`
}

// MemberCompany is the company summary attached to each member.
type MemberCompany struct {
	Name     string `json:"name" doc:"Company name"`
	Industry string `json:"industry,omitempty" doc:"Industry label"`
}

// ListCompanyUsersInput is the Huma input for listing a company's users.
type ListCompanyUsersInput struct {
	ID string `path:"id" doc:"Company UUID"`
}

// ListCompanyUsersResponseBody is the response envelope for member listings.
type ListCompanyUsersResponseBody struct {
	Status string   `json:"status" doc:"Always 'success'"`
	Data   []Member `json:"data" doc:"Users belonging to the company"`
}

// ListCompanyUsersOutput is the Huma output for listing a company's users.
type ListCompanyUsersOutput struct {
	Body ListCompanyUsersResponseBody
}

// companyUserLister is the interface for listing a company's users.
type companyUserLister interface {
	ListCompanyUsers(ctx context.Context, companyID uuid.UUID) ([]service.User, error)
}

// ListCompanyUsersHandler handles GET /companies/{id}/users.
type ListCompanyUsersHandler struct {
	CompanyService companyUserLister
}

// NewListCompanyUsersHandler creates a new ListCompanyUsersHandler.
func NewListCompanyUsersHandler(svc companyUserLister) *ListCompanyUsersHandler {
	return &ListCompanyUsersHandler{CompanyService: svc}
}

// Register registers the company users endpoint with the Huma API.
func (h *ListCompanyUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-company-users",
		Method:      http.MethodGet,
		Path:        "/companies/{id}/users",
		Summary:     "List company users",
		Description: "Returns all users that belong to a given company.",
		Tags:        []string{"Companies"},
	}, h.handle)
}

func (h *ListCompanyUsersHandler) handle(ctx context.Context, input *ListCompanyUsersInput) (*ListCompanyUsersOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid company id", err)
	}

	users, err := h.CompanyService.ListCompanyUsers(ctx, id)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	resp := ListCompanyUsersResponseBody{
		Status: "success",
		Data:   make([]Member, len(users)),
	}
	for i, u := range users {
		member := Member{
			ID:        u.ID.String(),
			Email:     u.Email,
			FullName:  u.FullName,
			Role:      u.Role,
			UserType:  u.UserType,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		}
		if u.CompanyID != nil {
			member.CompanyID = u.CompanyID.String()
		}
		if u.Company != nil {
			member.Company = &MemberCompany{Name: u.Company.Name, Industry: u.Company.Industry}
		}
		resp.Data[i] = member
	}
	return &ListCompanyUsersOutput{Body: resp}, nil
}
