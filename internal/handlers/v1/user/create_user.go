package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// CreateUserBody is the request body for creating a user.
type CreateUserBody struct {
	ID        string `json:"id,omitempty" doc:"Optional user UUID; generated when absent"`
	Email     string `json:"email,omitempty" doc:"User email"`
	FullName  string `json:"full_name,omitempty" doc:"User full name"`
	CompanyID string `json:"company_id,omitempty" doc:"Company to link the user to"`
	Role      string `json:"role,omitempty" doc:"User role"`
	UserType  string `json:"user_type,omitempty" doc:"User type"`
}

// CreateUserInput is the Huma input for creating a user.
type CreateUserInput struct {
	Body CreateUserBody
}

// CreateUserForCompanyInput is the Huma input for creating a user pre-linked
// to a company.
type CreateUserForCompanyInput struct {
	CompanyID string `path:"company_id" doc:"Company UUID"`
	Body      CreateUserBody
}

// CreateUserResponseBody is the response envelope for user creation.
type CreateUserResponseBody struct {
	Status string `json:"status" doc:"Always 'success'"`
	Data   User   `json:"data" doc:"The created (or linked) user"`
}

// CreateUserOutput is the Huma output for creating a user.
type CreateUserOutput struct {
	Body CreateUserResponseBody
}

// userCreator is the interface for creating users.
type userCreator interface {
	CreateUser(ctx context.Context, create service.UserCreate) (*service.User, error)
	CreateUserForCompany(ctx context.Context, companyID uuid.UUID, create service.UserCreate) (*service.User, error)
}

// CreateUserHandler handles POST /users and POST /users/company/{company_id}.
type CreateUserHandler struct {
	UserService userCreator
}

// NewCreateUserHandler creates a new CreateUserHandler.
func NewCreateUserHandler(svc userCreator) *CreateUserHandler {
	return &CreateUserHandler{UserService: svc}
}

// Register registers the user creation endpoints with the Huma API.
func (h *CreateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-user",
		Method:      http.MethodPost,
		Path:        "/users",
		Summary:     "Create user",
		Description: "Creates a user, enforcing one company per email.",
		Tags:        []string{"Users"},
	}, h.handleCreate)

	huma.Register(api, huma.Operation{
		OperationID: "create-user-for-company",
		Method:      http.MethodPost,
		Path:        "/users/company/{company_id}",
		Summary:     "Create user for company",
		Description: "Creates a user and automatically links them to a company.",
		Tags:        []string{"Users"},
	}, h.handleCreateForCompany)
}

func parseCreateUserBody(body CreateUserBody) (service.UserCreate, error) {
	create := service.UserCreate{
		Email:    body.Email,
		FullName: body.FullName,
		Role:     body.Role,
		UserType: body.UserType,
	}
	if body.ID != "" {
		id, err := uuid.FromString(body.ID)
		if err != nil {
			return create, huma.NewError(http.StatusBadRequest, "invalid user id", err)
		}
		create.ID = &id
	}
	if body.CompanyID != "" {
		companyID, err := uuid.FromString(body.CompanyID)
		if err != nil {
			return create, huma.NewError(http.StatusBadRequest, "invalid company id", err)
		}
		create.CompanyID = &companyID
	}
	return create, nil
}

func (h *CreateUserHandler) handleCreate(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	create, err := parseCreateUserBody(input.Body)
	if err != nil {
		return nil, err
	}

	created, err := h.UserService.CreateUser(ctx, create)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &CreateUserOutput{Body: CreateUserResponseBody{Status: "success", Data: userFromService(*created)}}, nil
}

func (h *CreateUserHandler) handleCreateForCompany(ctx context.Context, input *CreateUserForCompanyInput) (*CreateUserOutput, error) {
	companyID, err := uuid.FromString(input.CompanyID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid company id", err)
	}

	create, err := parseCreateUserBody(input.Body)
	if err != nil {
		return nil, err
	}

	created, err := h.UserService.CreateUserForCompany(ctx, companyID, create)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &CreateUserOutput{Body: CreateUserResponseBody{Status: "success", Data: userFromService(*created)}}, nil
}
