package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/logging"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// ListUsersInput is the Huma input for listing users.
type ListUsersInput struct{}

// ListUsersResponseBody is the response envelope for user listings.
type ListUsersResponseBody struct {
	Status string `json:"status" doc:"Always 'success'"`
	Data   []User `json:"data" doc:"Users"`
}

// ListUsersOutput is the Huma output for listing users.
type ListUsersOutput struct {
	Body ListUsersResponseBody
}

// GetUserInput is the Huma input for fetching a user by id.
type GetUserInput struct {
	ID string `path:"id" doc:"User UUID"`
}

// GetUserByEmailInput is the Huma input for fetching a user by email.
type GetUserByEmailInput struct {
	Email string `path:"email" doc:"User email"`
}

// GetUserResponseBody is the response envelope for a single user.
type GetUserResponseBody struct {
	Status string `json:"status" doc:"Always 'success'"`
	Data   User   `json:"data" doc:"The user"`
}

// GetUserOutput is the Huma output for fetching a single user.
type GetUserOutput struct {
	Body GetUserResponseBody
}

// userReader is the interface for user lookups.
type userReader interface {
	ListUsers(ctx context.Context) ([]service.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*service.User, error)
	GetUserByEmail(ctx context.Context, email string) (*service.User, error)
}

// GetUsersHandler handles GET /users, GET /users/{id} and GET /users/by-email/{email}.
type GetUsersHandler struct {
	UserService userReader
}

// NewGetUsersHandler creates a new GetUsersHandler.
func NewGetUsersHandler(svc userReader) *GetUsersHandler {
	return &GetUsersHandler{UserService: svc}
}

// Register registers the user read endpoints with the Huma API.
func (h *GetUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "List users",
		Description: "Returns all users.",
		Tags:        []string{"Users"},
	}, h.handleList)

	huma.Register(api, huma.Operation{
		OperationID: "get-user-by-email",
		Method:      http.MethodGet,
		Path:        "/users/by-email/{email}",
		Summary:     "Get user by email",
		Description: "Returns the user with the given email.",
		Tags:        []string{"Users"},
	}, h.handleGetByEmail)

	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/users/{id}",
		Summary:     "Get user",
		Description: "Returns the user with the given id.",
		Tags:        []string{"Users"},
	}, h.handleGet)
}

func (h *GetUsersHandler) handleList(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("userCount", len(users))
	}

	resp := ListUsersResponseBody{
		Status: "success",
		Data:   make([]User, len(users)),
	}
	for i, u := range users {
		resp.Data[i] = userFromService(u)
	}
	return &ListUsersOutput{Body: resp}, nil
}

func (h *GetUsersHandler) handleGet(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user id", err)
	}

	found, err := h.UserService.GetUser(ctx, id)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetUserOutput{Body: GetUserResponseBody{Status: "success", Data: userFromService(*found)}}, nil
}

func (h *GetUsersHandler) handleGetByEmail(ctx context.Context, input *GetUserByEmailInput) (*GetUserOutput, error) {
	found, err := h.UserService.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &GetUserOutput{Body: GetUserResponseBody{Status: "success", Data: userFromService(*found)}}, nil
}
