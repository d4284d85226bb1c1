package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// UpdateUserBody is the request body for updating a user. Only the fields
// present are applied.
type UpdateUserBody struct {
	Email     *string `json:"email,omitempty" doc:"New email"`
	FullName  *string `json:"full_name,omitempty" doc:"New full name"`
	CompanyID *string `json:"company_id,omitempty" doc:"Company to link; rejected when a different company is already set"`
	Role      *string `json:"role,omitempty" doc:"New role"`
	UserType  *string `json:"user_type,omitempty" doc:"New user type"`
}

// UpdateUserInput is the Huma input for updating a user.
type UpdateUserInput struct {
	ID   string `path:"id" doc:"User UUID"`
	Body UpdateUserBody
}

// UpdateUserResponseBody is the response envelope for user updates.
type UpdateUserResponseBody struct {
	Status string `json:"status" doc:"Always 'success'"`
	Data   User   `json:"data" doc:"The updated (or implicitly created) user"`
}

// UpdateUserOutput is the Huma output for updating a user.
type UpdateUserOutput struct {
	Body UpdateUserResponseBody
}

// userUpdater is the interface for updating users.
type userUpdater interface {
	UpdateUser(ctx context.Context, id uuid.UUID, update service.UserUpdate) (*service.User, error)
}

// UpdateUserHandler handles PATCH /users/{id}.
type UpdateUserHandler struct {
	UserService userUpdater
}

// NewUpdateUserHandler creates a new UpdateUserHandler.
func NewUpdateUserHandler(svc userUpdater) *UpdateUserHandler {
	return &UpdateUserHandler{UserService: svc}
}

// Register registers the update user endpoint with the Huma API.
func (h *UpdateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-user",
		Method:      http.MethodPatch,
		Path:        "/users/{id}",
		Summary:     "Update user",
		Description: "Applies a partial update; unknown ids carrying a company_id are created implicitly.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *UpdateUserHandler) handle(ctx context.Context, input *UpdateUserInput) (*UpdateUserOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user id", err)
	}

	update := service.UserUpdate{
		Email:    input.Body.Email,
		FullName: input.Body.FullName,
		Role:     input.Body.Role,
		UserType: input.Body.UserType,
	}
	if input.Body.CompanyID != nil {
		companyID, parseErr := uuid.FromString(*input.Body.CompanyID)
		if parseErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid company id", parseErr)
		}
		update.CompanyID = &companyID
	}

	updated, err := h.UserService.UpdateUser(ctx, id, update)
	if err != nil {
		return nil, httperr.FromService(err)
	}
	return &UpdateUserOutput{Body: UpdateUserResponseBody{Status: "success", Data: userFromService(*updated)}}, nil
}
