package user

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/handlers/v1/httperr"
)

// DeleteUserInput is the Huma input for deleting a user.
type DeleteUserInput struct {
	ID string `path:"id" doc:"User UUID"`
}

// DeleteUserResponseBody is the response envelope for user deletion.
type DeleteUserResponseBody struct {
	Status  string `json:"status" doc:"Always 'success'"`
	Message string `json:"message" doc:"Deletion confirmation"`
}

// DeleteUserOutput is the Huma output for deleting a user.
type DeleteUserOutput struct {
	Body DeleteUserResponseBody
}

// userDeleter is the interface for deleting users.
type userDeleter interface {
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// DeleteUserHandler handles DELETE /users/{id}.
type DeleteUserHandler struct {
	UserService userDeleter
}

// NewDeleteUserHandler creates a new DeleteUserHandler.
func NewDeleteUserHandler(svc userDeleter) *DeleteUserHandler {
	return &DeleteUserHandler{UserService: svc}
}

// Register registers the delete user endpoint with the Huma API.
func (h *DeleteUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-user",
		Method:      http.MethodDelete,
		Path:        "/users/{id}",
		Summary:     "Delete user",
		Description: "Removes a user.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *DeleteUserHandler) handle(ctx context.Context, input *DeleteUserInput) (*DeleteUserOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid user id", err)
	}

	if err := h.UserService.DeleteUser(ctx, id); err != nil {
		return nil, httperr.FromService(err)
	}

	return &DeleteUserOutput{Body: DeleteUserResponseBody{
		Status:  "success",
		Message: fmt.Sprintf("User %s deleted successfully.", id),
	}}, nil
}
