// Package httperr maps service errors onto HTTP error responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
)

// FromService translates the service error taxonomy into huma errors:
// validation and conflict become 400, missing records 404, and anything else
// surfaces as 500 with the underlying message.
func FromService(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidation):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrConflict):
		return huma.NewError(http.StatusBadRequest, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, err.Error())
	}
}
