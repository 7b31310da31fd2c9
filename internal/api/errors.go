package api

import (
	"errors"

	"github.com/bulletinhq/bulletin-api/internal/core/domain"
	"github.com/bulletinhq/bulletin-api/internal/infrastructure/httpd"
)

// errorFor renders a typed failure as its wire status and message. Store and
// service code never sees HTTP codes; this resolver is the single mapping.
func (rt *Router) errorFor(err error) *httpd.Response {
	status, msg := resolveError(err)
	if status == 500 {
		// Unexpected error: log the real cause, return a generic message.
		rt.log.Error().Err(err).Msg("unhandled error")
	}
	return writeJSON(status, errorResponse{Error: msg})
}

func resolveError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return 400, "All fields are required"
	case errors.Is(err, domain.ErrMissingCredentials):
		return 400, "Email and password are required"
	case errors.Is(err, domain.ErrMissingAdFields):
		return 400, "Title and description are required"
	case errors.Is(err, domain.ErrInvalidPrice):
		return 400, "Invalid price"
	case errors.Is(err, domain.ErrOwnResponse):
		return 400, "You cannot respond to your own advertisement"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return 401, "Invalid credentials"
	case errors.Is(err, domain.ErrNotAuthenticated):
		return 401, "Authentication required"
	case errors.Is(err, domain.ErrDeleteForbidden):
		return 403, "You can only delete your own advertisements"
	case errors.Is(err, domain.ErrRespondersForbidden):
		return 403, "Only the owner can view responders"
	case errors.Is(err, domain.ErrAdNotFound):
		return 404, "Advertisement not found"
	case errors.Is(err, domain.ErrEmailTaken):
		return 409, "Email already registered"
	case errors.Is(err, domain.ErrDuplicateResponse):
		return 409, "You have already responded to this advertisement"
	}
	return 500, "Internal server error"
}
