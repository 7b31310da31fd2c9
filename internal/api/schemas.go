package api

import (
	json "github.com/goccy/go-json"

	"github.com/bulletinhq/bulletin-api/internal/core/domain"
	"github.com/bulletinhq/bulletin-api/internal/infrastructure/httpd"
)

// Input schemas. Field-level validator messages are not surfaced: each
// endpoint maps any validation failure to its one fixed message.

type registerInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type loginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type createAdInput struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
}

// Response envelopes.

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
}

type adsResponse struct {
	Ads []domain.AdListEntry `json:"ads"`
}

type myResponsesResponse struct {
	Ads []domain.RespondedAdView `json:"ads"`
}

type respondersResponse struct {
	Responders []domain.Responder `json:"responders"`
}

// writeJSON marshals the payload into a response. Marshaling our own schema
// types cannot fail.
func writeJSON(status int, payload any) *httpd.Response {
	body, _ := json.Marshal(payload)
	resp := httpd.NewResponse()
	resp.Status = status
	resp.Body = body
	return resp
}
