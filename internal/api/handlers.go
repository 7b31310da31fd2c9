package api

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bulletinhq/bulletin-api/internal/core/domain"
	"github.com/bulletinhq/bulletin-api/internal/infrastructure/httpd"
)

var validate = validator.New()

// bearerToken extracts the token from the Authorization header. The scheme
// keyword matches case-insensitively; a missing or non-bearer header yields
// the empty token, which never authenticates.
func bearerToken(req *httpd.Request) string {
	header := req.Header("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func (rt *Router) viewerID(req *httpd.Request) (int, bool) {
	return rt.auth.Authenticate(bearerToken(req))
}

func (rt *Router) handleRegister(req *httpd.Request) *httpd.Response {
	in := registerInput{
		Name:     req.Param("name"),
		Email:    req.Param("email"),
		Password: req.Param("password"),
	}
	if err := validate.Struct(in); err != nil {
		return rt.errorFor(domain.ErrMissingFields)
	}

	if _, err := rt.auth.Register(in.Name, in.Email, in.Password); err != nil {
		return rt.errorFor(err)
	}
	return writeJSON(200, successResponse{Success: true, Message: "Registration complete"})
}

func (rt *Router) handleLogin(req *httpd.Request) *httpd.Response {
	in := loginInput{
		Email:    req.Param("email"),
		Password: req.Param("password"),
	}
	if err := validate.Struct(in); err != nil {
		return rt.errorFor(domain.ErrMissingCredentials)
	}

	token, user, err := rt.auth.Login(in.Email, in.Password)
	if err != nil {
		return rt.errorFor(err)
	}
	return writeJSON(200, loginResponse{Token: token, User: user})
}

// handleLogout is best-effort: a missing or invalid token still returns
// success.
func (rt *Router) handleLogout(req *httpd.Request) *httpd.Response {
	rt.auth.Logout(bearerToken(req))
	return writeJSON(200, successResponse{Success: true})
}

func (rt *Router) handleSession(req *httpd.Request) *httpd.Response {
	user, ok := rt.auth.CurrentUser(bearerToken(req))
	if !ok {
		return writeJSON(200, sessionResponse{Authenticated: false})
	}
	return writeJSON(200, sessionResponse{Authenticated: true, User: &user})
}

func (rt *Router) handleListAds(req *httpd.Request) *httpd.Response {
	viewer, _ := rt.viewerID(req)
	return writeJSON(200, adsResponse{Ads: rt.board.ListAds(viewer)})
}

func (rt *Router) handleCreateAd(req *httpd.Request) *httpd.Response {
	viewer, ok := rt.viewerID(req)
	if !ok {
		return rt.errorFor(domain.ErrNotAuthenticated)
	}

	in := createAdInput{
		Title:       req.Param("title"),
		Description: req.Param("description"),
	}
	if err := validate.Struct(in); err != nil {
		return rt.errorFor(domain.ErrMissingAdFields)
	}

	if _, err := rt.board.CreateAd(viewer, in.Title, in.Description, req.Param("price")); err != nil {
		return rt.errorFor(err)
	}
	return writeJSON(200, successResponse{Success: true})
}

func (rt *Router) handleDeleteAd(req *httpd.Request, adID int) *httpd.Response {
	viewer, ok := rt.viewerID(req)
	if !ok {
		return rt.errorFor(domain.ErrNotAuthenticated)
	}
	if err := rt.board.DeleteAd(viewer, adID); err != nil {
		return rt.errorFor(err)
	}
	return writeJSON(200, successResponse{Success: true})
}

func (rt *Router) handleRespond(req *httpd.Request, adID int) *httpd.Response {
	viewer, ok := rt.viewerID(req)
	if !ok {
		return rt.errorFor(domain.ErrNotAuthenticated)
	}
	if err := rt.board.Respond(viewer, adID); err != nil {
		return rt.errorFor(err)
	}
	return writeJSON(200, successResponse{Success: true})
}

func (rt *Router) handleMyResponses(req *httpd.Request) *httpd.Response {
	viewer, ok := rt.viewerID(req)
	if !ok {
		return rt.errorFor(domain.ErrNotAuthenticated)
	}
	return writeJSON(200, myResponsesResponse{Ads: rt.board.MyResponses(viewer)})
}

func (rt *Router) handleResponders(req *httpd.Request, adID int) *httpd.Response {
	viewer, ok := rt.viewerID(req)
	if !ok {
		return rt.errorFor(domain.ErrNotAuthenticated)
	}
	responders, err := rt.board.Responders(viewer, adID)
	if err != nil {
		return rt.errorFor(err)
	}
	return writeJSON(200, respondersResponse{Responders: responders})
}
