// Package api is the handler layer: it maps method+path pairs onto the auth
// and board services and is the only place typed domain failures become wire
// statuses.
package api

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bulletinhq/bulletin-api/internal/core/ports"
	"github.com/bulletinhq/bulletin-api/internal/infrastructure/httpd"
)

const adsPrefix = "/api/ads/"

// Router implements httpd.Handler.
type Router struct {
	auth   ports.AuthService
	board  ports.BoardService
	static *httpd.StaticFiles
	log    zerolog.Logger
}

func NewRouter(auth ports.AuthService, board ports.BoardService, static *httpd.StaticFiles, log zerolog.Logger) *Router {
	return &Router{auth: auth, board: board, static: static, log: log}
}

// Handle routes one request. Unmatched /api paths get the JSON 404; anything
// outside /api is delegated to the static collaborator.
func (rt *Router) Handle(req *httpd.Request) *httpd.Response {
	if strings.HasPrefix(req.Path, "/api/") {
		if resp := rt.handleAPI(req); resp != nil {
			return resp
		}
		return writeJSON(404, errorResponse{Error: "Endpoint not found"})
	}

	if resp, ok := rt.static.Serve(req.Path); ok {
		return resp
	}
	resp := httpd.NewResponse()
	resp.Status = 404
	resp.ContentType = "text/plain; charset=utf-8"
	resp.Body = []byte("Not Found")
	return resp
}

func (rt *Router) handleAPI(req *httpd.Request) *httpd.Response {
	switch {
	case req.Method == "POST" && req.Path == "/api/register":
		return rt.handleRegister(req)
	case req.Method == "POST" && req.Path == "/api/login":
		return rt.handleLogin(req)
	case req.Method == "POST" && req.Path == "/api/logout":
		return rt.handleLogout(req)
	case req.Method == "GET" && req.Path == "/api/session":
		return rt.handleSession(req)
	case req.Method == "GET" && req.Path == "/api/ads":
		return rt.handleListAds(req)
	case req.Method == "GET" && req.Path == "/api/ads/my-responses":
		return rt.handleMyResponses(req)
	case req.Method == "POST" && req.Path == "/api/ads":
		return rt.handleCreateAd(req)
	}

	if strings.HasPrefix(req.Path, adsPrefix) {
		suffix := req.Path[len(adsPrefix):]
		switch req.Method {
		case "DELETE":
			if id, ok := adID(suffix); ok {
				return rt.handleDeleteAd(req, id)
			}
		case "POST":
			if id, ok := adAction(suffix, "respond"); ok {
				return rt.handleRespond(req, id)
			}
		case "GET":
			if id, ok := adAction(suffix, "responders"); ok {
				return rt.handleResponders(req, id)
			}
		}
	}
	return nil
}

// adID accepts only non-empty, all-digit id segments. Anything else falls
// through to the 404 path instead of erroring.
func adID(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}

// adAction matches an "{id}/{action}" suffix.
func adAction(suffix, action string) (int, bool) {
	slash := strings.IndexByte(suffix, '/')
	if slash < 0 || suffix[slash+1:] != action {
		return 0, false
	}
	return adID(suffix[:slash])
}
