package ports

import "github.com/bulletinhq/bulletin-api/internal/core/domain"

// AuthService implements registration, login and session handling.
type AuthService interface {
	Register(name, email, password string) (domain.User, error)
	// Login verifies credentials and opens a session. Unknown email and wrong
	// password fail identically with domain.ErrInvalidCredentials.
	Login(email, password string) (token string, user domain.User, err error)
	// Logout is best-effort: an unknown or empty token is not an error.
	Logout(token string)
	// Authenticate resolves a bearer token to a user id.
	Authenticate(token string) (int, bool)
	// CurrentUser resolves a bearer token to the full user record.
	CurrentUser(token string) (domain.User, bool)
}

// BoardService implements the advertisement operations.
type BoardService interface {
	ListAds(viewerID int) []domain.AdListEntry
	CreateAd(ownerID int, title, description, rawPrice string) (domain.Advertisement, error)
	DeleteAd(requesterID, adID int) error
	Respond(requesterID, adID int) error
	MyResponses(requesterID int) []domain.RespondedAdView
	Responders(requesterID, adID int) ([]domain.Responder, error)
}
