package ports

import "github.com/bulletinhq/bulletin-api/internal/core/domain"

// BoardStore is the entity store: users, advertisements and the ad→responders
// relation. Every method is atomic with respect to every other store
// operation; view-building methods resolve owner names and response state
// under the same critical section so no partial update is ever observable.
type BoardStore interface {
	// CreateUser allocates the next user id and indexes the user by email.
	// Returns domain.ErrEmailTaken if the email is already registered.
	CreateUser(name, email, passwordHash string) (domain.User, error)
	UserByEmail(email string) (domain.User, bool)
	UserByID(id int) (domain.User, bool)

	// CreateAd appends a new advertisement owned by ownerID.
	CreateAd(ownerID int, title, description string, price float64) domain.Advertisement

	// ListAds returns every ad in creation order, shaped for the viewer.
	// viewerID zero means an unauthenticated viewer.
	ListAds(viewerID int) []domain.AdListEntry

	// DeleteAd removes the ad and its entire response set.
	// Returns domain.ErrAdNotFound or domain.ErrDeleteForbidden.
	DeleteAd(requesterID, adID int) error

	// RespondToAd records the requester's interest in the ad. Returns
	// domain.ErrAdNotFound, domain.ErrOwnResponse or
	// domain.ErrDuplicateResponse.
	RespondToAd(requesterID, adID int) error

	// ResponsesByUser lists every ad the user has responded to. Order is
	// unspecified.
	ResponsesByUser(userID int) []domain.RespondedAdView

	// Responders lists the users who responded to the ad. Only the owner may
	// ask; returns domain.ErrAdNotFound or domain.ErrRespondersForbidden.
	Responders(requesterID, adID int) ([]domain.Responder, error)
}
