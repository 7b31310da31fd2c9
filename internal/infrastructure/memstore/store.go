// Package memstore is the in-process storage adapter. One coarse mutex
// guards users, advertisements, the response relation and sessions together,
// so every operation is atomic with respect to every other and no partial
// update is observable. Nothing survives a restart.
package memstore

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/bulletinhq/bulletin-api/internal/core/domain"
)

const defaultSessionTTL = 24 * time.Hour

// Options tunes a Store. The zero value is usable.
type Options struct {
	// SessionTTL is how long an issued session token stays valid.
	SessionTTL time.Duration
	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

// Store implements ports.BoardStore and ports.SessionStore.
type Store struct {
	mu sync.Mutex

	clock      func() time.Time
	sessionTTL time.Duration

	users      []domain.User
	emailIndex map[string]int
	ads        []domain.Advertisement
	responses  map[int]map[int]struct{}
	sessions   map[string]domain.Session

	nextUserID int
	nextAdID   int
}

func New(opts Options) *Store {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = defaultSessionTTL
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Store{
		clock:      opts.Clock,
		sessionTTL: opts.SessionTTL,
		emailIndex: make(map[string]int),
		responses:  make(map[int]map[int]struct{}),
		sessions:   make(map[string]domain.Session),
		nextUserID: 1,
		nextAdID:   1,
	}
}

// ── Users ─────────────────────────────────────────────────────────────────────

func (s *Store) CreateUser(name, email, passwordHash string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.emailIndex[email]; exists {
		return domain.User{}, domain.ErrEmailTaken
	}

	user := domain.User{
		ID:           s.nextUserID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	s.nextUserID++
	s.users = append(s.users, user)
	s.emailIndex[email] = user.ID
	return user, nil
}

func (s *Store) UserByEmail(email string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.emailIndex[email]
	if !ok {
		return domain.User{}, false
	}
	return s.users[id-1], true
}

func (s *Store) UserByID(id int) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userByID(id)
}

// userByID requires s.mu held. Users are never deleted, so ids index the
// slice directly.
func (s *Store) userByID(id int) (domain.User, bool) {
	if id < 1 || id > len(s.users) {
		return domain.User{}, false
	}
	return s.users[id-1], true
}

// ── Advertisements ────────────────────────────────────────────────────────────

func (s *Store) CreateAd(ownerID int, title, description string, price float64) domain.Advertisement {
	s.mu.Lock()
	defer s.mu.Unlock()

	ad := domain.Advertisement{
		ID:          s.nextAdID,
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Price:       price,
		CreatedAt:   s.clock(),
	}
	s.nextAdID++
	s.ads = append(s.ads, ad)
	return ad
}

func (s *Store) ListAds(viewerID int) []domain.AdListEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]domain.AdListEntry, 0, len(s.ads))
	for _, ad := range s.ads {
		view := s.adView(ad, viewerID)
		if ad.OwnerID == viewerID {
			entries = append(entries, domain.OwnerAdView{
				AdView:         view,
				ResponsesCount: len(s.responses[ad.ID]),
			})
			continue
		}
		entries = append(entries, view)
	}
	return entries
}

func (s *Store) DeleteAd(requesterID, adID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.adIndex(adID)
	if !ok {
		return domain.ErrAdNotFound
	}
	if s.ads[idx].OwnerID != requesterID {
		return domain.ErrDeleteForbidden
	}

	s.ads = append(s.ads[:idx], s.ads[idx+1:]...)
	delete(s.responses, adID)
	return nil
}

// ── Responses ─────────────────────────────────────────────────────────────────

func (s *Store) RespondToAd(requesterID, adID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.adIndex(adID)
	if !ok {
		return domain.ErrAdNotFound
	}
	if s.ads[idx].OwnerID == requesterID {
		return domain.ErrOwnResponse
	}
	if _, responded := s.responses[adID][requesterID]; responded {
		return domain.ErrDuplicateResponse
	}

	if s.responses[adID] == nil {
		s.responses[adID] = make(map[int]struct{})
	}
	s.responses[adID][requesterID] = struct{}{}
	return nil
}

// ResponsesByUser iterates the response relation, not the ad list, so the
// returned order is unspecified.
func (s *Store) ResponsesByUser(userID int) []domain.RespondedAdView {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]domain.RespondedAdView, 0)
	for adID, responders := range s.responses {
		if _, ok := responders[userID]; !ok {
			continue
		}
		idx, ok := s.adIndex(adID)
		if !ok {
			continue
		}
		ad := s.ads[idx]
		owner, _ := s.userByID(ad.OwnerID)
		views = append(views, domain.RespondedAdView{
			ID:           ad.ID,
			Title:        ad.Title,
			Description:  ad.Description,
			Price:        domain.Money(ad.Price),
			OwnerName:    owner.Name,
			CreatedAt:    ad.CreatedAt.Unix(),
			HasResponded: true,
		})
	}
	return views
}

func (s *Store) Responders(requesterID, adID int) ([]domain.Responder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.adIndex(adID)
	if !ok {
		return nil, domain.ErrAdNotFound
	}
	if s.ads[idx].OwnerID != requesterID {
		return nil, domain.ErrRespondersForbidden
	}

	responders := make([]domain.Responder, 0, len(s.responses[adID]))
	for userID := range s.responses[adID] {
		user, ok := s.userByID(userID)
		if !ok {
			continue
		}
		responders = append(responders, domain.Responder{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
	}
	return responders, nil
}

// ── Sessions ──────────────────────────────────────────────────────────────────

func (s *Store) CreateSession(userID int) string {
	token := newToken()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: s.clock().Add(s.sessionTTL),
	}
	return token
}

func (s *Store) ResolveSession(token string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return 0, false
	}
	if sess.Expired(s.clock()) {
		delete(s.sessions, token)
		return 0, false
	}
	return sess.UserID, true
}

func (s *Store) DestroySession(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// ── Internals ─────────────────────────────────────────────────────────────────

// adView requires s.mu held.
func (s *Store) adView(ad domain.Advertisement, viewerID int) domain.AdView {
	owner, _ := s.userByID(ad.OwnerID)
	_, hasResponded := s.responses[ad.ID][viewerID]
	return domain.AdView{
		ID:           ad.ID,
		Title:        ad.Title,
		Description:  ad.Description,
		Price:        domain.Money(ad.Price),
		OwnerName:    owner.Name,
		CreatedAt:    ad.CreatedAt.Unix(),
		Mine:         ad.OwnerID == viewerID,
		HasResponded: viewerID > 0 && hasResponded,
	}
}

// adIndex requires s.mu held.
func (s *Store) adIndex(adID int) (int, bool) {
	for i, ad := range s.ads {
		if ad.ID == adID {
			return i, true
		}
	}
	return 0, false
}

// newToken returns 32 hex characters from the system CSPRNG.
func newToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic("memstore: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(buf)
}
