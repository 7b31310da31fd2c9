package service

import (
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bulletinhq/bulletin-api/internal/api/metrics"
	"github.com/bulletinhq/bulletin-api/internal/core/domain"
	"github.com/bulletinhq/bulletin-api/internal/core/ports"
)

// AuthService implements registration, login and session resolution.
type AuthService struct {
	store    ports.BoardStore
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewAuthService(store ports.BoardStore, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, sessions: sessions, log: log}
}

func (s *AuthService) Register(name, email, password string) (domain.User, error) {
	if name == "" || email == "" || password == "" {
		return domain.User{}, domain.ErrMissingFields
	}

	// Hashing happens outside the store lock; only the insert is serialized.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.store.CreateUser(name, email, string(hash))
	if err != nil {
		return domain.User{}, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.log.Info().Int("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login verifies credentials and opens a session. Unknown email and wrong
// password take the same failure path so callers cannot enumerate accounts.
func (s *AuthService) Login(email, password string) (string, domain.User, error) {
	if email == "" || password == "" {
		return "", domain.User{}, domain.ErrMissingCredentials
	}

	user, ok := s.store.UserByEmail(email)
	if !ok {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	token := s.sessions.CreateSession(user.ID)
	s.log.Info().Int("user_id", user.ID).Msg("session opened")
	return token, user, nil
}

func (s *AuthService) Logout(token string) {
	if token == "" {
		return
	}
	s.sessions.DestroySession(token)
}

func (s *AuthService) Authenticate(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	return s.sessions.ResolveSession(token)
}

func (s *AuthService) CurrentUser(token string) (domain.User, bool) {
	userID, ok := s.Authenticate(token)
	if !ok {
		return domain.User{}, false
	}
	return s.store.UserByID(userID)
}
