package memstore

import (
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Seed loads the demo accounts and sample listings used for local
// development and manual testing.
func Seed(s *Store, log zerolog.Logger) error {
	demo, err := seedUser(s, "Demo User", "demo@example.com", "demo123")
	if err != nil {
		return err
	}
	alice, err := seedUser(s, "Alice Smith", "alice@example.com", "alice123")
	if err != nil {
		return err
	}

	s.CreateAd(demo, "Vintage Bicycle", "Reliable city bike. Recently serviced.", 150)
	s.CreateAd(demo, "Gaming Laptop", `15" display, RTX graphics, 16GB RAM.`, 950)
	s.CreateAd(alice, "iPhone 14 Pro", "Mint condition, 256GB, with original box and accessories.", 750)

	log.Info().Int("users", 2).Int("ads", 3).Msg("demo data seeded")
	return nil
}

func seedUser(s *Store, name, email, password string) (int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	user, err := s.CreateUser(name, email, string(hash))
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}
