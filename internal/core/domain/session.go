package domain

import "time"

// Session binds an opaque bearer token to a user. A user may hold any number
// of concurrent sessions; expired sessions are treated as absent.
type Session struct {
	Token     string
	UserID    int
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
