package domain

// User models a registered account. Users are created at registration and
// never updated or deleted; the ID is assigned sequentially starting at 1.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
