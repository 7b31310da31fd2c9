package ports

// SessionStore maps opaque bearer tokens to user identities. It shares its
// lock with the entity store, so session checks observe the same total order
// as entity mutations.
type SessionStore interface {
	// CreateSession issues a fresh token for the user.
	CreateSession(userID int) string
	// ResolveSession returns the user id behind a token. Unknown and expired
	// tokens both report false.
	ResolveSession(token string) (int, bool)
	// DestroySession removes the token. Destroying an unknown token is a
	// no-op.
	DestroySession(token string)
}
