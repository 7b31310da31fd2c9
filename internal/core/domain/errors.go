package domain

import "errors"

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("authentication required")

	ErrMissingAdFields = errors.New("title and description are required")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrAdNotFound      = errors.New("advertisement not found")

	ErrDeleteForbidden     = errors.New("only the owner can delete an advertisement")
	ErrRespondersForbidden = errors.New("only the owner can view responders")
	ErrOwnResponse         = errors.New("cannot respond to own advertisement")
	ErrDuplicateResponse   = errors.New("already responded to advertisement")
)
