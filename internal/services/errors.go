package services

import "errors"

// Sentinel errors the handlers translate into HTTP statuses.
var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")

	// ErrNotOwner is returned when an account tries to mutate a resource
	// it does not own.
	ErrNotOwner = errors.New("account does not own this resource")

	ErrDuplicateReview  = errors.New("restaurant already reviewed by this customer")
	ErrDuplicateAddress = errors.New("address already exists")
)
