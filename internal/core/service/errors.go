package service

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so a login failure never reveals which field was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSubmissionNotFound is returned when operating on a submission id
	// that does not exist.
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrNotOwner is returned when a user tries to delete a submission that
	// belongs to someone else.
	ErrNotOwner = errors.New("submission belongs to another user")
)
