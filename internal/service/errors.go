package service

import "errors"

var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")
	// ErrInvalidToken covers malformed, forged and expired tokens alike;
	// callers present all three as not-found.
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrPersonNotFound      = errors.New("person not found")
	ErrPersonAlreadyExists = errors.New("person already exists")
)
