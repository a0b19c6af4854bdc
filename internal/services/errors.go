package services

import "errors"

// Sentinel errors the HTTP layer maps onto status codes. Messages are sent
// to clients verbatim.
var (
	ErrMissingFields      = errors.New("Please provide name, email, password, and role.")
	ErrInvalidRole        = errors.New("Invalid role. Choose jobseeker or jobprovider.")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters.")
	ErrEmailTaken         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrInvalidJobID       = errors.New("Invalid job ID format")
	ErrJobNotFound        = errors.New("Job not found")
)
