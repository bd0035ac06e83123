package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist, or exists but is not visible to the acting user
// (a booking owned by someone else is reported as not found).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. more travellers than seats left, travel date outside
// the package window).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidState is returned when an operation would drive a booking through
// a lifecycle transition that is not allowed (e.g. cancelling a confirmed booking).
// Handlers should map this to HTTP 409 Conflict.
var ErrInvalidState = errors.New("invalid state")

// ErrConflict is returned when a write collides with a uniqueness rule,
// such as registering a username that is already taken.
// Handlers should map this to HTTP 409 Conflict.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized is returned when credentials or tokens are rejected.
// Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")
