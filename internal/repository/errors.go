package repository

// Sentinel errors shared by both storage backends. Higher layers use these to
// distinguish failure scenarios without knowing which backend produced them.

import "errors"

// ErrEmailExists is returned by UserStore.Create when the email is already
// registered. Handlers translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrNotFound is returned by lookups when no record matches.
var ErrNotFound = errors.New("not found")
