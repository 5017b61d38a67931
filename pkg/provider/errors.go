package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned by Initialize when no usable
	// credentials are supplied.
	ErrInvalidCredentials = errors.New("valid token instance not supplied")

	// ErrNotInitialized is returned when a provider is used before Initialize.
	ErrNotInitialized = errors.New("provider not initialized")

	// ErrNoActiveSession is returned when the provider has no session to
	// authenticate against.
	ErrNoActiveSession = errors.New("no active session found")

	// ErrNotAuthenticated is returned when an operation needed an
	// authenticated session and the single login attempt did not produce one.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAuthRequired marks a service response that rejected the current
	// credentials (expired or revoked token).
	ErrAuthRequired = errors.New("authentication required")

	// ErrInvalidArgument is returned for malformed call arguments.
	ErrInvalidArgument = errors.New("invalid argument")
)

// QueryError reports a page request rejected by the service. Page is zero
// for the first page.
type QueryError struct {
	Page int
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed on page %d: %v", e.Page, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
