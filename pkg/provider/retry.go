package provider

import (
	"context"
	"errors"
)

// Authenticator is the part of a provider RetryAfterLogin needs.
type Authenticator interface {
	LoggedIn() bool
	Login(ctx context.Context) (bool, error)
}

// RetryAfterLogin runs op on behalf of an authenticated caller.
//
// When auth is not logged in, or op fails with ErrAuthRequired, it logs in
// once and runs op exactly one more time. A login error is returned as is; a
// rejected login returns ErrNotAuthenticated. It never logs in twice.
func RetryAfterLogin[V any](
	ctx context.Context,
	auth Authenticator,
	op func(context.Context) (V, error),
) (V, error) {
	var zero V

	if auth.LoggedIn() {
		v, err := op(ctx)
		if !errors.Is(err, ErrAuthRequired) {
			return v, err
		}
	}

	ok, err := auth.Login(ctx)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, ErrNotAuthenticated
	}

	return op(ctx)
}
