// Package provider defines the contract every social data service adapter
// implements, plus the generic building blocks adapters share: the page
// aggregator and the login-retry-once wrapper.
package provider

import "context"

// DefaultMaxRecords is the record limit used when a caller does not ask for
// a specific number of records.
const DefaultMaxRecords = 20

// DataServiceProvider is implemented by every deployed service adapter.
//
// S is the underlying service session, R the strongly-typed record returned
// by list queries, C the query configuration and T the OAuth credentials.
type DataServiceProvider[S, R, C, T any] interface {
	// Initialize stores the credentials and configures the session identity.
	Initialize(tokens T) error

	// Session returns the underlying service session.
	Session() (S, error)

	// Login authenticates with the permission set stored by the last
	// LoginWithPermissions call. A rejected login returns false with a nil
	// error; a nil error does not mean the caller is authenticated.
	Login(ctx context.Context) (bool, error)

	// LoginWithPermissions stores the requested permissions and logs in.
	LoginWithPermissions(ctx context.Context, permissions []string) (bool, error)

	// Logout ends the authenticated session.
	Logout(ctx context.Context) error

	// Fetch returns at most maxRecords records matching config.
	Fetch(ctx context.Context, config C, maxRecords int) ([]R, error)

	// PostToFeed publishes a new item to the feed of the authenticated account.
	PostToFeed(ctx context.Context, title, link, description string) (bool, error)
}
