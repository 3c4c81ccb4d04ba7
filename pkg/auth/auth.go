// Package auth allows for authenticating playpub against some external identity provider
package auth

import (
	"context"

	"golang.org/x/oauth2/google"
)

// Authable knows how to turn a credentials key file into usable credentials
type Authable interface {
	// Principal extracts the identity holding the key, e.g. a service account email
	Principal(key []byte) (string, error)

	// Credentials builds credentials with a refreshable token source
	Credentials(ctx context.Context, key []byte) (*google.Credentials, error)
}
