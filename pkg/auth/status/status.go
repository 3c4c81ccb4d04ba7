// Package status declares error constants returned by the various
// implementations of the Authable interface.
//
// NOTE: such constants are located in a separate package to avoid
// creating undue cyclical dependencies between pkg/auth and one
// of its implementions.
package status

import "github.com/oneconcern/playpub/pkg/errors"

var (
	// Sentinel errors returned by implementations of interfaces defined by auth

	// ErrInvalidCredentials indicates that the credentials passed are invalid
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCredentialsType indicates that the credentials are not for a service account
	ErrCredentialsType = errors.New("credentials must be a service account key")

	// ErrAuthService indicates that we could not build a token source from the credentials
	ErrAuthService = errors.New("could not create oauth token source")
)
