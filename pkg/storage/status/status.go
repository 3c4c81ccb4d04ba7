// Copyright © 2018 One Concern

// Package status declares the errors returned by the byte sources of pkg/storage.
//
// They live apart from pkg/storage so that backends may use them without importing each other.
package status

import "github.com/oneconcern/playpub/pkg/errors"

var (
	// ErrNotExists is returned when a location does not point to any object
	ErrNotExists = errors.New("object doesn't exist")

	// ErrNotFound is returned when the backend does not know some resource other than the object, e.g. a bucket
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when the backend rejects the ambient credentials
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the ambient credentials do not grant read access
	ErrForbidden = errors.New("forbidden")

	// ErrObjectTooBig is returned by ReadAll on objects too large to be held in memory
	ErrObjectTooBig = errors.New("object too big to be read into memory")

	// ErrInvalidResource is returned for malformed locations, unsupported schemes and invalid bucket names
	ErrInvalidResource = errors.New("invalid storage location")

	// ErrStorageAPI wraps any other backend failure
	ErrStorageAPI = errors.New("storage API error")
)
