// Copyright © 2018 One Concern

// Package status declares error constants returned by the publisher client
// and by the core edit workflow.
package status

import "github.com/oneconcern/playpub/pkg/errors"

var (
	// ErrNotFound indicates that the remote resource (edit, track) does not exist
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates that the credentials were rejected
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates that the credentials do not grant access to this package
	ErrForbidden = errors.New("forbidden")

	// ErrRemoteCall indicates any other transport or API error
	ErrRemoteCall = errors.New("remote call failed")

	// ErrSessionFailed indicates that no edit could be created or resumed
	ErrSessionFailed = errors.New("could not open edit")

	// ErrValidationRejected indicates that the remote system rejected pending mutations
	ErrValidationRejected = errors.New("edit validation rejected")

	// ErrNotValidated indicates an attempt to commit an edit that has not been validated
	ErrNotValidated = errors.New("edit must be validated before commit")

	// ErrCommitRejected indicates that the remote system did not apply the edit
	ErrCommitRejected = errors.New("edit commit rejected")

	// ErrUploadFailed indicates that an artifact or asset upload did not succeed
	ErrUploadFailed = errors.New("upload failed")

	// ErrTrackUpdate indicates that a track could not be updated
	ErrTrackUpdate = errors.New("track update failed")

	// ErrNoRelease indicates that a track holds no release to act upon
	ErrNoRelease = errors.New("track has no release")
)
