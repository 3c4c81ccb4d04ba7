package model

import "github.com/oneconcern/playpub/pkg/errors"

var (
	// ErrInvalidTrack indicates an unknown track name
	ErrInvalidTrack = errors.New("invalid track")

	// ErrInvalidStatus indicates an unknown release status
	ErrInvalidStatus = errors.New("invalid release status")

	// ErrInvalidImageType indicates an unknown image slot
	ErrInvalidImageType = errors.New("invalid image type")

	// ErrInvalidExpansionFileType indicates an unknown expansion file type
	ErrInvalidExpansionFileType = errors.New("invalid expansion file type")
)
