// Copyright © 2018 One Concern

package publisher

import (
	"context"
	"io"

	"github.com/oneconcern/playpub/pkg/model"
)

// Client knows how to drive the remote edit workflow for a single package
type Client interface {
	// PackageName is the package every call is scoped to
	PackageName() string

	// InsertEdit creates a new edit with some client-generated ID, and returns the ID known remotely
	InsertEdit(ctx context.Context, editID string) (string, error)
	// GetEdit resumes an existing edit
	GetEdit(ctx context.Context, editID string) (string, error)
	// ValidateEdit checks all pending mutations without applying them
	ValidateEdit(ctx context.Context, editID string) error
	// CommitEdit applies all pending mutations
	CommitEdit(ctx context.Context, editID string) error

	GetTrack(ctx context.Context, editID string, track model.TrackName) (model.Track, error)
	UpdateTrack(ctx context.Context, editID string, track model.Track) (model.Track, error)

	// UploadBundle uploads an app bundle and returns the version code assigned by the remote system
	UploadBundle(ctx context.Context, editID string, media io.Reader) (int64, error)
	// UploadPackage uploads an APK and returns the version code assigned by the remote system
	UploadPackage(ctx context.Context, editID string, media io.Reader) (int64, error)
	UploadExpansionFile(ctx context.Context, editID string, versionCode int64, fileType model.ExpansionFileType, media io.Reader) error
	UploadImage(ctx context.Context, editID string, imageType model.ImageType, language string, media io.Reader) error
}
