// Copyright © 2018 One Concern

package core

import (
	"context"
	"io"

	"github.com/oneconcern/playpub/pkg/model"
	"github.com/oneconcern/playpub/pkg/publisher"
	"github.com/oneconcern/playpub/pkg/publisher/status"
	"github.com/oneconcern/playpub/pkg/storage"
	"go.uber.org/zap"
)

const kindExpansion = "expansion"

// ArtifactUploader uploads application builds and their expansion files into an edit
type ArtifactUploader struct {
	client publisher.Client
	store  storage.Store
	l      *zap.Logger
}

// NewArtifactUploader builds an uploader for artifacts
func NewArtifactUploader(client publisher.Client, opts ...Option) *ArtifactUploader {
	s := newSettings(opts)
	return &ArtifactUploader{
		client: client,
		store:  s.store,
		l:      s.l,
	}
}

// UploadArtifact uploads a bundle or a package, depending on its name.
//
// It returns the version code assigned by the remote system.
func (u *ArtifactUploader) UploadArtifact(ctx context.Context, edit model.Edit, location string) (int64, error) {
	artifact := model.NewArtifact(location)
	l := u.l.With(zap.String("edit", edit.ID), zap.String("path", artifact.Path), zap.Stringer("kind", artifact.Kind))

	var versionCode int64
	err := upload(ctx, u.store, artifact.Path, artifact.Kind.String(), l, func(media io.Reader) error {
		var err error
		if artifact.Kind == model.KindBundle {
			versionCode, err = u.client.UploadBundle(ctx, edit.ID, media)
		} else {
			versionCode, err = u.client.UploadPackage(ctx, edit.ID, media)
		}
		return err
	})
	if err != nil {
		l.Error("artifact upload failed", zap.Error(err))
		return 0, status.ErrUploadFailed.Wrap(err)
	}
	l.Info("artifact uploaded", zap.Int64("versionCode", versionCode))
	return versionCode, nil
}

// UploadExpansionFile uploads an expansion file for a package already uploaded with this version code
func (u *ArtifactUploader) UploadExpansionFile(ctx context.Context, edit model.Edit, location string, versionCode int64, fileType model.ExpansionFileType) error {
	file := model.ExpansionFile{Path: location, OwningVersionCode: versionCode, FileType: fileType}
	l := u.l.With(
		zap.String("edit", edit.ID),
		zap.String("path", file.Path),
		zap.Int64("versionCode", file.OwningVersionCode),
		zap.Stringer("fileType", file.FileType),
	)

	err := upload(ctx, u.store, file.Path, kindExpansion, l, func(media io.Reader) error {
		return u.client.UploadExpansionFile(ctx, edit.ID, file.OwningVersionCode, file.FileType, media)
	})
	if err != nil {
		l.Error("expansion file upload failed", zap.Error(err))
		return status.ErrUploadFailed.Wrap(err)
	}
	l.Info("expansion file uploaded")
	return nil
}

// Upload uploads an artifact, then its main expansion file when one is given.
//
// Bundles never carry expansion files. A failed expansion file upload does not
// invalidate the version code of the package.
func (u *ArtifactUploader) Upload(ctx context.Context, edit model.Edit, artifactPath, expansionPath string) (int64, bool) {
	versionCode, err := u.UploadArtifact(ctx, edit, artifactPath)
	if err != nil {
		return 0, false
	}

	if expansionPath == "" {
		return versionCode, true
	}
	if model.KindOf(artifactPath) == model.KindBundle {
		u.l.Warn("bundles do not support expansion files: ignored", zap.String("path", expansionPath))
		return versionCode, true
	}
	_ = u.UploadExpansionFile(ctx, edit, expansionPath, versionCode, model.ExpansionMain)
	return versionCode, true
}
