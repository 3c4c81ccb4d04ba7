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

// AssetUploader uploads images into store listing slots
type AssetUploader struct {
	client publisher.Client
	store  storage.Store
	l      *zap.Logger
}

// NewAssetUploader builds an uploader for images
func NewAssetUploader(client publisher.Client, opts ...Option) *AssetUploader {
	s := newSettings(opts)
	return &AssetUploader{
		client: client,
		store:  s.store,
		l:      s.l,
	}
}

// UploadAsset appends an image to the slot for this image type and language.
//
// Images are appended: previous images in the slot are kept.
func (u *AssetUploader) UploadAsset(ctx context.Context, edit model.Edit, imageType model.ImageType, location, language string) error {
	asset := model.NewAsset(imageType, location, language)
	l := u.l.With(
		zap.String("edit", edit.ID),
		zap.String("path", asset.Path),
		zap.Stringer("imageType", asset.ImageType),
		zap.String("language", asset.Language),
	)

	err := upload(ctx, u.store, asset.Path, "image", l, func(media io.Reader) error {
		return u.client.UploadImage(ctx, edit.ID, asset.ImageType, asset.Language, media)
	})
	if err != nil {
		l.Error("image upload failed", zap.Error(err))
		return status.ErrUploadFailed.Wrap(err)
	}
	l.Info("image uploaded")
	return nil
}
