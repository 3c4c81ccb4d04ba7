// Copyright © 2018 One Concern

// Package googleplay implements the publisher client over the Google Play Android Publisher API (v3).
package googleplay

import (
	"context"
	"io"

	"github.com/oneconcern/playpub/pkg/model"
	"github.com/oneconcern/playpub/pkg/publisher"
	"go.uber.org/zap"
	"google.golang.org/api/androidpublisher/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const mediaContentType = "application/octet-stream"

// type safeguard
var _ publisher.Client = &client{}

type client struct {
	packageName string
	svc         *androidpublisher.Service
	clientOpts  []option.ClientOption
	l           *zap.Logger
}

// New builds a publisher client for some package.
//
// Credentials are passed as client options, e.g. option.WithCredentials(creds).
func New(ctx context.Context, packageName string, opts ...Option) (publisher.Client, error) {
	c := &client{
		packageName: packageName,
		l:           zap.NewNop(),
	}
	for _, apply := range opts {
		apply(c)
	}

	svc, err := androidpublisher.NewService(ctx, c.clientOpts...)
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	c.svc = svc
	return c, nil
}

// mediaOptions disable chunking: each file is sent as a single, non-resumable request
func mediaOptions(contentType string) []googleapi.MediaOption {
	return []googleapi.MediaOption{
		googleapi.ContentType(contentType),
		googleapi.ChunkSize(0),
	}
}

func (c *client) PackageName() string {
	return c.packageName
}

func (c *client) InsertEdit(ctx context.Context, editID string) (string, error) {
	edit, err := c.svc.Edits.Insert(c.packageName, &androidpublisher.AppEdit{Id: editID}).Context(ctx).Do()
	if err != nil {
		return "", toSentinelErrors(err)
	}
	if edit.Id == "" {
		return editID, nil
	}
	return edit.Id, nil
}

func (c *client) GetEdit(ctx context.Context, editID string) (string, error) {
	edit, err := c.svc.Edits.Get(c.packageName, editID).Context(ctx).Do()
	if err != nil {
		return "", toSentinelErrors(err)
	}
	return edit.Id, nil
}

func (c *client) ValidateEdit(ctx context.Context, editID string) error {
	_, err := c.svc.Edits.Validate(c.packageName, editID).Context(ctx).Do()
	return toSentinelErrors(err)
}

func (c *client) CommitEdit(ctx context.Context, editID string) error {
	_, err := c.svc.Edits.Commit(c.packageName, editID).Context(ctx).Do()
	return toSentinelErrors(err)
}

func (c *client) GetTrack(ctx context.Context, editID string, track model.TrackName) (model.Track, error) {
	t, err := c.svc.Edits.Tracks.Get(c.packageName, editID, track.String()).Context(ctx).Do()
	if err != nil {
		return model.Track{}, toSentinelErrors(err)
	}
	return fromAPITrack(t), nil
}

func (c *client) UpdateTrack(ctx context.Context, editID string, track model.Track) (model.Track, error) {
	t, err := c.svc.Edits.Tracks.Update(c.packageName, editID, track.Name.String(), toAPITrack(track)).Context(ctx).Do()
	if err != nil {
		return model.Track{}, toSentinelErrors(err)
	}
	return fromAPITrack(t), nil
}

func (c *client) UploadBundle(ctx context.Context, editID string, media io.Reader) (int64, error) {
	bundle, err := c.svc.Edits.Bundles.Upload(c.packageName, editID).
		Media(media, mediaOptions(mediaContentType)...).
		Context(ctx).
		Do()
	if err != nil {
		return 0, toSentinelErrors(err)
	}
	c.l.Debug("bundle uploaded", zap.String("sha256", bundle.Sha256), zap.Int64("versionCode", bundle.VersionCode))
	return bundle.VersionCode, nil
}

func (c *client) UploadPackage(ctx context.Context, editID string, media io.Reader) (int64, error) {
	apk, err := c.svc.Edits.Apks.Upload(c.packageName, editID).
		Media(media, mediaOptions(mediaContentType)...).
		Context(ctx).
		Do()
	if err != nil {
		return 0, toSentinelErrors(err)
	}
	if apk.Binary != nil {
		c.l.Debug("apk uploaded", zap.String("sha256", apk.Binary.Sha256), zap.Int64("versionCode", apk.VersionCode))
	}
	return apk.VersionCode, nil
}

func (c *client) UploadExpansionFile(ctx context.Context, editID string, versionCode int64, fileType model.ExpansionFileType, media io.Reader) error {
	_, err := c.svc.Edits.Expansionfiles.Upload(c.packageName, editID, versionCode, fileType.String()).
		Media(media, mediaOptions(mediaContentType)...).
		Context(ctx).
		Do()
	return toSentinelErrors(err)
}

func (c *client) UploadImage(ctx context.Context, editID string, imageType model.ImageType, language string, media io.Reader) error {
	resp, err := c.svc.Edits.Images.Upload(c.packageName, editID, language, imageType.String()).
		Media(media, mediaOptions("image/*")...).
		Context(ctx).
		Do()
	if err != nil {
		return toSentinelErrors(err)
	}
	if resp.Image != nil {
		c.l.Debug("image uploaded", zap.String("id", resp.Image.Id), zap.String("sha256", resp.Image.Sha256))
	}
	return nil
}
