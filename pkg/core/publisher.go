// Copyright © 2018 One Concern

package core

import (
	"context"

	"github.com/oneconcern/playpub/pkg/errors"
	"github.com/oneconcern/playpub/pkg/metrics"
	"github.com/oneconcern/playpub/pkg/model"
	"github.com/oneconcern/playpub/pkg/publisher"
	"github.com/oneconcern/playpub/pkg/publisher/status"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// DefaultReleaseName is the name of a release when none is given
const DefaultReleaseName = "Anonymous"

// UploadRequest describes a build to upload and assign to a track
type UploadRequest struct {
	ReleaseName   string
	ArtifactPath  string
	Status        model.ReleaseStatus
	ExpansionPath string
	Track         model.TrackName
	ReleaseNotes  []model.LocalizedText
}

// ImageRequest describes an image to upload into a store listing slot
type ImageRequest struct {
	ImageType model.ImageType
	Path      string
	Language  string

	// Track is accepted for symmetry with other operations: images are not bound to a track
	Track model.TrackName
}

// Publisher runs publishing operations, each one within its own edit transaction
type Publisher struct {
	session   *EditSession
	artifacts *ArtifactUploader
	assets    *AssetUploader
	tracks    *TrackManager
	promotion *Promotion
	editHint  string
	policy    CommitPolicy
	l         *zap.Logger
}

// NewPublisher builds a publisher driving some remote client
func NewPublisher(client publisher.Client, opts ...Option) *Publisher {
	s := newSettings(opts)
	tracks := NewTrackManager(client, opts...)
	return &Publisher{
		session:   NewEditSession(client, opts...),
		artifacts: NewArtifactUploader(client, opts...),
		assets:    NewAssetUploader(client, opts...),
		tracks:    tracks,
		promotion: NewPromotion(tracks, opts...),
		editHint:  s.editHint,
		policy:    s.policy,
		l:         s.l,
	}
}

// done closes an operation: the session is always reset, whatever the outcome
func (p *Publisher) done(outcome *Outcome) {
	metrics.Transaction(outcome.String())
	p.session.Reset()
}

// open starts the edit of an operation. The resume hint only applies to the first operation.
func (p *Publisher) open(ctx context.Context) (model.Edit, error) {
	hint := p.editHint
	p.editHint = ""
	return p.session.Open(ctx, hint)
}

func (p *Publisher) abort() {
	p.l.Info("Aborting...", zap.String("edit", p.session.ID()))
}

// finish validates then commits the current edit
func (p *Publisher) finish(ctx context.Context) (Outcome, error) {
	if !p.session.Validate(ctx) {
		p.abort()
		return OutcomeValidationRejected, status.ErrValidationRejected.WrapMessage("edit %q", p.session.ID())
	}
	if err := p.session.Commit(ctx); err != nil {
		return OutcomeCommitRejected, err
	}
	return OutcomeCommitted, nil
}

// UploadAndAddToTrack uploads a build and assigns it to a track as the single release
func (p *Publisher) UploadAndAddToTrack(ctx context.Context, req UploadRequest) (outcome Outcome, err error) {
	defer p.done(&outcome)

	if req.ReleaseName == "" {
		req.ReleaseName = DefaultReleaseName
	}
	if req.Status == "" {
		req.Status = model.StatusDraft
	}
	if req.Track == "" {
		req.Track = model.InternalTrack
	}

	edit, err := p.open(ctx)
	if err != nil {
		return OutcomeSessionFailed, err
	}

	versionCode, ok := p.artifacts.Upload(ctx, edit, req.ArtifactPath, req.ExpansionPath)
	if !ok {
		p.abort()
		return OutcomeUploadFailed, status.ErrUploadFailed.WrapMessage("%s", req.ArtifactPath)
	}
	p.l.Info("artifact upload returned version code", zap.Int64("versionCode", versionCode))

	if _, err = p.tracks.SetTrackRelease(ctx, edit, req.Track, req.ReleaseName, versionCode, req.Status, req.ReleaseNotes...); err != nil {
		p.abort()
		return OutcomeUpdateFailed, err
	}

	return p.finish(ctx)
}

// UploadImage uploads an image into a store listing slot.
//
// The edit is validated even when the upload fails, but the operation is then reported as failed.
func (p *Publisher) UploadImage(ctx context.Context, req ImageRequest) (outcome Outcome, err error) {
	defer p.done(&outcome)

	edit, err := p.open(ctx)
	if err != nil {
		return OutcomeSessionFailed, err
	}

	uploadErr := p.assets.UploadAsset(ctx, edit, req.ImageType, req.Path, req.Language)

	outcome, err = p.finish(ctx)
	if uploadErr != nil && outcome == OutcomeCommitted {
		outcome = OutcomeUploadFailed
	}
	return outcome, multierr.Append(uploadErr, err)
}

// Promote assigns the current release of the source track to the target track with a new status.
//
// With the CommitRegardless policy, the edit is validated and committed even when the track update failed.
// When the source track cannot be read or holds no release, the edit is aborted.
func (p *Publisher) Promote(ctx context.Context, source, target model.TrackName, releaseStatus model.ReleaseStatus) (outcome Outcome, err error) {
	defer p.done(&outcome)

	if releaseStatus == "" {
		releaseStatus = model.StatusDraft
	}

	edit, err := p.open(ctx)
	if err != nil {
		return OutcomeSessionFailed, err
	}

	promoteErr := p.promotion.Promote(ctx, edit, source, target, releaseStatus)
	if promoteErr != nil && (!errors.Is(promoteErr, status.ErrTrackUpdate) || p.policy != CommitRegardless) {
		p.abort()
		return OutcomeUpdateFailed, promoteErr
	}

	outcome, err = p.finish(ctx)
	if promoteErr != nil && outcome == OutcomeCommitted {
		outcome = OutcomeUpdateFailed
	}
	return outcome, multierr.Append(promoteErr, err)
}
