// Copyright © 2018 One Concern

package core

import (
	"context"
	"strconv"

	"github.com/oneconcern/playpub/pkg/model"
	"github.com/oneconcern/playpub/pkg/publisher/status"
	"go.uber.org/zap"
)

const notAvailable = "N/A"

// Promotion copies the current release of a track to another track
type Promotion struct {
	tracks *TrackManager
	l      *zap.Logger
}

// NewPromotion builds a promotion over some track manager
func NewPromotion(tracks *TrackManager, opts ...Option) *Promotion {
	s := newSettings(opts)
	return &Promotion{
		tracks: tracks,
		l:      s.l,
	}
}

// Promote assigns the current release of the source track to the target track, with a new status.
//
// The promoted release keeps all the attributes of the source release (name, version codes,
// release notes, rollout settings). The target track is read for information only.
func (p *Promotion) Promote(ctx context.Context, edit model.Edit, source, target model.TrackName, releaseStatus model.ReleaseStatus) error {
	l := p.l.With(zap.String("edit", edit.ID), zap.Stringer("source", source), zap.Stringer("target", target))

	sourceTrack, err := p.tracks.GetTrack(ctx, edit, source)
	if err != nil {
		l.Error("cannot read source track", zap.Error(err))
		return err
	}
	release, ok := sourceTrack.CurrentRelease()
	if !ok {
		l.Error("source track has no release")
		return status.ErrNoRelease.WrapMessage("track %s", source)
	}

	l.Info("promoting release",
		zap.String("versionCode", versionCodeOf(sourceTrack)),
		zap.String("replacing", p.currentVersion(ctx, edit, target, l)),
		zap.Stringer("status", releaseStatus),
	)

	promoted := release.Clone()
	promoted.Status = releaseStatus
	if _, err = p.tracks.UpdateTrack(ctx, edit, model.Track{Name: target, Releases: []model.Release{promoted}}); err != nil {
		l.Error("failed to update status", zap.Error(err))
		return err
	}
	return nil
}

// currentVersion tells the version code currently on a track, for information
func (p *Promotion) currentVersion(ctx context.Context, edit model.Edit, name model.TrackName, l *zap.Logger) string {
	track, err := p.tracks.GetTrack(ctx, edit, name)
	if err != nil {
		l.Debug("target track not available", zap.Error(err))
		return notAvailable
	}
	return versionCodeOf(track)
}

func versionCodeOf(track model.Track) string {
	v, ok := track.CurrentVersionCode()
	if !ok {
		return notAvailable
	}
	return strconv.FormatInt(v, 10)
}
