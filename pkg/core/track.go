// Copyright © 2018 One Concern

package core

import (
	"context"

	"github.com/oneconcern/playpub/pkg/model"
	"github.com/oneconcern/playpub/pkg/publisher"
	"github.com/oneconcern/playpub/pkg/publisher/status"
	"go.uber.org/zap"
)

// TrackManager reads and writes track assignments within an edit
type TrackManager struct {
	client publisher.Client
	l      *zap.Logger
}

// NewTrackManager builds a track manager
func NewTrackManager(client publisher.Client, opts ...Option) *TrackManager {
	s := newSettings(opts)
	return &TrackManager{
		client: client,
		l:      s.l,
	}
}

// GetTrack retrieves the current state of a track
func (m *TrackManager) GetTrack(ctx context.Context, edit model.Edit, name model.TrackName) (model.Track, error) {
	return m.client.GetTrack(ctx, edit.ID, name)
}

// UpdateTrack replaces the releases of a track
func (m *TrackManager) UpdateTrack(ctx context.Context, edit model.Edit, track model.Track) (model.Track, error) {
	updated, err := m.client.UpdateTrack(ctx, edit.ID, track)
	if err != nil {
		m.l.Error("failed to update track", zap.String("edit", edit.ID), zap.Stringer("track", track.Name), zap.Error(err))
		return model.Track{}, status.ErrTrackUpdate.Wrap(err)
	}
	return updated, nil
}

// SetTrackRelease assigns a single release to a track. Any previous release on this track is replaced.
func (m *TrackManager) SetTrackRelease(
	ctx context.Context,
	edit model.Edit,
	name model.TrackName,
	releaseName string,
	versionCode int64,
	releaseStatus model.ReleaseStatus,
	notes ...model.LocalizedText,
) (model.Track, error) {
	track := model.Track{
		Name: name,
		Releases: []model.Release{
			model.NewRelease(
				model.ReleaseName(releaseName),
				model.ReleaseWithStatus(releaseStatus),
				model.ReleaseVersionCode(versionCode),
				model.ReleaseNotes(notes),
			),
		},
	}
	m.l.Info("updating track with release",
		zap.String("edit", edit.ID),
		zap.Stringer("track", name),
		zap.String("release", releaseName),
		zap.Int64("versionCode", versionCode),
		zap.Stringer("status", releaseStatus),
	)
	return m.UpdateTrack(ctx, edit, track)
}
