package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/oneconcern/playpub/pkg/errors"
	"github.com/oneconcern/playpub/pkg/model"
	"github.com/oneconcern/playpub/pkg/publisher/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sourceTrack() model.Track {
	return model.Track{
		Name: model.BetaTrack,
		Releases: []model.Release{{
			Name:                "2.0.1",
			Status:              model.StatusInProgress,
			VersionCodes:        []int64{42},
			ReleaseNotes:        []model.LocalizedText{{Language: "en-US", Text: "new things"}},
			UserFraction:        0.1,
			InAppUpdatePriority: 3,
			CountryTargeting:    &model.CountryTargeting{Countries: []string{"FR"}},
		}},
	}
}

func TestPromoteCopiesRelease(t *testing.T) {
	l, logs := observedLogger()
	expected := sourceTrack()
	expected.Name = model.ProductionTrack
	expected.Releases[0].Status = model.StatusCompleted

	client := newMockClient()
	client.On("GetTrack", "edit-1", model.BetaTrack).Return(sourceTrack(), nil).Once()
	client.On("GetTrack", "edit-1", model.ProductionTrack).Return(model.Track{
		Name:     model.ProductionTrack,
		Releases: []model.Release{{Name: "1.9", Status: model.StatusCompleted, VersionCodes: []int64{40}}},
	}, nil).Once()
	client.On("UpdateTrack", "edit-1", expected).Return(expected, nil).Once()
	promotion := NewPromotion(NewTrackManager(client), Logger(l))

	err := promotion.Promote(context.Background(), openEdit("edit-1"), model.BetaTrack, model.ProductionTrack, model.StatusCompleted)
	require.NoError(t, err)
	client.AssertExpectations(t)

	entries := logs.FilterMessage("promoting release").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "42", entries[0].ContextMap()["versionCode"])
	assert.Equal(t, "40", entries[0].ContextMap()["replacing"])
}

func TestPromoteToEmptyTarget(t *testing.T) {
	for _, target := range []struct {
		name  string
		track model.Track
		err   error
	}{
		{name: "missing", track: model.Track{}, err: status.ErrNotFound.Wrap(fmt.Errorf("404"))},
		{name: "no release", track: model.Track{Name: model.AlphaTrack}},
	} {
		fixture := target
		t.Run(fixture.name, func(t *testing.T) {
			l, logs := observedLogger()
			client := newMockClient()
			client.On("GetTrack", "edit-1", model.BetaTrack).Return(sourceTrack(), nil).Once()
			client.On("GetTrack", "edit-1", model.AlphaTrack).Return(fixture.track, fixture.err).Once()
			client.On("UpdateTrack", "edit-1", mock.AnythingOfType("model.Track")).Return(model.Track{}, nil).Once()
			promotion := NewPromotion(NewTrackManager(client), Logger(l))

			err := promotion.Promote(context.Background(), openEdit("edit-1"), model.BetaTrack, model.AlphaTrack, model.StatusDraft)
			require.NoError(t, err)

			entries := logs.FilterMessage("promoting release").All()
			require.Len(t, entries, 1)
			assert.Equal(t, "N/A", entries[0].ContextMap()["replacing"])
		})
	}
}

func TestPromoteMissingSource(t *testing.T) {
	client := newMockClient()
	client.On("GetTrack", "edit-1", model.BetaTrack).Return(model.Track{}, status.ErrNotFound.Wrap(fmt.Errorf("404"))).Once()
	promotion := NewPromotion(NewTrackManager(client))

	err := promotion.Promote(context.Background(), openEdit("edit-1"), model.BetaTrack, model.ProductionTrack, model.StatusDraft)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNotFound))
	client.AssertNotCalled(t, "UpdateTrack", mock.Anything, mock.Anything)
}

func TestPromoteEmptySource(t *testing.T) {
	client := newMockClient()
	client.On("GetTrack", "edit-1", model.BetaTrack).Return(model.Track{Name: model.BetaTrack}, nil).Once()
	promotion := NewPromotion(NewTrackManager(client))

	err := promotion.Promote(context.Background(), openEdit("edit-1"), model.BetaTrack, model.ProductionTrack, model.StatusDraft)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNoRelease))
	client.AssertNotCalled(t, "UpdateTrack", mock.Anything, mock.Anything)
}

func TestPromoteUpdateFails(t *testing.T) {
	client := newMockClient()
	client.On("GetTrack", "edit-1", model.BetaTrack).Return(sourceTrack(), nil).Once()
	client.On("GetTrack", "edit-1", model.ProductionTrack).Return(model.Track{}, status.ErrNotFound).Once()
	client.On("UpdateTrack", "edit-1", mock.AnythingOfType("model.Track")).Return(model.Track{}, status.ErrForbidden).Once()
	promotion := NewPromotion(NewTrackManager(client))

	err := promotion.Promote(context.Background(), openEdit("edit-1"), model.BetaTrack, model.ProductionTrack, model.StatusHalted)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrTrackUpdate))
}

func TestPromoteDoesNotAlterSource(t *testing.T) {
	src := sourceTrack()
	client := newMockClient()
	client.On("GetTrack", "edit-1", model.BetaTrack).Return(src, nil).Once()
	client.On("GetTrack", "edit-1", model.ProductionTrack).Return(model.Track{}, status.ErrNotFound).Once()
	client.On("UpdateTrack", "edit-1", mock.AnythingOfType("model.Track")).Return(model.Track{}, nil).Once()
	promotion := NewPromotion(NewTrackManager(client))

	require.NoError(t, promotion.Promote(context.Background(), openEdit("edit-1"), model.BetaTrack, model.ProductionTrack, model.StatusCompleted))
	assert.Equal(t, sourceTrack(), src)
}
