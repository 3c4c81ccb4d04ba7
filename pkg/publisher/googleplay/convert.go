package googleplay

import (
	"github.com/oneconcern/playpub/pkg/model"
	"google.golang.org/api/androidpublisher/v3"
	"google.golang.org/api/googleapi"
)

func fromAPITrack(t *androidpublisher.Track) model.Track {
	if t == nil {
		return model.Track{}
	}
	track := model.Track{Name: model.TrackName(t.Track)}
	if len(t.Releases) == 0 {
		return track
	}
	track.Releases = make([]model.Release, 0, len(t.Releases))
	for _, r := range t.Releases {
		if r == nil {
			continue
		}
		release := model.Release{
			Name:                r.Name,
			Status:              model.ReleaseStatus(r.Status),
			UserFraction:        r.UserFraction,
			InAppUpdatePriority: r.InAppUpdatePriority,
		}
		if len(r.VersionCodes) > 0 {
			release.VersionCodes = append([]int64(nil), r.VersionCodes...)
		}
		for _, note := range r.ReleaseNotes {
			if note == nil {
				continue
			}
			release.ReleaseNotes = append(release.ReleaseNotes, model.LocalizedText{Language: note.Language, Text: note.Text})
		}
		if r.CountryTargeting != nil {
			release.CountryTargeting = &model.CountryTargeting{
				Countries:          append([]string(nil), r.CountryTargeting.Countries...),
				IncludeRestOfWorld: r.CountryTargeting.IncludeRestOfWorld,
			}
		}
		track.Releases = append(track.Releases, release)
	}
	return track
}

func toAPITrack(t model.Track) *androidpublisher.Track {
	track := &androidpublisher.Track{
		Track:    t.Name.String(),
		Releases: make([]*androidpublisher.TrackRelease, 0, len(t.Releases)),
	}
	for _, r := range t.Releases {
		release := &androidpublisher.TrackRelease{
			Name:                r.Name,
			Status:              r.Status.String(),
			VersionCodes:        googleapi.Int64s(r.VersionCodes),
			UserFraction:        r.UserFraction,
			InAppUpdatePriority: r.InAppUpdatePriority,
		}
		for _, note := range r.ReleaseNotes {
			release.ReleaseNotes = append(release.ReleaseNotes, &androidpublisher.LocalizedText{
				Language: note.Language,
				Text:     note.Text,
			})
		}
		if r.CountryTargeting != nil {
			release.CountryTargeting = &androidpublisher.CountryTargeting{
				Countries:          r.CountryTargeting.Countries,
				IncludeRestOfWorld: r.CountryTargeting.IncludeRestOfWorld,
			}
		}
		track.Releases = append(track.Releases, release)
	}
	return track
}
