package model

import "strings"

// TrackName is the remote-defined identifier of a distribution channel
type TrackName string

const (
	// InternalTrack is the internal test track, and the default track
	InternalTrack TrackName = "internal"

	// AlphaTrack is the closed testing track
	AlphaTrack TrackName = "alpha"

	// BetaTrack is the open testing track
	BetaTrack TrackName = "beta"

	// ProductionTrack is the public track
	ProductionTrack TrackName = "production"
)

// TrackNames lists all known tracks
var TrackNames = []TrackName{InternalTrack, AlphaTrack, BetaTrack, ProductionTrack}

// ParseTrackName validates a track name
func ParseTrackName(s string) (TrackName, error) {
	for _, t := range TrackNames {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrInvalidTrack.WrapMessage("%q is not one of %s", s, joinTracks())
}

func (t TrackName) String() string {
	return string(t)
}

func joinTracks() string {
	names := make([]string, 0, len(TrackNames))
	for _, t := range TrackNames {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// ReleaseStatus is the lifecycle status of a release on a track
type ReleaseStatus string

const (
	// StatusDraft is a release not yet rolled out. This is the default status.
	StatusDraft ReleaseStatus = "draft"

	// StatusInProgress is a release being rolled out to a fraction of users
	StatusInProgress ReleaseStatus = "inProgress"

	// StatusHalted is a release whose rollout has been stopped
	StatusHalted ReleaseStatus = "halted"

	// StatusCompleted is a release fully rolled out
	StatusCompleted ReleaseStatus = "completed"
)

// ReleaseStatuses lists all known release statuses
var ReleaseStatuses = []ReleaseStatus{StatusDraft, StatusCompleted, StatusHalted, StatusInProgress}

// ParseReleaseStatus validates a release status
func ParseReleaseStatus(s string) (ReleaseStatus, error) {
	for _, st := range ReleaseStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	names := make([]string, 0, len(ReleaseStatuses))
	for _, st := range ReleaseStatuses {
		names = append(names, string(st))
	}
	return "", ErrInvalidStatus.WrapMessage("%q is not one of %s", s, strings.Join(names, ", "))
}

func (s ReleaseStatus) String() string {
	return string(s)
}

// LocalizedText is a release note for some language
type LocalizedText struct {
	Language string `json:"language" yaml:"language"`
	Text     string `json:"text" yaml:"text"`
}

// CountryTargeting restricts a staged rollout to some countries
type CountryTargeting struct {
	Countries          []string `json:"countries,omitempty" yaml:"countries,omitempty"`
	IncludeRestOfWorld bool     `json:"includeRestOfWorld,omitempty" yaml:"includeRestOfWorld,omitempty"`
}

// Release models a publishable unit assigned to a track.
//
// Only the first version code is ever used by playpub.
type Release struct {
	Name                string            `json:"name,omitempty" yaml:"name,omitempty"`
	Status              ReleaseStatus     `json:"status" yaml:"status"`
	VersionCodes        []int64           `json:"versionCodes,omitempty" yaml:"versionCodes,omitempty"`
	ReleaseNotes        []LocalizedText   `json:"releaseNotes,omitempty" yaml:"releaseNotes,omitempty"`
	UserFraction        float64           `json:"userFraction,omitempty" yaml:"userFraction,omitempty"`
	InAppUpdatePriority int64             `json:"inAppUpdatePriority,omitempty" yaml:"inAppUpdatePriority,omitempty"`
	CountryTargeting    *CountryTargeting `json:"countryTargeting,omitempty" yaml:"countryTargeting,omitempty"`
}

// NewRelease builds a release with a single version code
func NewRelease(opts ...ReleaseOption) Release {
	r := Release{Status: StatusDraft}
	for _, apply := range opts {
		apply(&r)
	}
	return r
}

// VersionCode returns the first version code of this release, if any
func (r Release) VersionCode() (int64, bool) {
	if len(r.VersionCodes) == 0 {
		return 0, false
	}
	return r.VersionCodes[0], true
}

// Clone performs a deep copy of a release
func (r Release) Clone() Release {
	c := r
	if r.VersionCodes != nil {
		c.VersionCodes = append([]int64(nil), r.VersionCodes...)
	}
	if r.ReleaseNotes != nil {
		c.ReleaseNotes = append([]LocalizedText(nil), r.ReleaseNotes...)
	}
	if r.CountryTargeting != nil {
		ct := *r.CountryTargeting
		ct.Countries = append([]string(nil), r.CountryTargeting.Countries...)
		c.CountryTargeting = &ct
	}
	return c
}

// Track models the association between a distribution channel and its releases.
//
// The remote format allows several releases per track: playpub only reads and writes the first one.
type Track struct {
	Name     TrackName `json:"track" yaml:"track"`
	Releases []Release `json:"releases,omitempty" yaml:"releases,omitempty"`
}

// CurrentRelease yields the first release of a track, if any
func (t Track) CurrentRelease() (Release, bool) {
	if len(t.Releases) == 0 {
		return Release{}, false
	}
	return t.Releases[0], true
}

// CurrentVersionCode yields the first version code of the first release of a track, if any
func (t Track) CurrentVersionCode() (int64, bool) {
	r, ok := t.CurrentRelease()
	if !ok {
		return 0, false
	}
	return r.VersionCode()
}

// Clone performs a deep copy of a track
func (t Track) Clone() Track {
	c := Track{Name: t.Name}
	if t.Releases != nil {
		c.Releases = make([]Release, 0, len(t.Releases))
		for _, r := range t.Releases {
			c.Releases = append(c.Releases, r.Clone())
		}
	}
	return c
}
