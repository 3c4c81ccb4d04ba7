package model

import (
	"testing"

	"github.com/oneconcern/playpub/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindBundle, KindOf("build/outputs/app-release.aab"))
	assert.Equal(t, KindBundle, KindOf("gs://builds/APP.AAB"))
	assert.Equal(t, KindPackage, KindOf("build/outputs/app-release.apk"))
	assert.Equal(t, KindPackage, KindOf("/tmp/aab/app.apk"))
	assert.Equal(t, KindPackage, KindOf("app"))

	a := NewArtifact("x/y.aab")
	assert.Equal(t, KindBundle, a.Kind)
	assert.Equal(t, "x/y.aab", a.Path)
}

func TestParseTrackName(t *testing.T) {
	for _, name := range []string{"internal", "alpha", "beta", "production"} {
		tr, err := ParseTrackName(name)
		require.NoError(t, err)
		assert.Equal(t, name, tr.String())
	}

	_, err := ParseTrackName("staging")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTrack))
	assert.Contains(t, err.Error(), "staging")
}

func TestParseReleaseStatus(t *testing.T) {
	for _, name := range []string{"draft", "inProgress", "halted", "completed"} {
		st, err := ParseReleaseStatus(name)
		require.NoError(t, err)
		assert.Equal(t, name, st.String())
	}

	_, err := ParseReleaseStatus("done")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestParseImageType(t *testing.T) {
	require.Len(t, ImageTypes, 9)
	for _, it := range ImageTypes {
		parsed, err := ParseImageType(it.String())
		require.NoError(t, err)
		assert.Equal(t, it, parsed)
	}

	_, err := ParseImageType("banner")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidImageType))

	asset := NewAsset(Icon, "icon.png", "")
	assert.Equal(t, DefaultLanguage, asset.Language)
}

func TestParseExpansionFileType(t *testing.T) {
	ft, err := ParseExpansionFileType("patch")
	require.NoError(t, err)
	assert.Equal(t, ExpansionPatch, ft)

	_, err = ParseExpansionFileType("obb")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidExpansionFileType))
}

func TestTrackCurrentRelease(t *testing.T) {
	empty := Track{Name: BetaTrack}
	_, ok := empty.CurrentRelease()
	assert.False(t, ok)
	_, ok = empty.CurrentVersionCode()
	assert.False(t, ok)

	tr := Track{
		Name: AlphaTrack,
		Releases: []Release{
			NewRelease(ReleaseName("R1"), ReleaseVersionCode(7), ReleaseWithStatus(StatusCompleted)),
			NewRelease(ReleaseName("R0"), ReleaseVersionCode(6)),
		},
	}
	r, ok := tr.CurrentRelease()
	require.True(t, ok)
	assert.Equal(t, "R1", r.Name)
	v, ok := tr.CurrentVersionCode()
	require.True(t, ok)
	assert.Equal(t, int64(7), v)
}

func TestTrackClone(t *testing.T) {
	tr := Track{
		Name: InternalTrack,
		Releases: []Release{{
			Name:         "R1",
			Status:       StatusInProgress,
			VersionCodes: []int64{7},
			ReleaseNotes: []LocalizedText{{Language: "en-US", Text: "fixes"}},
			UserFraction: 0.1,
		}},
	}
	c := tr.Clone()
	require.Equal(t, tr, c)

	c.Name = ProductionTrack
	c.Releases[0].Status = StatusDraft
	c.Releases[0].VersionCodes[0] = 8
	c.Releases[0].ReleaseNotes[0].Text = "changed"

	assert.Equal(t, InternalTrack, tr.Name)
	assert.Equal(t, StatusInProgress, tr.Releases[0].Status)
	assert.Equal(t, int64(7), tr.Releases[0].VersionCodes[0])
	assert.Equal(t, "fixes", tr.Releases[0].ReleaseNotes[0].Text)
}

func TestNewRelease(t *testing.T) {
	r := NewRelease()
	assert.Equal(t, StatusDraft, r.Status)
	assert.Empty(t, r.VersionCodes)

	r = NewRelease(ReleaseNotes(nil))
	assert.Nil(t, r.ReleaseNotes)
}

func TestEditID(t *testing.T) {
	a, b := NewEditID(), NewEditID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)

	assert.True(t, EditOpen.IsValid())
	assert.False(t, EditState("aborted").IsValid())
}
