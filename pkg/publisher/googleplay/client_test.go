package googleplay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/oneconcern/playpub/pkg/errors"
	"github.com/oneconcern/playpub/pkg/model"
	"github.com/oneconcern/playpub/pkg/publisher"
	"github.com/oneconcern/playpub/pkg/publisher/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/androidpublisher/v3"
	"google.golang.org/api/option"
)

const testPackage = "com.example.app"

// fakePlay mimics the subset of the Android Publisher API used by playpub
type fakePlay struct {
	mu       sync.Mutex
	edits    map[string]bool
	tracks   map[string]*androidpublisher.Track
	uploads  []string
	validate int
	commits  int
	rejectOn string
}

func newFakePlay() *fakePlay {
	return &fakePlay{
		edits:  make(map[string]bool),
		tracks: make(map[string]*androidpublisher.Track),
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]interface{}{
		"error": map[string]interface{}{"code": code, "message": msg},
	})
}

func (f *fakePlay) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	const marker = "/applications/" + testPackage + "/"
	idx := strings.Index(r.URL.Path, marker)
	if idx < 0 {
		writeError(w, http.StatusNotFound, "unknown package")
		return
	}
	route := strings.TrimPrefix(r.URL.Path[idx+len(marker):], "edits")
	if route == "" {
		var edit androidpublisher.AppEdit
		_ = json.NewDecoder(r.Body).Decode(&edit)
		if edit.Id == "" {
			edit.Id = "server-assigned"
		}
		f.edits[edit.Id] = true
		writeJSON(w, http.StatusOK, androidpublisher.AppEdit{Id: edit.Id})
		return
	}

	route = strings.TrimPrefix(route, "/")
	parts := strings.Split(route, "/")
	editID := parts[0]
	action := ""
	if i := strings.Index(editID, ":"); i >= 0 {
		editID, action = editID[:i], editID[i+1:]
	}
	if !f.edits[editID] {
		writeError(w, http.StatusNotFound, "edit not found")
		return
	}
	if f.rejectOn != "" && f.rejectOn == action {
		writeError(w, http.StatusBadRequest, action+" rejected")
		return
	}

	switch {
	case len(parts) == 1 && action == "":
		writeJSON(w, http.StatusOK, androidpublisher.AppEdit{Id: editID})
	case action == "validate":
		f.validate++
		writeJSON(w, http.StatusOK, androidpublisher.AppEdit{Id: editID})
	case action == "commit":
		f.commits++
		delete(f.edits, editID)
		writeJSON(w, http.StatusOK, androidpublisher.AppEdit{Id: editID})
	case len(parts) == 3 && parts[1] == "tracks" && r.Method == http.MethodGet:
		t, ok := f.tracks[parts[2]]
		if !ok {
			writeError(w, http.StatusNotFound, "track not found")
			return
		}
		writeJSON(w, http.StatusOK, t)
	case len(parts) == 3 && parts[1] == "tracks":
		var t androidpublisher.Track
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.tracks[parts[2]] = &t
		writeJSON(w, http.StatusOK, &t)
	case len(parts) == 2 && parts[1] == "bundles":
		f.uploads = append(f.uploads, "bundle")
		writeJSON(w, http.StatusOK, androidpublisher.Bundle{VersionCode: 42, Sha256: "abc"})
	case len(parts) == 2 && parts[1] == "apks":
		f.uploads = append(f.uploads, "apk")
		writeJSON(w, http.StatusOK, androidpublisher.Apk{VersionCode: 43})
	case len(parts) == 5 && parts[1] == "apks" && parts[3] == "expansionFiles":
		f.uploads = append(f.uploads, "expansion:"+parts[2]+":"+parts[4])
		writeJSON(w, http.StatusOK, androidpublisher.ExpansionFilesUploadResponse{})
	case len(parts) == 4 && parts[1] == "listings":
		f.uploads = append(f.uploads, "image:"+parts[2]+":"+parts[3])
		writeJSON(w, http.StatusOK, androidpublisher.ImagesUploadResponse{Image: &androidpublisher.Image{Id: "img"}})
	default:
		writeError(w, http.StatusNotFound, "unknown route "+route)
	}
}

func setupClient(t *testing.T) (publisher.Client, *fakePlay) {
	fake := newFakePlay()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	c, err := New(context.Background(), testPackage, ClientOptions(
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()),
	))
	require.NoError(t, err)
	return c, fake
}

func TestEditLifecycle(t *testing.T) {
	c, fake := setupClient(t)
	ctx := context.Background()
	assert.Equal(t, testPackage, c.PackageName())

	_, err := c.GetEdit(ctx, "unknown")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNotFound))

	id, err := c.InsertEdit(ctx, "edit-1")
	require.NoError(t, err)
	assert.Equal(t, "edit-1", id)

	id, err = c.GetEdit(ctx, "edit-1")
	require.NoError(t, err)
	assert.Equal(t, "edit-1", id)

	require.NoError(t, c.ValidateEdit(ctx, "edit-1"))
	require.NoError(t, c.CommitEdit(ctx, "edit-1"))
	assert.Equal(t, 1, fake.validate)
	assert.Equal(t, 1, fake.commits)

	// a committed edit is gone
	err = c.CommitEdit(ctx, "edit-1")
	assert.True(t, errors.Is(err, status.ErrNotFound))
}

func TestValidationRejected(t *testing.T) {
	c, fake := setupClient(t)
	ctx := context.Background()
	fake.rejectOn = "validate"

	id, err := c.InsertEdit(ctx, "edit-2")
	require.NoError(t, err)

	err = c.ValidateEdit(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrRemoteCall))
	assert.False(t, errors.Is(err, status.ErrNotFound))
}

func TestTracks(t *testing.T) {
	c, _ := setupClient(t)
	ctx := context.Background()
	id, err := c.InsertEdit(ctx, "edit-3")
	require.NoError(t, err)

	_, err = c.GetTrack(ctx, id, model.BetaTrack)
	assert.True(t, errors.Is(err, status.ErrNotFound))

	track := model.Track{
		Name: model.BetaTrack,
		Releases: []model.Release{{
			Name:         "R1",
			Status:       model.StatusInProgress,
			VersionCodes: []int64{7},
			ReleaseNotes: []model.LocalizedText{{Language: "en-US", Text: "fixes"}},
			UserFraction: 0.2,
			CountryTargeting: &model.CountryTargeting{
				Countries: []string{"FR", "US"},
			},
		}},
	}
	updated, err := c.UpdateTrack(ctx, id, track)
	require.NoError(t, err)
	assert.Equal(t, track, updated)

	fetched, err := c.GetTrack(ctx, id, model.BetaTrack)
	require.NoError(t, err)
	assert.Equal(t, track, fetched)
}

func TestUploads(t *testing.T) {
	c, fake := setupClient(t)
	ctx := context.Background()
	id, err := c.InsertEdit(ctx, "edit-4")
	require.NoError(t, err)

	v, err := c.UploadBundle(ctx, id, bytes.NewBufferString("bundle"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = c.UploadPackage(ctx, id, bytes.NewBufferString("apk"))
	require.NoError(t, err)
	assert.Equal(t, int64(43), v)

	require.NoError(t, c.UploadExpansionFile(ctx, id, 43, model.ExpansionMain, bytes.NewBufferString("obb")))
	require.NoError(t, c.UploadImage(ctx, id, model.Icon, "fr-FR", bytes.NewBufferString("png")))

	assert.Equal(t, []string{"bundle", "apk", "expansion:43:main", "image:fr-FR:icon"}, fake.uploads)
}

func TestToSentinelErrors(t *testing.T) {
	assert.Nil(t, toSentinelErrors(nil))

	err := toSentinelErrors(io.ErrUnexpectedEOF)
	assert.True(t, errors.Is(err, status.ErrRemoteCall))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}
