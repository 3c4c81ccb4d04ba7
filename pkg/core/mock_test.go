package core

import (
	"context"
	"io"
	"io/ioutil"
	"testing"

	"github.com/oneconcern/playpub/pkg/model"
	"github.com/oneconcern/playpub/pkg/publisher"
	"github.com/oneconcern/playpub/pkg/storage"
	"github.com/oneconcern/playpub/pkg/storage/localfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testPackage = "com.example.app"

var _ publisher.Client = &mockClient{}

// mockClient is a testify mock of the remote publisher.
//
// Uploaded media are passed to the mock as strings, so expectations may check the content.
type mockClient struct {
	mock.Mock
}

func newMockClient() *mockClient {
	m := &mockClient{}
	m.On("PackageName").Return(testPackage).Maybe()
	return m
}

func (m *mockClient) PackageName() string {
	return m.Called().String(0)
}

func (m *mockClient) InsertEdit(_ context.Context, editID string) (string, error) {
	args := m.Called(editID)
	return args.String(0), args.Error(1)
}

func (m *mockClient) GetEdit(_ context.Context, editID string) (string, error) {
	args := m.Called(editID)
	return args.String(0), args.Error(1)
}

func (m *mockClient) ValidateEdit(_ context.Context, editID string) error {
	return m.Called(editID).Error(0)
}

func (m *mockClient) CommitEdit(_ context.Context, editID string) error {
	return m.Called(editID).Error(0)
}

func (m *mockClient) GetTrack(_ context.Context, editID string, track model.TrackName) (model.Track, error) {
	args := m.Called(editID, track)
	return args.Get(0).(model.Track), args.Error(1)
}

func (m *mockClient) UpdateTrack(_ context.Context, editID string, track model.Track) (model.Track, error) {
	args := m.Called(editID, track)
	return args.Get(0).(model.Track), args.Error(1)
}

func readMedia(media io.Reader) string {
	content, err := ioutil.ReadAll(media)
	if err != nil {
		panic(err)
	}
	return string(content)
}

func (m *mockClient) UploadBundle(_ context.Context, editID string, media io.Reader) (int64, error) {
	args := m.Called(editID, readMedia(media))
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockClient) UploadPackage(_ context.Context, editID string, media io.Reader) (int64, error) {
	args := m.Called(editID, readMedia(media))
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockClient) UploadExpansionFile(_ context.Context, editID string, versionCode int64, fileType model.ExpansionFileType, media io.Reader) error {
	return m.Called(editID, versionCode, fileType, readMedia(media)).Error(0)
}

func (m *mockClient) UploadImage(_ context.Context, editID string, imageType model.ImageType, language string, media io.Reader) error {
	return m.Called(editID, imageType, language, readMedia(media)).Error(0)
}

// observedLogger captures log entries at debug level and above
func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

// memStore builds an in-memory store holding some files
func memStore(t testing.TB, files map[string]string) storage.Store {
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	}
	return localfs.New(fs)
}

func openEdit(id string) model.Edit {
	return model.Edit{ID: id, State: model.EditOpen}
}
