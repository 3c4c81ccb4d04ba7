package cmd

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"testing"

	"github.com/oneconcern/playpub/pkg/model"
	"github.com/oneconcern/playpub/pkg/publisher"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPackage = "com.example.app"

type ExitMocks struct {
	mock.Mock
	exitStatuses []int
}

func (m *ExitMocks) Fatalf(format string, v ...interface{}) {
	fmt.Printf(format+"\n", v...)
	m.exitStatuses = append(m.exitStatuses, exitFailure)
}

func (m *ExitMocks) Fatalln(v ...interface{}) {
	fmt.Println(v...)
	m.exitStatuses = append(m.exitStatuses, exitFailure)
}

func (m *ExitMocks) Exit(code int) {
	m.exitStatuses = append(m.exitStatuses, code)
}

func (m *ExitMocks) fatalCalls() int {
	return len(m.exitStatuses)
}

func NewExitMocks() *ExitMocks {
	return &ExitMocks{
		exitStatuses: make([]int, 0),
	}
}

var exitMocks *ExitMocks

// mockClient is a testify mock of the remote publisher
type mockClient struct {
	mock.Mock
}

var _ publisher.Client = &mockClient{}

func (m *mockClient) PackageName() string {
	return testPackage
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
	content, _ := ioutil.ReadAll(media)
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

// setupTests patches exits, the local file system and the remote client
func setupTests(t *testing.T, files map[string]string) *mockClient {
	exitMocks = NewExitMocks()
	osExit = exitMocks.Exit
	logFatalf = exitMocks.Fatalf
	logFatalln = exitMocks.Fatalln

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	}
	localFs = fs

	client := &mockClient{}
	newPublisherClient = func(_ context.Context, in *cliOptionInputs) (publisher.Client, error) {
		return client, nil
	}
	return client
}

func runCmd(t *testing.T, cmd []string) error {
	resetFlags(rootCmd)
	rootCmd.SetArgs(cmd)
	return rootCmd.Execute()
}
