package gcs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWithCredentialFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "key.json")

	_, err := New(context.Background(), "builds", missing)
	require.Error(t, err)
	require.Contains(t, err.Error(), "key.json")
}
