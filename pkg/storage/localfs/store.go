// Copyright © 2018 One Concern

package localfs

import (
	"context"
	"io"
	"os"

	"github.com/oneconcern/playpub/pkg/storage"
	"github.com/oneconcern/playpub/pkg/storage/status"
	"github.com/spf13/afero"
)

// New creates a new local file system backed storage model.
//
// Keys are file paths, resolved against the root of fs. With a nil fs, the OS file system is used.
func New(fs afero.Fs) storage.Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &localFS{
		fs: fs,
	}
}

type localFS struct {
	fs afero.Fs
}

func (l *localFS) Has(ctx context.Context, key string) (bool, error) {
	fi, err := l.fs.Stat(key)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return !fi.IsDir(), nil
}

func (l *localFS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	has, err := l.Has(ctx, key)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, status.ErrNotExists.WrapMessage("%s", key)
	}
	return l.fs.Open(key)
}

func (l *localFS) Size(ctx context.Context, key string) (int64, error) {
	fi, err := l.fs.Stat(key)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, status.ErrNotExists.Wrap(err)
		}
		return 0, err
	}
	if fi.IsDir() {
		return 0, status.ErrInvalidResource.WrapMessage("%s is a directory", key)
	}
	return fi.Size(), nil
}

func (l *localFS) String() string {
	const localfs = "localfs"
	switch fs := l.fs.(type) {
	case *afero.BasePathFs:
		pp, err := fs.RealPath("")
		if err != nil {
			return localfs
		}
		return localfs + "@" + pp
	default:
		return localfs
	}
}
