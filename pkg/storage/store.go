// Copyright © 2018 One Concern

package storage

import (
	"context"
	"io"
	"io/ioutil"
	"strings"

	"github.com/oneconcern/playpub/pkg/storage/status"
)

// MaxObjectSizeInMemory is the largest object ReadAll accepts to load in memory.
//
// Artifacts are streamed to the remote API and never read in memory.
const MaxObjectSizeInMemory = 16 * 1024 * 1024

// Store implementations know how to read objects from some backend.
//
// Typically this is something file system-like. Examples are S3, GCS, local FS, ...
// Implementations of this interface are assumed to be fairly simple.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Size(context.Context, string) (int64, error)
}

// Scheme designates the kind of backend for some location
type Scheme string

// Supported schemes
const (
	SchemeLocal Scheme = "file"
	SchemeGCS   Scheme = "gs"
	SchemeS3    Scheme = "s3"
	SchemeHTTP  Scheme = "http"
	SchemeHTTPS Scheme = "https"
)

// Location is a parsed object locator
type Location struct {
	Scheme Scheme
	// Bucket is the bucket for GCS and S3 locations, the host for HTTP locations, empty for local files
	Bucket string
	// Key is the object key in the bucket, or the path for local files and HTTP locations
	Key string
}

func (l Location) String() string {
	if l.Scheme == SchemeLocal {
		return l.Key
	}
	return string(l.Scheme) + "://" + l.Bucket + "/" + l.Key
}

// ParseLocation splits a location such as gs://bucket/key or s3://bucket/key.
//
// Anything without a recognized scheme is a local file path.
func ParseLocation(location string) (Location, error) {
	for _, scheme := range []Scheme{SchemeGCS, SchemeS3, SchemeHTTP, SchemeHTTPS} {
		prefix := string(scheme) + "://"
		if !strings.HasPrefix(location, prefix) {
			continue
		}
		rest := strings.TrimPrefix(location, prefix)
		parts := strings.SplitN(rest, "/", 2)
		if parts[0] == "" || len(parts) < 2 || parts[1] == "" {
			return Location{}, status.ErrInvalidResource.WrapMessage("invalid location: %q", location)
		}
		return Location{Scheme: scheme, Bucket: parts[0], Key: parts[1]}, nil
	}
	if strings.HasPrefix(location, string(SchemeLocal)+"://") {
		location = strings.TrimPrefix(location, string(SchemeLocal)+"://")
	}
	if location == "" {
		return Location{}, status.ErrInvalidResource.WrapMessage("empty location")
	}
	return Location{Scheme: SchemeLocal, Key: location}, nil
}

// ReadAll loads a small object in memory, e.g. a credentials file
func ReadAll(ctx context.Context, store Store, key string) ([]byte, error) {
	size, err := store.Size(ctx, key)
	if err != nil {
		return nil, err
	}
	if size > MaxObjectSizeInMemory {
		return nil, status.ErrObjectTooBig.WrapMessage("%s: %d bytes", key, size)
	}
	rdr, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rdr.Close()
	}()
	b, err := ioutil.ReadAll(io.LimitReader(rdr, MaxObjectSizeInMemory+1))
	if err != nil {
		return nil, err
	}
	if len(b) > MaxObjectSizeInMemory {
		return nil, status.ErrObjectTooBig.WrapMessage("%s: more than %d bytes", key, MaxObjectSizeInMemory)
	}
	return b, nil
}
