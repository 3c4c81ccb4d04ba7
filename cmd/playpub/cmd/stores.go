// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/playpub/pkg/storage"
	"github.com/oneconcern/playpub/pkg/storage/gcs"
	"github.com/oneconcern/playpub/pkg/storage/localfs"
	"github.com/oneconcern/playpub/pkg/storage/sthree"
	"github.com/oneconcern/playpub/pkg/storage/web"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// used to patch over the local file system during test
var localFs = afero.NewOsFs()

// newSourceStore builds a store resolving locations on the local file system, GCS, S3 or HTTP servers.
//
// GCS uses the service account key file at gcsCredFile when set. Otherwise GCS and S3
// use the default credentials of their environment.
func newSourceStore(logger *zap.Logger, gcsCredFile string) storage.Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return storage.NewMux(map[storage.Scheme]storage.Resolver{
		storage.SchemeLocal: func(_ context.Context, _ storage.Location) (storage.Store, error) {
			return localfs.New(localFs), nil
		},
		storage.SchemeGCS: func(ctx context.Context, loc storage.Location) (storage.Store, error) {
			return gcs.New(ctx, loc.Bucket, gcsCredFile, gcs.Logger(logger))
		},
		storage.SchemeS3: func(_ context.Context, loc storage.Location) (storage.Store, error) {
			return sthree.New(sthree.Bucket(loc.Bucket))
		},
		storage.SchemeHTTP:  webResolver,
		storage.SchemeHTTPS: webResolver,
	})
}

func webResolver(_ context.Context, loc storage.Location) (storage.Store, error) {
	return web.New(string(loc.Scheme) + "://" + loc.Bucket), nil
}
