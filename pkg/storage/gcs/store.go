// Copyright © 2018 One Concern

package gcs

import (
	"context"
	"io"

	gcsStorage "cloud.google.com/go/storage"
	"github.com/oneconcern/playpub/pkg/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type gcs struct {
	client     *gcsStorage.Client
	bucket     string
	credFile   string
	clientOpts []option.ClientOption
	l          *zap.Logger
}

// New builds a read-only GCS store for some bucket.
//
// When credFile is empty, the default application credentials are used.
func New(ctx context.Context, bucket, credFile string, opts ...Option) (storage.Store, error) {
	googleStore := &gcs{
		bucket:   bucket,
		credFile: credFile,
		l:        zap.NewNop(),
	}
	for _, apply := range opts {
		apply(googleStore)
	}

	clientOpts := append([]option.ClientOption{option.WithScopes(gcsStorage.ScopeReadOnly)}, googleStore.clientOpts...)
	if googleStore.credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(googleStore.credFile))
	}
	client, err := gcsStorage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	googleStore.client = client
	return googleStore, nil
}

func (g *gcs) String() string {
	return "gcs://" + g.bucket
}

func (g *gcs) Has(ctx context.Context, objectName string) (bool, error) {
	_, err := g.client.Bucket(g.bucket).Object(objectName).Attrs(ctx)
	if err != nil {
		if err == gcsStorage.ErrObjectNotExist {
			return false, nil
		}
		return false, toSentinelErrors(err)
	}
	return true, nil
}

func (g *gcs) Get(ctx context.Context, objectName string) (io.ReadCloser, error) {
	g.l.Debug("gcs get", zap.String("bucket", g.bucket), zap.String("object", objectName))
	objectReader, err := g.client.Bucket(g.bucket).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	return objectReader, nil
}

func (g *gcs) Size(ctx context.Context, objectName string) (int64, error) {
	attrs, err := g.client.Bucket(g.bucket).Object(objectName).Attrs(ctx)
	if err != nil {
		return 0, toSentinelErrors(err)
	}
	return attrs.Size, nil
}
