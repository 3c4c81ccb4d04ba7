// Copyright © 2018 One Concern

package core

import (
	"context"
	"io"
	"time"

	units "github.com/docker/go-units"
	"github.com/oneconcern/playpub/pkg/metrics"
	"github.com/oneconcern/playpub/pkg/storage"
	"go.uber.org/zap"
)

// upload streams an object from the store to some send function, and records upload metrics
func upload(ctx context.Context, store storage.Store, location, kind string, l *zap.Logger, send func(io.Reader) error) error {
	start := time.Now()
	size, err := store.Size(ctx, location)
	if err != nil {
		metrics.UploadFailed(kind)
		return err
	}
	rdr, err := store.Get(ctx, location)
	if err != nil {
		metrics.UploadFailed(kind)
		return err
	}
	defer func() {
		_ = rdr.Close()
	}()

	if size >= 0 {
		l.Info("uploading", zap.String("size", units.HumanSize(float64(size))))
	} else {
		l.Info("uploading")
	}
	if err = send(rdr); err != nil {
		metrics.UploadFailed(kind)
		return err
	}
	metrics.Uploaded(kind, start, size)
	return nil
}
