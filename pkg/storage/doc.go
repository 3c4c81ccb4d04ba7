// Copyright © 2018 One Concern

// Package storage provides interface to read artifacts, images and credentials
// from backend storage objects.
//
// This package supports the following backends:
//   - GCS (Google), with locations like gs://bucket/path/to/app.aab
//   - S3 (AWS), with locations like s3://bucket/path/to/app.aab
//   - HTTP(S) downloads, with locations like https://host/path/to/key.json
//   - local file system
package storage
