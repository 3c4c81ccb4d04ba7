package sthree

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/oneconcern/playpub/pkg/storage"
)

// Option is a functor to pass optional parameters to the s3 store
type Option func(*s3FS)

// Bucket defines the bucket to read from
func Bucket(bucket string) Option {
	return func(fs *s3FS) {
		fs.bucket = bucket
	}
}

// AWSConfig defines the configuration for the AWS session
func AWSConfig(cfg *aws.Config) Option {
	return func(fs *s3FS) {
		fs.awsConfig = cfg
	}
}

// Client injects a preconfigured S3 client
func Client(client s3iface.S3API) Option {
	return func(fs *s3FS) {
		fs.s3 = client
	}
}

// New builds a read-only S3 store
func New(option Option, options ...Option) (storage.Store, error) {
	fs := new(s3FS)
	option(fs)
	for _, apply := range options {
		apply(fs)
	}

	if fs.s3 == nil {
		cfg := fs.awsConfig
		if cfg == nil {
			cfg = aws.NewConfig()
		}
		sess, err := session.NewSessionWithOptions(session.Options{
			Config:            *cfg,
			SharedConfigState: session.SharedConfigEnable,
		})
		if err != nil {
			return nil, err
		}
		fs.s3 = s3.New(sess)
	}
	return fs, nil
}

type s3FS struct {
	bucket    string
	awsConfig *aws.Config
	s3        s3iface.S3API
}

func (s *s3FS) head(ctx context.Context, key string) (*s3.HeadObjectOutput, error) {
	return s.s3.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
}

func (s *s3FS) Has(ctx context.Context, key string) (bool, error) {
	_, err := s.head(ctx, key)
	if err != nil {
		if rerr, ok := err.(awserr.RequestFailure); ok && rerr.StatusCode() == 404 {
			return false, nil
		}
		return false, toSentinelErrors(err)
	}
	return true, nil
}

func (s *s3FS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.s3.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	return obj.Body, nil
}

func (s *s3FS) Size(ctx context.Context, key string) (int64, error) {
	out, err := s.head(ctx, key)
	if err != nil {
		return 0, toSentinelErrors(err)
	}
	return aws.Int64Value(out.ContentLength), nil
}

func (s *s3FS) String() string {
	return "s3@" + s.bucket
}
