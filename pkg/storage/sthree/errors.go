package sthree

import (
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/oneconcern/playpub/pkg/errors"
	"github.com/oneconcern/playpub/pkg/storage/status"
)

// missingObjectCodes are returned with a 404 when the bucket or key does not exist.
// HEAD requests carry no body, hence the generic "NotFound" code.
var missingObjectCodes = map[string]bool{
	"NoSuchKey":    true,
	"NoSuchBucket": true,
	"NotFound":     true,
}

// toSentinelErrors qualifies S3 request failures with the storage status errors
func toSentinelErrors(err error) error {
	if err == nil {
		return nil
	}
	var failure awserr.RequestFailure
	if !errors.As(err, &failure) {
		return err
	}

	switch code := failure.StatusCode(); {
	case code == 404 && missingObjectCodes[failure.Code()]:
		return status.ErrNotExists.Wrap(err)
	case code == 404:
		return status.ErrNotFound.Wrap(err)
	case code == 401:
		return status.ErrUnauthorized.Wrap(err)
	case code == 403 || failure.Code() == "AccessDenied":
		return status.ErrForbidden.Wrap(err)
	case code == 400 && failure.Code() == "InvalidBucketName":
		return status.ErrInvalidResource.Wrap(err)
	default:
		return status.ErrStorageAPI.Wrap(err)
	}
}
