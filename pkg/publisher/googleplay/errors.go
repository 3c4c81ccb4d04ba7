package googleplay

import (
	"github.com/oneconcern/playpub/pkg/errors"
	"github.com/oneconcern/playpub/pkg/publisher/status"
	"google.golang.org/api/googleapi"
)

func apiErrors(err *googleapi.Error) error {
	switch err.Code {
	case 401:
		return status.ErrUnauthorized.Wrap(err)
	case 403:
		return status.ErrForbidden.Wrap(err)
	case 404:
		return status.ErrNotFound.Wrap(err)
	default:
		return status.ErrRemoteCall.Wrap(err)
	}
}

func toSentinelErrors(err error) error {
	// return sentinel errors defined by the status package
	if err == nil {
		return nil
	}
	var typedErr *googleapi.Error
	if errors.As(err, &typedErr) {
		return apiErrors(typedErr)
	}
	return status.ErrRemoteCall.Wrap(err)
}
