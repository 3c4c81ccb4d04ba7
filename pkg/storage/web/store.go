// Package web implements a read-only store over plain HTTP(S) downloads.
//
// Keys are URL paths relative to a base URL, e.g. a credentials file served by some secret server.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/oneconcern/playpub/pkg/errors"
	"github.com/oneconcern/playpub/pkg/storage"
	"github.com/oneconcern/playpub/pkg/storage/status"
)

// Option is a functor to pass optional parameters to the web store
type Option func(*web)

// HTTPClient injects a custom HTTP client
func HTTPClient(client *http.Client) Option {
	return func(w *web) {
		if client != nil {
			w.client = client
		}
	}
}

// New builds a store for objects located under baseURL (e.g. https://host)
func New(baseURL string, opts ...Option) storage.Store {
	w := &web{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  http.DefaultClient,
	}
	for _, apply := range opts {
		apply(w)
	}
	return w
}

type web struct {
	baseURL string
	client  *http.Client
}

func (w *web) url(key string) string {
	return w.baseURL + "/" + strings.TrimPrefix(key, "/")
}

func (w *web) send(ctx context.Context, method, key string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, w.url(key), nil)
	if err != nil {
		return nil, status.ErrInvalidResource.Wrap(err)
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return nil, status.ErrStorageAPI.Wrap(err)
	}
	return resp, nil
}

func (w *web) do(ctx context.Context, method, key string) (*http.Response, error) {
	resp, err := w.send(ctx, method, key)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		_ = resp.Body.Close()
		return nil, statusErrors(resp.StatusCode, w.url(key))
	}
	return resp, nil
}

func statusErrors(code int, url string) error {
	cause := fmt.Errorf("%s: %s", url, http.StatusText(code))
	switch code {
	case http.StatusUnauthorized:
		return status.ErrUnauthorized.Wrap(cause)
	case http.StatusForbidden:
		return status.ErrForbidden.Wrap(cause)
	case http.StatusNotFound:
		return status.ErrNotExists.Wrap(cause)
	default:
		return status.ErrStorageAPI.Wrap(cause)
	}
}

func (w *web) Has(ctx context.Context, key string) (bool, error) {
	resp, err := w.do(ctx, http.MethodHead, key)
	if err != nil {
		if errors.Is(err, status.ErrNotExists) {
			return false, nil
		}
		return false, err
	}
	_ = resp.Body.Close()
	return true, nil
}

func (w *web) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	resp, err := w.do(ctx, http.MethodGet, key)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Size is the advertised content length, or -1 when the server does not tell.
//
// Presigned URLs are only valid for GET: a HEAD request refused by the server
// yields an unknown size, and errors are left to Get.
func (w *web) Size(ctx context.Context, key string) (int64, error) {
	resp, err := w.send(ctx, http.MethodHead, key)
	if err != nil {
		return 0, err
	}
	_ = resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusForbidden, http.StatusMethodNotAllowed, http.StatusNotImplemented:
		return -1, nil
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return 0, statusErrors(resp.StatusCode, w.url(key))
	}
	return resp.ContentLength, nil
}

func (w *web) String() string {
	return w.baseURL
}
