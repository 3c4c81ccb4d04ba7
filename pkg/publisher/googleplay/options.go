package googleplay

import (
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Option is a functor to pass optional parameters to the publisher client
type Option func(*client)

// Logger specifies a logger for this client
func Logger(logger *zap.Logger) Option {
	return func(c *client) {
		if logger != nil {
			c.l = logger
		}
	}
}

// ClientOptions adds options to the underlying API client, e.g. credentials or a custom endpoint
func ClientOptions(opts ...option.ClientOption) Option {
	return func(c *client) {
		c.clientOpts = append(c.clientOpts, opts...)
	}
}
