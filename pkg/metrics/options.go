// Copyright © 2018 One Concern

package metrics

import "go.opencensus.io/stats/view"

// Option defines some options to the metrics initialization
type Option func(*settings)

// WithPackage tags all measures recorded after Init with the package name of the application
func WithPackage(name string) Option {
	return func(m *settings) {
		m.packageName = name
	}
}

// WithExporter configures the exporter to convey metrics to some backend collector,
// such as the Summary printed by the CLI
func WithExporter(exporter view.Exporter) Option {
	return func(m *settings) {
		if exporter != nil {
			m.exporter = exporter
		}
	}
}
