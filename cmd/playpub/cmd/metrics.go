// Copyright © 2018 One Concern

package cmd

import (
	"io"
	"os"

	"github.com/oneconcern/playpub/pkg/metrics"
)

var (
	metricsSummary = metrics.NewSummary()

	// used to patch over the metrics output during test
	metricsOut io.Writer = os.Stderr
)

func initMetrics(packageName string) {
	if !playpubFlags.root.metrics {
		return
	}
	if err := metrics.Init(metrics.WithExporter(metricsSummary), metrics.WithPackage(packageName)); err != nil {
		wrapFatalln("init metrics", err)
	}
}

// reportMetrics prints a summary of the metrics collected so far, when enabled
func reportMetrics() {
	if !playpubFlags.root.metrics {
		return
	}
	metrics.Flush()
	_ = metricsSummary.Print(metricsOut)
}
