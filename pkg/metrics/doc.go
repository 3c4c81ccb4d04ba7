// Copyright © 2018 One Concern

// Package metrics collects upload and edit transaction metrics with opencensus.
//
// Measures are recorded at all times: they are only aggregated once Init has registered
// the views. The Summary exporter keeps the aggregated data in memory and prints it
// at the end of a command.
package metrics
