// Copyright © 2018 One Concern

package metrics

import (
	"context"
	"sync"
	"time"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	// KeyKind tags uploads with the kind of file (bundle, package, expansion, image)
	KeyKind = tag.MustNewKey("kind")

	// KeyOutcome tags edit transactions with their outcome
	KeyOutcome = tag.MustNewKey("outcome")

	// KeyPackage tags all measures with the package name of the application, when set
	KeyPackage = tag.MustNewKey("package")
)

var (
	// UploadCount counts successful uploads
	UploadCount = stats.Int64("playpub/uploads", "number of successful uploads", stats.UnitDimensionless)

	// UploadFailures counts failed uploads
	UploadFailures = stats.Int64("playpub/upload_failures", "number of failed uploads", stats.UnitDimensionless)

	// UploadSize measures the size of uploaded files
	UploadSize = stats.Int64("playpub/upload_size", "size of uploaded files", stats.UnitBytes)

	// UploadTiming measures the response time of uploads
	UploadTiming = stats.Float64("playpub/upload_timing", "upload response time in milliseconds", stats.UnitMilliseconds)

	// Transactions counts edit transactions by outcome
	Transactions = stats.Int64("playpub/transactions", "number of edit transactions", stats.UnitDimensionless)
)

// Views aggregate the measures above
var Views = []*view.View{
	{
		Name:        "playpub/uploads",
		Description: "successful uploads",
		Measure:     UploadCount,
		TagKeys:     []tag.Key{KeyPackage, KeyKind},
		Aggregation: view.Count(),
	},
	{
		Name:        "playpub/upload_failures",
		Description: "failed uploads",
		Measure:     UploadFailures,
		TagKeys:     []tag.Key{KeyPackage, KeyKind},
		Aggregation: view.Count(),
	},
	{
		Name:        "playpub/upload_bytes",
		Description: "uploaded bytes",
		Measure:     UploadSize,
		TagKeys:     []tag.Key{KeyPackage, KeyKind},
		Aggregation: view.Sum(),
	},
	{
		Name:        "playpub/upload_timing",
		Description: "upload latency",
		Measure:     UploadTiming,
		TagKeys:     []tag.Key{KeyPackage, KeyKind},
		Aggregation: view.Distribution(100, 500, 1000, 5000, 10000, 30000, 60000, 300000),
	},
	{
		Name:        "playpub/transactions",
		Description: "edit transactions",
		Measure:     Transactions,
		TagKeys:     []tag.Key{KeyPackage, KeyOutcome},
		Aggregation: view.Count(),
	},
}

var (
	// global settings for metrics
	mp       = defaultSettings()
	initOnce sync.Once
)

type settings struct {
	packageName string
	exporter    view.Exporter
}

func defaultSettings() *settings {
	return &settings{}
}

// Init registers views and the exporter, if any.
//
// Init may be called multiple times: only the first time matters.
func Init(opts ...Option) error {
	var err error
	initOnce.Do(func() {
		for _, apply := range opts {
			apply(mp)
		}
		if err = view.Register(Views...); err != nil {
			return
		}
		if mp.exporter != nil {
			view.RegisterExporter(mp.exporter)
		}
	})
	return err
}

// Flush collects all data for registered views and exports them
func Flush() {
	if mp.exporter == nil {
		return
	}
	for _, v := range Views {
		rows, err := view.RetrieveData(v.Name)
		if err != nil {
			continue // ignore errors when pushing metrics
		}
		now := time.Now()
		mp.exporter.ExportView(&view.Data{
			View:  v,
			Start: now,
			End:   now,
			Rows:  rows,
		})
	}
}

func record(key tag.Key, value string, measurements ...stats.Measurement) {
	mutators := []tag.Mutator{tag.Upsert(key, value)}
	if mp.packageName != "" {
		mutators = append(mutators, tag.Upsert(KeyPackage, mp.packageName))
	}
	_ = stats.RecordWithTags(context.Background(), mutators, measurements...)
}

// Uploaded records a successful upload
func Uploaded(kind string, start time.Time, size int64) {
	ms := float64(time.Since(start).Nanoseconds()) / 1e6
	measurements := []stats.Measurement{UploadCount.M(1), UploadTiming.M(ms)}
	if size > 0 {
		measurements = append(measurements, UploadSize.M(size))
	}
	record(KeyKind, kind, measurements...)
}

// UploadFailed records a failed upload
func UploadFailed(kind string) {
	record(KeyKind, kind, UploadFailures.M(1))
}

// Transaction records the outcome of an edit transaction
func Transaction(outcome string) {
	record(KeyOutcome, outcome, Transactions.M(1))
}
