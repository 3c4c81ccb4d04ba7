// Copyright © 2018 One Concern

package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/docker/go-units"
	"github.com/fatih/color"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
)

var _ view.Exporter = &Summary{}

// Summary is an exporter which retains the last exported data for each view
type Summary struct {
	mu   sync.Mutex
	data map[string]*view.Data
}

// NewSummary builds an in-memory summary exporter
func NewSummary() *Summary {
	return &Summary{data: make(map[string]*view.Data)}
}

// ExportView retains the data for some view
func (s *Summary) ExportView(vd *view.Data) {
	if vd == nil || vd.View == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[vd.View.Name] = vd
}

// Print writes a human-readable summary of all retained views
func (s *Summary) Print(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		vd := s.data[name]
		for _, row := range vd.Rows {
			tags := make([]string, 0, len(row.Tags))
			for _, t := range row.Tags {
				tags = append(tags, t.Key.Name()+"="+t.Value)
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n",
				color.CyanString(name),
				color.HiBlackString(strings.Join(tags, ",")),
				formatRow(vd.View, row),
			); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatRow(v *view.View, row *view.Row) string {
	switch data := row.Data.(type) {
	case *view.CountData:
		return fmt.Sprintf("%d", data.Value)
	case *view.SumData:
		if v.Measure.Unit() == stats.UnitBytes {
			return units.BytesSize(data.Value)
		}
		return fmt.Sprintf("%g", data.Value)
	case *view.DistributionData:
		return fmt.Sprintf("count=%d mean=%.1fms max=%.1fms", data.Count, data.Mean, data.Max)
	case *view.LastValueData:
		return fmt.Sprintf("%g", data.Value)
	default:
		return ""
	}
}
