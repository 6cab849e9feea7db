// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "time"

// Bucket is one cumulative histogram/gaugehistogram bucket observed at
// snapshot time: the count of observations <= UpperBound, plus an exemplar
// if one has been sampled into that bucket.
type Bucket struct {
	UpperBound float64
	Count      uint64
	Exemplar   *Exemplar
}

// Quantile is one summary rank observed at snapshot time.
type Quantile struct {
	Quantile float64
	Value    float64
	Exemplar *Exemplar
}

// StateValue is one member of a state set and whether it is enabled.
type StateValue struct {
	Name    string
	Enabled bool
}

// Point is one exposed data record: the label combination that produced
// it and the kind-specific values read from the live cell at snapshot
// time. The metric's metadata lives on the enclosing MetricSnapshot.
//
// Only the fields relevant to Metadata.Type are populated; the others are
// left at their zero value. This mirrors the teacher's Victoria* family,
// generalized from "one struct per metric kind" into "one tagged struct",
// matching the spec's "tagged union, not a type hierarchy" decision.
type Point struct {
	Labels Labels

	// Counter, Gauge, Info.
	Value    float64
	Exemplar *Exemplar

	// Histogram, GaugeHistogram, Summary.
	Buckets  []Bucket
	Sum      float64
	HasSum   bool
	Count    uint64
	HasCount bool

	// Summary.
	Quantiles []Quantile

	// StateSet.
	States []StateValue

	// CreatedTimestamp is set by Counter, Histogram and Summary cells
	// (spec's "_created" series). GaugeHistogram cells do not set it, and
	// neither writer emits a _created line for a gauge histogram.
	HasCreatedTimestamp bool
	CreatedTimestampMs  int64

	// ScrapeTimestamp is optional and normally left unset by in-process
	// cells (the scraper, not the producer, usually owns the sample
	// timestamp); snapshot producers that do know it (e.g. a federation
	// bridge) may set it.
	HasScrapeTimestamp bool
	ScrapeTimestampMs  int64
}

// isEmptySummaryOrHistogram reports whether p, as a summary or histogram
// record, carries no sample-worthy data: no buckets, no count, no sum and
// no quantiles. Value and States are not looked at. Used by the writers to
// implement the "data record with no content produces zero sample lines"
// omission rule (spec 4.G).
func (p Point) isEmptySummaryOrHistogram() bool {
	return len(p.Buckets) == 0 && !p.HasCount && !p.HasSum && len(p.Quantiles) == 0
}

// MetricSnapshot is the exposition-ready snapshot of one registered metric:
// its metadata plus one Point per distinct label combination seen.
type MetricSnapshot struct {
	Metadata MetricMetadata
	Points   []Point
}

// MetricSnapshots is a sequence of metric family snapshots, the unit both
// writers consume (spec section 4.F/4.G).
type MetricSnapshots []MetricSnapshot

// snapshotTimeMillis is a small helper so cell Collect methods share one
// epoch conversion.
func snapshotTimeMillis(t time.Time) int64 {
	return t.UnixMilli()
}
