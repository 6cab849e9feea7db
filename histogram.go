// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"math"
	"sort"
	"sync/atomic"
	"time"
)

// Histogram is a cumulative-bucket distribution cell. Bounds may be
// supplied in any order; the constructor sorts them ascending and removes
// duplicates. The +Inf bucket is implicit and always equals the total
// observation count.
//
// Grounded on high_perf_metrics.go's VictoriaHistogram bucket search, and
// on client_golang's histogram.go for the "per-interval counters, prefix
// summed at collect time" storage strategy, which keeps Observe O(log n)
// for the bucket search and O(1) for the atomic increment, deferring the
// O(n) cumulative sum to snapshot time where it belongs.
type Histogram struct {
	bounds    []float64        // ascending, finite upper bounds
	counts    []atomic.Uint64  // counts[i] = observations in (bounds[i-1], bounds[i]]
	exemplars []exemplarBox    // one per bucket, including the implicit +Inf bucket
	sum       atomicFloat
	total     atomic.Uint64
	createdMs int64
	isGauge   bool // true renders as a GaugeHistogram (spec 3, 4.C)
}

// NewHistogram builds a Histogram from the given bounds, sorted ascending
// with duplicates and any +Inf bound removed. A NaN bound is an error.
func NewHistogram(bounds []float64, now time.Time) (*Histogram, error) {
	return newHistogram(bounds, false, now)
}

// NewGaugeHistogram builds a Histogram that collects as a GaugeHistogram:
// its buckets may move in either direction between snapshots and it has no
// created-timestamp series.
func NewGaugeHistogram(bounds []float64, now time.Time) (*Histogram, error) {
	return newHistogram(bounds, true, now)
}

func newHistogram(bounds []float64, isGauge bool, now time.Time) (*Histogram, error) {
	if len(bounds) == 0 {
		return nil, newError(MissingRequired, "histogram requires at least one bucket bound")
	}
	for _, b := range bounds {
		if math.IsNaN(b) {
			return nil, newError(InvalidAmount, "histogram bucket bound must not be NaN")
		}
	}
	sorted := append([]float64(nil), bounds...)
	sort.Float64s(sorted)
	deduped := sorted[:0]
	for i, b := range sorted {
		if math.IsInf(b, 1) {
			continue // the +Inf bucket is always appended implicitly
		}
		if i == 0 || b != sorted[i-1] {
			deduped = append(deduped, b)
		}
	}
	h := &Histogram{
		bounds:    deduped,
		counts:    make([]atomic.Uint64, len(deduped)+1),
		exemplars: make([]exemplarBox, len(deduped)+1),
		isGauge:   isGauge,
		createdMs: snapshotTimeMillis(now),
	}
	return h, nil
}

// bucketIndex returns the index into counts/exemplars that v falls into:
// the first bucket whose bound is >= v, or len(bounds) for the +Inf
// bucket.
func (h *Histogram) bucketIndex(v float64) int {
	return sort.Search(len(h.bounds), func(i int) bool { return v <= h.bounds[i] })
}

// Observe records v.
func (h *Histogram) Observe(v float64) {
	h.counts[h.bucketIndex(v)].Add(1)
	h.sum.add(v)
	h.total.Add(1)
}

// ObserveWithExemplar behaves like Observe, and samples an exemplar into
// the bucket v landed in.
func (h *Histogram) ObserveWithExemplar(v float64, sampler Sampler, now time.Time) {
	idx := h.bucketIndex(v)
	h.counts[idx].Add(1)
	h.sum.add(v)
	h.total.Add(1)
	h.exemplars[idx].tryUpdate(sampler, v, now)
}

// collect reads per-interval counters and prefix-sums them into cumulative
// bucket counts, reading each bucket's exemplar before its cumulative count
// (snapshot ordering invariant).
func (h *Histogram) collect(labels Labels) Point {
	buckets := make([]Bucket, len(h.bounds), len(h.bounds)+1)
	var cumulative uint64
	for i := range h.bounds {
		ex := h.exemplars[i].load()
		cumulative += h.counts[i].Load()
		buckets[i] = Bucket{UpperBound: h.bounds[i], Count: cumulative, Exemplar: ex}
	}
	infEx := h.exemplars[len(h.bounds)].load()
	cumulative += h.counts[len(h.bounds)].Load()
	buckets = append(buckets, Bucket{UpperBound: posInf, Count: cumulative, Exemplar: infEx})

	p := Point{
		Labels:   labels,
		Buckets:  buckets,
		Sum:      h.sum.load(),
		HasSum:   true,
		Count:    cumulative,
		HasCount: true,
	}
	if !h.isGauge {
		p.HasCreatedTimestamp = true
		p.CreatedTimestampMs = h.createdMs
	}
	return p
}

var posInf = math.Inf(1)
