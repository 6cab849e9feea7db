// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"sync/atomic"
	"time"
)

// maxExemplarChars is the OpenMetrics limit on the combined UTF-8 character
// count of an exemplar's label names and values.
const maxExemplarChars = 128

// Exemplar is a single sampled observation attached to a metric cell or
// histogram bucket, used for trace correlation. It is immutable once
// constructed.
type Exemplar struct {
	Value           float64
	Labels          Labels
	HasTimestamp    bool
	TimestampMillis int64
	TraceID         string
	SpanID          string
}

// NewExemplar validates and builds an Exemplar. It enforces the combined
// 128-character limit on label names+values.
func NewExemplar(value float64, labels Labels, timestampMillis int64, hasTimestamp bool, traceID, spanID string) (Exemplar, error) {
	if labels.combinedCharCount() > maxExemplarChars {
		return Exemplar{}, newError(InvalidLabel, "exemplar labels exceed 128 combined characters")
	}
	if err := ValidateLabels(labels); err != nil {
		return Exemplar{}, err
	}
	return Exemplar{
		Value:           value,
		Labels:          labels,
		HasTimestamp:    hasTimestamp,
		TimestampMillis: timestampMillis,
		TraceID:         traceID,
		SpanID:          spanID,
	}, nil
}

// exemplarBox holds a lock-free, CAS-updated pointer to the currently
// installed exemplar for one metric cell or histogram bucket (spec 4.E,
// 9: "single-word atomic pointer... with CAS").
//
// Grounded on the real client_golang Counter's `exemplar atomic.Value`
// field and its "read exemplar first, then read the numeric value" snapshot
// ordering, and on the CAS-retry idiom used throughout
// high_perf_metrics.go's VictoriaGauge for lock-free float updates.
type exemplarBox struct {
	p atomic.Pointer[Exemplar]
}

// load returns the currently installed exemplar, or nil if none has ever
// been installed.
func (b *exemplarBox) load() *Exemplar {
	return b.p.Load()
}

// tryUpdate runs the CAS loop described in spec 4.C: it repeatedly loads
// the current exemplar, asks the sampler whether to replace it, and
// attempts to install the sampler's answer. It exits as soon as either the
// CAS succeeds or the sampler declines to replace — it never blocks and
// never retries the sampler's decision once accepted.
func (b *exemplarBox) tryUpdate(sampler Sampler, amount float64, now time.Time) {
	if sampler == nil {
		return
	}
	for {
		prev := b.p.Load()
		next := sampler.Sample(amount, prev, now)
		if next == nil {
			return
		}
		if b.p.CompareAndSwap(prev, next) {
			return
		}
		// Another writer raced us; retry with the fresh value.
	}
}

// forceUpdate installs e unconditionally, without consulting a sampler. The
// cells' *WithExemplar methods do not use it; they go through tryUpdate.
func (b *exemplarBox) forceUpdate(e Exemplar) {
	b.p.Store(&e)
}
