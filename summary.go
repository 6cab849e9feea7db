// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"sync/atomic"
	"time"
)

// QuantileEstimator is the pluggable rank-estimation algorithm a Summary
// feeds observations into. The core package ships no implementation: the
// spec leaves quantile estimation an out-of-scope plug point and only
// requires deterministic serialization of whatever the estimator reports.
//
// Implementations must be safe for concurrent Observe/Quantiles calls.
type QuantileEstimator interface {
	Observe(v float64)
	Quantiles() []Quantile
}

// Summary is a count/sum accumulator with an optional pluggable quantile
// estimator and a lock-free exemplar slot, mirroring the atomic exemplar
// box every other cell kind carries (spec 3: Summary's "exemplar list").
type Summary struct {
	count     atomic.Uint64
	sum       atomicFloat
	exemplar  exemplarBox
	estimator QuantileEstimator
	createdMs int64
}

// NewSummary builds a Summary. estimator may be nil, in which case the
// summary reports count and sum only, with no quantile lines.
func NewSummary(estimator QuantileEstimator, now time.Time) *Summary {
	return &Summary{estimator: estimator, createdMs: snapshotTimeMillis(now)}
}

// Observe records v.
func (s *Summary) Observe(v float64) {
	s.count.Add(1)
	s.sum.add(v)
	if s.estimator != nil {
		s.estimator.Observe(v)
	}
}

// ObserveWithExemplar behaves like Observe, also sampling an exemplar for
// v. The sampled exemplar is attached to the quantile, _count and _sum
// lines alike at collect time (spec 4.G.1 allows all three).
func (s *Summary) ObserveWithExemplar(v float64, sampler Sampler, now time.Time) {
	s.Observe(v)
	s.exemplar.tryUpdate(sampler, v, now)
}

func (s *Summary) collect(labels Labels) Point {
	ex := s.exemplar.load()
	count := s.count.Load()
	sum := s.sum.load()
	var qs []Quantile
	if s.estimator != nil {
		raw := s.estimator.Quantiles()
		qs = make([]Quantile, len(raw))
		for i, q := range raw {
			q.Exemplar = ex
			qs[i] = q
		}
	}
	return Point{
		Labels:              labels,
		Count:               count,
		HasCount:            true,
		Sum:                 sum,
		HasSum:              true,
		Quantiles:           qs,
		Exemplar:            ex,
		HasCreatedTimestamp: true,
		CreatedTimestampMs:  s.createdMs,
	}
}
