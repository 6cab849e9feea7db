// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"testing"
	"time"
)

func TestSummaryObserveWithNilEstimator(t *testing.T) {
	s := NewSummary(nil, time.Now())
	s.Observe(1)
	s.Observe(2)
	s.Observe(3)
	p := s.collect(EmptyLabels)
	if p.Count != 3 {
		t.Fatalf("expected count 3, got %d", p.Count)
	}
	if p.Sum != 6 {
		t.Fatalf("expected sum 6, got %v", p.Sum)
	}
	if p.Quantiles != nil {
		t.Fatalf("expected no quantiles without an estimator, got %+v", p.Quantiles)
	}
	if !p.HasCreatedTimestamp {
		t.Fatalf("expected created timestamp to be set")
	}
}

type fixedEstimator struct {
	quantiles []Quantile
}

func (f *fixedEstimator) Observe(float64) {}
func (f *fixedEstimator) Quantiles() []Quantile {
	return f.quantiles
}

func TestSummaryObserveWithEstimator(t *testing.T) {
	est := &fixedEstimator{quantiles: []Quantile{{Quantile: 0.5, Value: 2}}}
	s := NewSummary(est, time.Now())
	s.Observe(2)
	p := s.collect(EmptyLabels)
	if len(p.Quantiles) != 1 || p.Quantiles[0].Value != 2 {
		t.Fatalf("expected quantile value 2, got %+v", p.Quantiles)
	}
}

func TestSummaryObserveWithExemplarAttachesToQuantilesAndPoint(t *testing.T) {
	est := &fixedEstimator{quantiles: []Quantile{{Quantile: 0.5, Value: 2}, {Quantile: 0.9, Value: 4}}}
	s := NewSummary(est, time.Now())
	sampler := NewAgeSampler(time.Hour, func(amount float64, now time.Time) Exemplar {
		return Exemplar{Value: amount, HasTimestamp: true, TimestampMillis: now.UnixMilli()}
	})
	s.ObserveWithExemplar(4, sampler, time.Now())
	p := s.collect(EmptyLabels)
	if p.Exemplar == nil || p.Exemplar.Value != 4 {
		t.Fatalf("expected point exemplar with value 4, got %+v", p.Exemplar)
	}
	for _, q := range p.Quantiles {
		if q.Exemplar == nil || q.Exemplar.Value != 4 {
			t.Fatalf("expected every quantile to carry the same exemplar, got %+v", q)
		}
	}
}
