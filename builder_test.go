// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "testing"

func TestHistogramVecWithLabelValues(t *testing.T) {
	r := NewRegistry()
	vec, err := r.NewHistogram(HistogramOpts{
		Opts:    Opts{Name: "latency_seconds", VariableLabels: []string{"route"}},
		Buckets: []float64{0.1, 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, err := vec.WithLabelValues("/a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h.Observe(0.05)
	p := h.collect(EmptyLabels)
	if p.Buckets[0].Count != 1 {
		t.Fatalf("expected 1 observation in the first bucket, got %+v", p.Buckets)
	}
}

func TestGaugeHistogramVecSetsIsGauge(t *testing.T) {
	r := NewRegistry()
	vec, err := r.NewGaugeHistogram(HistogramOpts{Opts: Opts{Name: "queue_depth"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, err := vec.WithLabelValues()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h.Observe(1)
	if p := h.collect(EmptyLabels); p.HasCreatedTimestamp {
		t.Fatalf("gauge histogram cells must not carry a created timestamp")
	}
}

func TestSummaryVecWithLabelValues(t *testing.T) {
	r := NewRegistry()
	vec, err := r.NewSummary(SummaryOpts{Opts: Opts{Name: "response_size", VariableLabels: []string{"route"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := vec.WithLabelValues("/a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Observe(100)
	p := s.collect(EmptyLabels)
	if p.Count != 1 || p.Sum != 100 {
		t.Fatalf("got count=%d sum=%v, want count=1 sum=100", p.Count, p.Sum)
	}
}

func TestStateSetVecWithLabelValues(t *testing.T) {
	r := NewRegistry()
	vec, err := r.NewStateSet(StateSetOpts{Opts: Opts{Name: "feature_state"}, States: []string{"on", "off"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := vec.WithLabelValues()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Set("on", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestZipLabelsRejectsConstLabelCollision(t *testing.T) {
	_, err := zipLabels([]string{"route"}, NewLabels("route", "fixed"), []string{"/a"})
	if err == nil {
		t.Fatalf("expected error when variable label name collides with a const label")
	}
}

func TestZipLabelsRejectsLengthMismatch(t *testing.T) {
	_, err := zipLabels([]string{"route", "method"}, EmptyLabels, []string{"/a"})
	if err == nil {
		t.Fatalf("expected error for mismatched value count")
	}
}
