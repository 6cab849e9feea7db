// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "io"

// Set groups metrics under a shared registry, the usual unit an
// application builds once at startup and passes to its components.
//
// This is a thin wrapper around Registry to provide a single place to
// create and export a collection of metrics.
type Set struct {
	reg *Registry
}

// NewSet creates a new metrics set backed by its own registry.
func NewSet() *Set {
	return &Set{reg: NewRegistry()}
}

// Registry returns the underlying registry.
func (s *Set) Registry() *Registry {
	return s.reg
}

func (s *Set) NewCounter(opts Opts) (*CounterVec, error)             { return s.reg.NewCounter(opts) }
func (s *Set) NewGauge(opts Opts) (*GaugeVec, error)                 { return s.reg.NewGauge(opts) }
func (s *Set) NewUnknown(opts Opts) (*UnknownVec, error)             { return s.reg.NewUnknown(opts) }
func (s *Set) NewInfo(opts Opts) (*InfoVec, error)                   { return s.reg.NewInfo(opts) }
func (s *Set) NewHistogram(opts HistogramOpts) (*HistogramVec, error) {
	return s.reg.NewHistogram(opts)
}
func (s *Set) NewGaugeHistogram(opts HistogramOpts) (*HistogramVec, error) {
	return s.reg.NewGaugeHistogram(opts)
}
func (s *Set) NewSummary(opts SummaryOpts) (*SummaryVec, error) { return s.reg.NewSummary(opts) }
func (s *Set) NewStateSet(opts StateSetOpts) (*StateSetVec, error) {
	return s.reg.NewStateSet(opts)
}

// WriteOpenMetrics writes the set's current snapshot to w in OpenMetrics
// format.
func (s *Set) WriteOpenMetrics(w io.Writer) error {
	snaps, _ := s.reg.Gather()
	return WriteOpenMetrics(w, snaps)
}

// WritePrometheus writes the set's current snapshot to w in the legacy
// Prometheus text format.
func (s *Set) WritePrometheus(w io.Writer) error {
	snaps, _ := s.reg.Gather()
	return WritePrometheus(w, snaps)
}
