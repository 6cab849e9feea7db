// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "time"

// Opts is the plain configuration struct shared by every metric builder:
// one finalize step (the registry's New* method) runs validation, no
// fluent chain (spec 9: "plain configuration structs with an explicit
// finalize step... omit fluent chains").
type Opts struct {
	Name           string
	Help           string
	Unit           string
	ConstLabels    Labels
	VariableLabels []string
}

func (o Opts) metadata(t MetricType) MetricMetadata {
	return MetricMetadata{Name: o.Name, Help: o.Help, Unit: o.Unit, Type: t, ConstLabels: o.ConstLabels}
}

// validate runs every independent check a builder can make ahead of
// registration — the metric name, the const labels, and each variable
// label name (including collisions against the const labels and against
// each other) — through an Errs accumulator rather than bailing out on
// whichever check happens to run first.
func (o Opts) validate() error {
	var errs Errs
	errs.Add(ValidateMetricName(o.Name))
	errs.Add(ValidateLabels(o.ConstLabels))
	seen := make(map[string]struct{}, len(o.VariableLabels))
	for _, name := range o.VariableLabels {
		errs.Add(ValidateUserLabelName(name))
		if _, ok := seen[name]; ok {
			errs.Add(newError(InvalidLabel, "duplicate variable label name "+strconvQuote(name)))
		}
		seen[name] = struct{}{}
		if _, ok := o.ConstLabels.Get(name); ok {
			errs.Add(newError(InvalidLabel, "variable label "+strconvQuote(name)+" collides with a const label"))
		}
	}
	return errs.Err
}

// HistogramOpts extends Opts with classic-histogram bucket bounds.
type HistogramOpts struct {
	Opts
	Buckets []float64
}

// SummaryOpts extends Opts with a quantile estimator factory, invoked once
// per distinct label combination so each gets its own estimator state.
type SummaryOpts struct {
	Opts
	NewEstimator func() QuantileEstimator
}

// StateSetOpts extends Opts with the fixed list of state names every cell
// of this metric will carry.
type StateSetOpts struct {
	Opts
	States []string
}

// zipLabels pairs variableLabels with the positional values a
// WithLabelValues caller supplied and merges the result with constLabels,
// failing on a length mismatch or a name collision between the two sets.
func zipLabels(variableLabels []string, constLabels Labels, values []string) (Labels, error) {
	if len(values) != len(variableLabels) {
		return Labels{}, newError(InvalidLabel, "expected values for all declared variable labels")
	}
	if len(values) == 0 {
		return constLabels, nil
	}
	pairs := make([]LabelPair, len(values))
	for i, name := range variableLabels {
		pairs[i] = LabelPair{Name: name, Value: values[i]}
	}
	return constLabels.Merge(FromPairs(pairs))
}

// CounterVec is a counter metric family, one Counter cell per distinct
// label combination.
type CounterVec struct {
	f              *family
	variableLabels []string
	constLabels    Labels
	clk            clock
}

// NewCounter registers a new counter family.
func (r *Registry) NewCounter(opts Opts) (*CounterVec, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	f, err := r.register(opts.metadata(TypeCounter))
	if err != nil {
		return nil, err
	}
	return &CounterVec{f: f, variableLabels: opts.VariableLabels, constLabels: opts.ConstLabels, clk: realClock{}}, nil
}

// WithLabelValues returns the Counter cell for the given values, in the
// same order as Opts.VariableLabels, creating it on first use.
func (v *CounterVec) WithLabelValues(values ...string) (*Counter, error) {
	labels, err := zipLabels(v.variableLabels, v.constLabels, values)
	if err != nil {
		return nil, err
	}
	return v.With(labels)
}

// With returns the Counter cell for labels, creating it on first use.
func (v *CounterVec) With(labels Labels) (*Counter, error) {
	now := v.clk.now()
	return getOrCreate(v.f, labels, func() *Counter { return newCounter(now) })
}

// GaugeVec is a gauge metric family.
type GaugeVec struct {
	f              *family
	variableLabels []string
	constLabels    Labels
}

func (r *Registry) NewGauge(opts Opts) (*GaugeVec, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	f, err := r.register(opts.metadata(TypeGauge))
	if err != nil {
		return nil, err
	}
	return &GaugeVec{f: f, variableLabels: opts.VariableLabels, constLabels: opts.ConstLabels}, nil
}

func (v *GaugeVec) WithLabelValues(values ...string) (*Gauge, error) {
	labels, err := zipLabels(v.variableLabels, v.constLabels, values)
	if err != nil {
		return nil, err
	}
	return v.With(labels)
}

func (v *GaugeVec) With(labels Labels) (*Gauge, error) {
	return getOrCreate(v.f, labels, func() *Gauge { return &Gauge{} })
}

// UnknownVec is an untyped metric family.
type UnknownVec struct {
	f              *family
	variableLabels []string
	constLabels    Labels
}

func (r *Registry) NewUnknown(opts Opts) (*UnknownVec, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	f, err := r.register(opts.metadata(TypeUnknown))
	if err != nil {
		return nil, err
	}
	return &UnknownVec{f: f, variableLabels: opts.VariableLabels, constLabels: opts.ConstLabels}, nil
}

func (v *UnknownVec) WithLabelValues(values ...string) (*Unknown, error) {
	labels, err := zipLabels(v.variableLabels, v.constLabels, values)
	if err != nil {
		return nil, err
	}
	return v.With(labels)
}

func (v *UnknownVec) With(labels Labels) (*Unknown, error) {
	return getOrCreate(v.f, labels, func() *Unknown { return &Unknown{} })
}

// InfoVec is an info metric family.
type InfoVec struct {
	f              *family
	variableLabels []string
	constLabels    Labels
}

func (r *Registry) NewInfo(opts Opts) (*InfoVec, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	f, err := r.register(opts.metadata(TypeInfo))
	if err != nil {
		return nil, err
	}
	return &InfoVec{f: f, variableLabels: opts.VariableLabels, constLabels: opts.ConstLabels}, nil
}

func (v *InfoVec) WithLabelValues(values ...string) (Info, error) {
	labels, err := zipLabels(v.variableLabels, v.constLabels, values)
	if err != nil {
		return Info{}, err
	}
	return v.With(labels)
}

func (v *InfoVec) With(labels Labels) (Info, error) {
	return getOrCreate(v.f, labels, func() Info { return Info{} })
}

// HistogramVec is a classic-histogram or gauge-histogram metric family.
type HistogramVec struct {
	f              *family
	variableLabels []string
	constLabels    Labels
	bounds         []float64
	isGauge        bool
	clk            clock
}

// NewHistogram registers a classic-histogram family. Bucket bounds are
// validated and deduplicated by the Histogram constructor on first use of
// each label combination, so every cell sees the same normalized bounds.
func (r *Registry) NewHistogram(opts HistogramOpts) (*HistogramVec, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(opts.Buckets) == 0 {
		opts.Buckets = DefBuckets
	}
	f, err := r.register(opts.metadata(TypeHistogram))
	if err != nil {
		return nil, err
	}
	return &HistogramVec{f: f, variableLabels: opts.VariableLabels, constLabels: opts.ConstLabels, bounds: opts.Buckets, clk: realClock{}}, nil
}

// NewGaugeHistogram registers a gauge-histogram family.
func (r *Registry) NewGaugeHistogram(opts HistogramOpts) (*HistogramVec, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(opts.Buckets) == 0 {
		opts.Buckets = DefBuckets
	}
	f, err := r.register(opts.metadata(TypeGaugeHistogram))
	if err != nil {
		return nil, err
	}
	return &HistogramVec{f: f, variableLabels: opts.VariableLabels, constLabels: opts.ConstLabels, bounds: opts.Buckets, isGauge: true, clk: realClock{}}, nil
}

func (v *HistogramVec) WithLabelValues(values ...string) (*Histogram, error) {
	labels, err := zipLabels(v.variableLabels, v.constLabels, values)
	if err != nil {
		return nil, err
	}
	return v.With(labels)
}

func (v *HistogramVec) With(labels Labels) (*Histogram, error) {
	now := v.clk.now()
	var buildErr error
	h, err := getOrCreate(v.f, labels, func() *Histogram {
		var h *Histogram
		if v.isGauge {
			h, buildErr = NewGaugeHistogram(v.bounds, now)
		} else {
			h, buildErr = NewHistogram(v.bounds, now)
		}
		return h
	})
	if err != nil {
		return nil, err
	}
	if buildErr != nil {
		return nil, buildErr
	}
	return h, nil
}

// SummaryVec is a summary metric family.
type SummaryVec struct {
	f              *family
	variableLabels []string
	constLabels    Labels
	newEstimator   func() QuantileEstimator
	clk            clock
}

func (r *Registry) NewSummary(opts SummaryOpts) (*SummaryVec, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	f, err := r.register(opts.metadata(TypeSummary))
	if err != nil {
		return nil, err
	}
	return &SummaryVec{f: f, variableLabels: opts.VariableLabels, constLabels: opts.ConstLabels, newEstimator: opts.NewEstimator, clk: realClock{}}, nil
}

func (v *SummaryVec) WithLabelValues(values ...string) (*Summary, error) {
	labels, err := zipLabels(v.variableLabels, v.constLabels, values)
	if err != nil {
		return nil, err
	}
	return v.With(labels)
}

func (v *SummaryVec) With(labels Labels) (*Summary, error) {
	now := v.clk.now()
	return getOrCreate(v.f, labels, func() *Summary {
		var est QuantileEstimator
		if v.newEstimator != nil {
			est = v.newEstimator()
		}
		return NewSummary(est, now)
	})
}

// StateSetVec is a state-set metric family.
type StateSetVec struct {
	f              *family
	variableLabels []string
	constLabels    Labels
	states         []string
}

func (r *Registry) NewStateSet(opts StateSetOpts) (*StateSetVec, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	f, err := r.register(opts.metadata(TypeStateSet))
	if err != nil {
		return nil, err
	}
	return &StateSetVec{f: f, variableLabels: opts.VariableLabels, constLabels: opts.ConstLabels, states: opts.States}, nil
}

func (v *StateSetVec) WithLabelValues(values ...string) (*StateSet, error) {
	labels, err := zipLabels(v.variableLabels, v.constLabels, values)
	if err != nil {
		return nil, err
	}
	return v.With(labels)
}

func (v *StateSetVec) With(labels Labels) (*StateSet, error) {
	var buildErr error
	s, err := getOrCreate(v.f, labels, func() *StateSet {
		var s *StateSet
		s, buildErr = NewStateSet(v.states...)
		return s
	})
	if err != nil {
		return nil, err
	}
	if buildErr != nil {
		return nil, buildErr
	}
	return s, nil
}

// clock abstracts time.Now so tests can inject a fixed time for created-
// timestamp assertions.
type clock interface{ now() time.Time }

type realClock struct{}

func (realClock) now() time.Time { return time.Now() }
