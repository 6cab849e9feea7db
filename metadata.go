// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

// MetricType identifies the kind of a metric (spec section 3).
//
// Grounded on luxfi-metric/types.go's MetricType, generalized from 5 kinds
// (counter/gauge/histogram/summary/untyped) to the spec's 8.
type MetricType int32

const (
	TypeCounter MetricType = iota
	TypeGauge
	TypeHistogram
	TypeGaugeHistogram
	TypeSummary
	TypeInfo
	TypeStateSet
	TypeUnknown
)

// String returns the exposition-format type keyword for t, as used by both
// writers' "# TYPE" line (spec 4.G.1/4.G.2 give the exact literal per
// format; this is the OpenMetrics literal — the Prometheus writer maps a
// handful of kinds to its own vocabulary separately).
func (t MetricType) String() string {
	switch t {
	case TypeCounter:
		return "counter"
	case TypeGauge:
		return "gauge"
	case TypeHistogram:
		return "histogram"
	case TypeGaugeHistogram:
		return "gaugehistogram"
	case TypeSummary:
		return "summary"
	case TypeInfo:
		return "info"
	case TypeStateSet:
		return "stateset"
	default:
		return "unknown"
	}
}

// MetricMetadata describes a metric independent of its live state: its
// name, optional help text and unit, type, and const labels applied to
// every data record produced by the metric.
type MetricMetadata struct {
	Name        string
	Help        string
	Unit        string
	Type        MetricType
	ConstLabels Labels
}

// Validate checks the name and const labels against the naming rules
// (spec section 3/4.H). It does not check dynamically added label
// combinations; those are validated when a cell is first looked up or
// created for them (getOrCreate calls ValidateLabels).
func (m MetricMetadata) Validate() error {
	if err := ValidateMetricName(m.Name); err != nil {
		return err
	}
	return ValidateLabels(m.ConstLabels)
}
