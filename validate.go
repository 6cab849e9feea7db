// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"regexp"
	"strings"
)

var (
	metricNameRE = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)
	labelNameRE  = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// reservedLabelNames may not be set by user code; each is owned by a
// specific metric kind's rendering (histogram buckets, summary quantiles,
// state sets).
var reservedLabelNames = map[string]string{
	"le":       "histogram bucket upper bound",
	"quantile": "summary quantile",
	"state":    "state set member",
}

// ValidateMetricName validates a metric name against the exposition-format
// naming rules: it must match metricNameRE and must not begin with the
// reserved "__" prefix.
func ValidateMetricName(name string) error {
	if name == "" {
		return newError(MissingRequired, "metric name is empty")
	}
	if strings.HasPrefix(name, "__") {
		return newError(InvalidName, "metric name "+strconvQuote(name)+" uses reserved \"__\" prefix")
	}
	if !metricNameRE.MatchString(name) {
		return newError(InvalidName, "invalid metric name "+strconvQuote(name))
	}
	return nil
}

// ValidateLabelName validates a label name against the naming rules and
// rejects the reserved "__" prefix. It does not reject le/quantile/state;
// those are only illegal when supplied by *user* code (see
// ValidateUserLabelName), since the writers themselves own those names for
// histogram/summary/stateset rendering.
func ValidateLabelName(name string) error {
	if name == "" {
		return newError(MissingRequired, "label name is empty")
	}
	if strings.HasPrefix(name, "__") {
		return newError(InvalidLabel, "label name "+strconvQuote(name)+" uses reserved \"__\" prefix")
	}
	if !labelNameRE.MatchString(name) {
		return newError(InvalidLabel, "invalid label name "+strconvQuote(name))
	}
	return nil
}

// ValidateUserLabelName validates a label name supplied as a const label or
// variable label by calling code, additionally rejecting the reserved
// names owned by histogram/summary/stateset rendering.
func ValidateUserLabelName(name string) error {
	if err := ValidateLabelName(name); err != nil {
		return err
	}
	if owner, reserved := reservedLabelNames[name]; reserved {
		return newError(InvalidLabel, "label name "+strconvQuote(name)+" is reserved for "+owner)
	}
	return nil
}

// ValidateLabelValue rejects label values containing a NUL byte.
func ValidateLabelValue(value string) error {
	if strings.IndexByte(value, 0) >= 0 {
		return newError(InvalidLabel, "label value contains a NUL byte")
	}
	return nil
}

// ValidateLabels validates every name in a Labels value as a user-provided
// label set, and checks for duplicate names.
func ValidateLabels(l Labels) error {
	seen := make(map[string]struct{}, l.Len())
	for _, p := range l.Pairs() {
		if err := ValidateUserLabelName(p.Name); err != nil {
			return err
		}
		if err := ValidateLabelValue(p.Value); err != nil {
			return err
		}
		if _, ok := seen[p.Name]; ok {
			return newError(InvalidLabel, "duplicate label name "+strconvQuote(p.Name))
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

// IsValidMetricName returns true if name is a valid metric name.
func IsValidMetricName(name string) bool {
	return ValidateMetricName(name) == nil
}

// IsValidLabelName returns true if name is a valid label name.
func IsValidLabelName(name string) bool {
	return ValidateLabelName(name) == nil
}
