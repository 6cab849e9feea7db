// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

// sampleOpts controls the optional parts of one rendered sample line that
// vary by metric kind and by writer (spec 4.G: "<value>[ <scrape_ts_s>][ #
// <exemplar>]").
type sampleOpts struct {
	sumFormat bool // keep trailing ".0" on whole values (_sum/_gsum)
	timestamp *int64
	exemplar  *Exemplar // nil if this writer/line disallows exemplars
}

// appendSampleLine renders one full sample line: name, optional label
// braces (base labels plus a synthetic trailing label such as le/quantile/
// state), a value, an optional timestamp, and an optional exemplar
// comment, terminated by a newline. This is shared verbatim between the
// OpenMetrics and Prometheus writers; only the caller's choice of opts
// (whether timestamps/exemplars are permitted) differs.
func appendSampleLine(buf []byte, name string, labels Labels, extra []LabelPair, value float64, opts sampleOpts) []byte {
	buf = append(buf, name...)
	buf = appendLabelBraces(buf, labels, extra...)
	buf = append(buf, ' ')
	if opts.sumFormat {
		buf = appendSum(buf, value)
	} else {
		buf = appendFloat(buf, value)
	}
	if opts.timestamp != nil {
		buf = append(buf, ' ')
		buf = appendTimestampSeconds(buf, *opts.timestamp)
	}
	if opts.exemplar != nil {
		buf = append(buf, " # "...)
		buf = appendLabelBraces(buf, opts.exemplar.Labels)
		buf = append(buf, ' ')
		buf = appendFloat(buf, opts.exemplar.Value)
		if opts.exemplar.HasTimestamp {
			buf = append(buf, ' ')
			buf = appendTimestampSeconds(buf, opts.exemplar.TimestampMillis)
		}
	}
	return append(buf, '\n')
}

// appendUintSampleLine is a convenience wrapper for integer-valued lines
// (bucket/count) that never use sum formatting.
func appendUintSampleLine(buf []byte, name string, labels Labels, extra []LabelPair, value uint64, opts sampleOpts) []byte {
	return appendSampleLine(buf, name, labels, extra, float64(value), opts)
}

// formatQuantileLabel renders a quantile/le value the way it appears as a
// label *value* (not a sample value): shortest round-trip, +Inf/-Inf/NaN
// spelled out, same as appendFloat but as a string for embedding in a
// label.
func formatQuantileLabel(v float64) string {
	return string(appendFloat(nil, v))
}
