// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "io"

// WritePrometheus renders snaps to sink in the legacy Prometheus text
// format (spec 4.G.2): HELP precedes TYPE, no UNIT line, no terminal
// sentinel, and several kinds split companion series (_created, _gcount,
// _gsum) into their own HELP/TYPE blocks because classic Prometheus has no
// native representation for them.
func WritePrometheus(sink io.Writer, snaps MetricSnapshots) error {
	var buf []byte
	for _, fam := range snaps {
		buf = appendPrometheusFamily(buf, fam)
	}
	if _, err := sink.Write(buf); err != nil {
		return wrapError(IOFailure, "writing prometheus document", err)
	}
	return nil
}

func appendPrometheusFamily(buf []byte, fam MetricSnapshot) []byte {
	md := fam.Metadata
	name := md.Name

	if md.Type == TypeSummary && allPointsEmpty(fam.Points) {
		return buf
	}

	switch md.Type {
	case TypeCounter:
		buf = appendPromBlock(buf, name+"_total", md.Help, "counter", fam.Points, appendPromSimplePoint)
		buf = appendPromCreatedBlock(buf, name, md.Help, fam.Points)
	case TypeGauge:
		buf = appendPromBlock(buf, name, md.Help, "gauge", fam.Points, appendPromSimplePoint)
	case TypeUnknown:
		buf = appendPromBlock(buf, name, md.Help, "untyped", fam.Points, appendPromSimplePoint)
	case TypeInfo:
		buf = appendPromBlock(buf, name+"_info", md.Help, "gauge", fam.Points, appendPromInfoPoint)
	case TypeStateSet:
		buf = appendPromBlock(buf, name, md.Help, "gauge", fam.Points, appendPromStateSetPoint)
	case TypeHistogram:
		buf = appendPromBlock(buf, name, md.Help, "histogram", fam.Points, appendPromHistogramPoint)
		buf = appendPromCreatedBlock(buf, name, md.Help, fam.Points)
	case TypeGaugeHistogram:
		buf = appendPromBlock(buf, name, md.Help, "histogram", fam.Points, appendPromGaugeHistogramBucketsOnly)
		buf = appendPromGaugeHistogramCompanion(buf, name, md.Help, fam.Points)
	case TypeSummary:
		buf = appendPromBlock(buf, name, md.Help, "summary", fam.Points, appendPromSummaryPoint)
		buf = appendPromCreatedBlock(buf, name, md.Help, fam.Points)
	}
	return buf
}

// appendPromBlock writes one HELP/TYPE header pair followed by whatever
// sample lines render(...) produces per point, in point order. If no point
// produces any line, the block is dropped entirely (including its header),
// for every metric kind; the OpenMetrics writer drops a header only for
// summary families whose records are all empty.
func appendPromBlock(buf []byte, name, help, typeName string, points []Point, render func([]byte, string, Point, *int64) []byte) []byte {
	start := len(buf)
	if help != "" {
		buf = appendPromHeader(buf, name, help, typeName)
	} else {
		buf = appendPromTypeOnly(buf, name, typeName)
	}
	bodyStart := len(buf)
	for _, p := range points {
		buf = render(buf, name, p, pointTimestamp(p))
	}
	if len(buf) == bodyStart {
		return buf[:start]
	}
	return buf
}

func appendPromHeader(buf []byte, name, help, typeName string) []byte {
	buf = append(buf, "# HELP "...)
	buf = append(buf, name...)
	buf = append(buf, ' ')
	buf = appendEscaped(buf, escapeHelpPrometheus, help)
	buf = append(buf, '\n')
	return appendPromTypeOnly(buf, name, typeName)
}

func appendPromTypeOnly(buf []byte, name, typeName string) []byte {
	buf = append(buf, "# TYPE "...)
	buf = append(buf, name...)
	buf = append(buf, ' ')
	buf = append(buf, typeName...)
	return append(buf, '\n')
}

func appendPromSimplePoint(buf []byte, name string, p Point, ts *int64) []byte {
	return appendSampleLine(buf, name, p.Labels, nil, p.Value, sampleOpts{timestamp: ts})
}

func appendPromInfoPoint(buf []byte, name string, p Point, ts *int64) []byte {
	return appendSampleLine(buf, name, p.Labels, nil, 1, sampleOpts{timestamp: ts})
}

func appendPromStateSetPoint(buf []byte, name string, p Point, ts *int64) []byte {
	for _, sv := range p.States {
		val := 0.0
		if sv.Enabled {
			val = 1
		}
		buf = appendSampleLine(buf, name, p.Labels, []LabelPair{{Name: "state", Value: sv.Name}}, val, sampleOpts{timestamp: ts})
	}
	return buf
}

func appendPromHistogramPoint(buf []byte, name string, p Point, ts *int64) []byte {
	if len(p.Buckets) == 0 && !p.HasCount && !p.HasSum {
		return buf
	}
	for _, b := range p.Buckets {
		le := LabelPair{Name: "le", Value: formatQuantileLabel(b.UpperBound)}
		buf = appendUintSampleLine(buf, name+"_bucket", p.Labels, []LabelPair{le}, b.Count, sampleOpts{timestamp: ts})
	}
	if len(p.Buckets) > 0 {
		count, ok := effectiveCount(p)
		if ok {
			buf = appendUintSampleLine(buf, name+"_count", p.Labels, nil, count, sampleOpts{timestamp: ts})
		}
	}
	if p.HasSum {
		buf = appendSampleLine(buf, name+"_sum", p.Labels, nil, p.Sum, sampleOpts{timestamp: ts, sumFormat: true})
	}
	return buf
}

// effectiveCount implements the "_count synthesized from the +Inf bucket
// when not explicitly set" rule.
func effectiveCount(p Point) (uint64, bool) {
	if p.HasCount {
		return p.Count, true
	}
	if len(p.Buckets) == 0 {
		return 0, false
	}
	return p.Buckets[len(p.Buckets)-1].Count, true
}

func appendPromSummaryPoint(buf []byte, name string, p Point, ts *int64) []byte {
	for _, q := range p.Quantiles {
		qLabel := LabelPair{Name: "quantile", Value: formatQuantileLabel(q.Quantile)}
		buf = appendSampleLine(buf, name, p.Labels, []LabelPair{qLabel}, q.Value, sampleOpts{timestamp: ts})
	}
	if p.HasCount {
		buf = appendUintSampleLine(buf, name+"_count", p.Labels, nil, p.Count, sampleOpts{timestamp: ts})
	}
	if p.HasSum {
		buf = appendSampleLine(buf, name+"_sum", p.Labels, nil, p.Sum, sampleOpts{timestamp: ts, sumFormat: true})
	}
	return buf
}

// appendPromCreatedBlock emits the companion "<name>_created" gauge block
// for counters, histograms and summaries, dropped entirely if no point
// carries a created timestamp.
func appendPromCreatedBlock(buf []byte, name, help string, points []Point) []byte {
	return appendPromBlock(buf, name+"_created", help, "gauge", points, func(b []byte, createdName string, p Point, ts *int64) []byte {
		if !p.HasCreatedTimestamp {
			return b
		}
		return appendSampleLine(b, createdName, p.Labels, nil, float64(p.CreatedTimestampMs)/1000, sampleOpts{})
	})
}

// appendPromGaugeHistogramBucketsOnly renders only the bucket lines of a
// gauge histogram into the primary "histogram"-typed block; _gcount/_gsum
// are split into their own companion blocks by the caller.
func appendPromGaugeHistogramBucketsOnly(buf []byte, name string, p Point, ts *int64) []byte {
	for _, b := range p.Buckets {
		le := LabelPair{Name: "le", Value: formatQuantileLabel(b.UpperBound)}
		buf = appendUintSampleLine(buf, name+"_bucket", p.Labels, []LabelPair{le}, b.Count, sampleOpts{timestamp: ts})
	}
	return buf
}

// appendPromGaugeHistogramCompanion emits the always-present "_gcount"
// gauge block and the conditional "_gsum" gauge block for a gauge
// histogram (spec 4.G.2).
func appendPromGaugeHistogramCompanion(buf []byte, name, help string, points []Point) []byte {
	buf = appendPromBlockForce(buf, name+"_gcount", help, "gauge", points, func(b []byte, gcountName string, p Point, ts *int64) []byte {
		count, ok := effectiveCount(p)
		if !ok {
			return b
		}
		return appendUintSampleLine(b, gcountName, p.Labels, nil, count, sampleOpts{timestamp: ts})
	})
	return appendPromBlock(buf, name+"_gsum", help, "gauge", points, func(b []byte, gsumName string, p Point, ts *int64) []byte {
		if !p.HasSum {
			return b
		}
		return appendSampleLine(b, gsumName, p.Labels, nil, p.Sum, sampleOpts{timestamp: ts, sumFormat: true})
	})
}

// appendPromBlockForce is appendPromBlock without the "drop if empty" rule,
// used for _gcount, which spec 4.G.2 says is "always emitted... even
// without a sum".
func appendPromBlockForce(buf []byte, name, help, typeName string, points []Point, render func([]byte, string, Point, *int64) []byte) []byte {
	if help != "" {
		buf = appendPromHeader(buf, name, help, typeName)
	} else {
		buf = appendPromTypeOnly(buf, name, typeName)
	}
	for _, p := range points {
		buf = render(buf, name, p, pointTimestamp(p))
	}
	return buf
}
