// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "io"

// WriteOpenMetrics renders snaps to sink in OpenMetrics text format (spec
// 4.G.1), terminated by the mandatory "# EOF\n" sentinel.
//
// Grounded on the document-shape contract in the spec and on the teacher's
// handler.go, which delegates exposition to a format-specific encoder
// rather than building strings ad hoc; this is that encoder, just written
// from scratch since the teacher never actually defined one (its EncodeText
// was referenced but missing).
func WriteOpenMetrics(sink io.Writer, snaps MetricSnapshots) error {
	var buf []byte
	for _, fam := range snaps {
		buf = appendOpenMetricsFamily(buf, fam)
	}
	buf = append(buf, "# EOF\n"...)
	if _, err := sink.Write(buf); err != nil {
		return wrapError(IOFailure, "writing openmetrics document", err)
	}
	return nil
}

func appendOpenMetricsFamily(buf []byte, fam MetricSnapshot) []byte {
	md := fam.Metadata

	if md.Type == TypeSummary && allPointsEmpty(fam.Points) {
		return buf
	}

	name := md.Name
	buf = append(buf, "# TYPE "...)
	buf = append(buf, name...)
	buf = append(buf, ' ')
	buf = append(buf, md.Type.String()...)
	buf = append(buf, '\n')

	if md.Unit != "" {
		buf = append(buf, "# UNIT "...)
		buf = append(buf, name...)
		buf = append(buf, ' ')
		buf = append(buf, md.Unit...)
		buf = append(buf, '\n')
	}
	if md.Help != "" {
		buf = append(buf, "# HELP "...)
		buf = append(buf, name...)
		buf = append(buf, ' ')
		buf = appendEscaped(buf, escapeHelpOpenMetrics, md.Help)
		buf = append(buf, '\n')
	}

	for _, p := range fam.Points {
		buf = appendOpenMetricsPoint(buf, name, md.Type, p)
	}
	return buf
}

func allPointsEmpty(points []Point) bool {
	for _, p := range points {
		if !p.isEmptySummaryOrHistogram() {
			return false
		}
	}
	return true
}

func pointTimestamp(p Point) *int64 {
	if !p.HasScrapeTimestamp {
		return nil
	}
	ts := p.ScrapeTimestampMs
	return &ts
}

func appendOpenMetricsPoint(buf []byte, name string, kind MetricType, p Point) []byte {
	ts := pointTimestamp(p)

	switch kind {
	case TypeCounter:
		buf = appendSampleLine(buf, name+"_total", p.Labels, nil, p.Value,
			sampleOpts{timestamp: ts, exemplar: p.Exemplar})
		if p.HasCreatedTimestamp {
			buf = appendSampleLine(buf, name+"_created", p.Labels, nil, float64(p.CreatedTimestampMs)/1000,
				sampleOpts{})
		}
	case TypeGauge, TypeUnknown:
		sampleName := name
		buf = appendSampleLine(buf, sampleName, p.Labels, nil, p.Value,
			sampleOpts{timestamp: ts, exemplar: p.Exemplar})
	case TypeInfo:
		buf = appendSampleLine(buf, name+"_info", p.Labels, nil, 1, sampleOpts{timestamp: ts})
	case TypeStateSet:
		for _, sv := range p.States {
			val := 0.0
			if sv.Enabled {
				val = 1
			}
			buf = appendSampleLine(buf, name, p.Labels, []LabelPair{{Name: "state", Value: sv.Name}}, val,
				sampleOpts{timestamp: ts})
		}
	case TypeHistogram, TypeGaugeHistogram:
		buf = appendOpenMetricsHistogramPoint(buf, name, kind, p, ts)
	case TypeSummary:
		buf = appendOpenMetricsSummaryPoint(buf, name, p, ts)
	}
	return buf
}

func appendOpenMetricsHistogramPoint(buf []byte, name string, kind MetricType, p Point, ts *int64) []byte {
	if p.isEmptySummaryOrHistogram() {
		return buf
	}
	countSuffix, sumSuffix := "_count", "_sum"
	if kind == TypeGaugeHistogram {
		countSuffix, sumSuffix = "_gcount", "_gsum"
	}
	for _, b := range p.Buckets {
		le := LabelPair{Name: "le", Value: formatQuantileLabel(b.UpperBound)}
		buf = appendUintSampleLine(buf, name+"_bucket", p.Labels, []LabelPair{le}, b.Count,
			sampleOpts{timestamp: ts, exemplar: b.Exemplar})
	}
	if p.HasSum {
		if p.HasCount {
			buf = appendUintSampleLine(buf, name+countSuffix, p.Labels, nil, p.Count, sampleOpts{timestamp: ts})
		}
		buf = appendSampleLine(buf, name+sumSuffix, p.Labels, nil, p.Sum, sampleOpts{timestamp: ts, sumFormat: true})
	}
	if kind == TypeHistogram && p.HasCreatedTimestamp {
		buf = appendSampleLine(buf, name+"_created", p.Labels, nil, float64(p.CreatedTimestampMs)/1000, sampleOpts{})
	}
	return buf
}

func appendOpenMetricsSummaryPoint(buf []byte, name string, p Point, ts *int64) []byte {
	if p.isEmptySummaryOrHistogram() {
		return buf
	}
	for _, q := range p.Quantiles {
		qLabel := LabelPair{Name: "quantile", Value: formatQuantileLabel(q.Quantile)}
		buf = appendSampleLine(buf, name, p.Labels, []LabelPair{qLabel}, q.Value,
			sampleOpts{timestamp: ts, exemplar: q.Exemplar})
	}
	if p.HasCount {
		buf = appendUintSampleLine(buf, name+"_count", p.Labels, nil, p.Count,
			sampleOpts{timestamp: ts, exemplar: p.Exemplar})
	}
	if p.HasSum {
		buf = appendSampleLine(buf, name+"_sum", p.Labels, nil, p.Sum,
			sampleOpts{timestamp: ts, sumFormat: true, exemplar: p.Exemplar})
	}
	if p.HasCreatedTimestamp {
		buf = appendSampleLine(buf, name+"_created", p.Labels, nil, float64(p.CreatedTimestampMs)/1000, sampleOpts{})
	}
	return buf
}
