// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// FromPrometheusGatherer wraps a client_golang prometheus.Gatherer (the Go
// runtime collector, the process collector, or any third-party Collector
// registered against a *prometheus.Registry) so its output can be merged
// into this package's own MetricSnapshots and served by the same writers
// used for natively-created metrics.
//
// Grounded on the teacher's adapter.go/prometheus_adapter.go idea of
// bridging into the prometheus.Gatherer interface, rewritten against the
// real client_model wire types instead of the teacher's undefined
// conversion helpers.
func FromPrometheusGatherer(pg prometheus.Gatherer) Gatherer {
	return prometheusGathererAdapter{pg: pg}
}

type prometheusGathererAdapter struct {
	pg prometheus.Gatherer
}

func (a prometheusGathererAdapter) Gather() (MetricSnapshots, error) {
	mfs, err := a.pg.Gather()
	if err != nil {
		return nil, err
	}
	snaps := make(MetricSnapshots, 0, len(mfs))
	for _, mf := range mfs {
		snaps = append(snaps, dtoToSnapshot(mf))
	}
	return snaps, nil
}

func dtoToSnapshot(mf *dto.MetricFamily) MetricSnapshot {
	md := MetricMetadata{
		Name: mf.GetName(),
		Help: mf.GetHelp(),
		Type: dtoType(mf.GetType()),
	}
	points := make([]Point, 0, len(mf.GetMetric()))
	for _, m := range mf.GetMetric() {
		points = append(points, dtoToPoint(md.Type, m))
	}
	return MetricSnapshot{Metadata: md, Points: points}
}

func dtoType(t dto.MetricType) MetricType {
	switch t {
	case dto.MetricType_COUNTER:
		return TypeCounter
	case dto.MetricType_GAUGE:
		return TypeGauge
	case dto.MetricType_HISTOGRAM:
		return TypeHistogram
	case dto.MetricType_GAUGE_HISTOGRAM:
		return TypeGaugeHistogram
	case dto.MetricType_SUMMARY:
		return TypeSummary
	default:
		return TypeUnknown
	}
}

func dtoToPoint(kind MetricType, m *dto.Metric) Point {
	pairs := make([]LabelPair, 0, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		pairs = append(pairs, LabelPair{Name: lp.GetName(), Value: lp.GetValue()})
	}
	p := Point{Labels: FromPairs(pairs)}
	if ts := m.GetTimestampMs(); ts != 0 {
		p.HasScrapeTimestamp = true
		p.ScrapeTimestampMs = ts
	}

	switch kind {
	case TypeCounter:
		p.Value = m.GetCounter().GetValue()
		if ex := m.GetCounter().GetExemplar(); ex != nil {
			e := dtoToExemplar(ex)
			p.Exemplar = &e
		}
	case TypeGauge:
		p.Value = m.GetGauge().GetValue()
	case TypeHistogram:
		h := m.GetHistogram()
		p.Sum, p.HasSum = h.GetSampleSum(), true
		p.Count, p.HasCount = h.GetSampleCount(), true
		for _, b := range h.GetBucket() {
			bucket := Bucket{UpperBound: b.GetUpperBound(), Count: b.GetCumulativeCount()}
			if ex := b.GetExemplar(); ex != nil {
				e := dtoToExemplar(ex)
				bucket.Exemplar = &e
			}
			p.Buckets = append(p.Buckets, bucket)
		}
	case TypeSummary:
		s := m.GetSummary()
		p.Sum, p.HasSum = s.GetSampleSum(), true
		p.Count, p.HasCount = s.GetSampleCount(), true
		for _, q := range s.GetQuantile() {
			p.Quantiles = append(p.Quantiles, Quantile{Quantile: q.GetQuantile(), Value: q.GetValue()})
		}
	default:
		p.Value = m.GetUntyped().GetValue()
	}
	return p
}

// WriteDelimitedProto renders snaps in the Prometheus protobuf exposition
// format (one varint-length-prefixed MetricFamily message per metric),
// the wire format federation and some scrapers negotiate via Accept:
// application/vnd.google.protobuf.
//
// Grounded on the teacher's handler.go reaching for expfmt to encode
// responses; this package supplies the MetricSnapshots->dto.MetricFamily
// conversion expfmt itself has no opinion on.
func WriteDelimitedProto(sink io.Writer, snaps MetricSnapshots) error {
	enc := expfmt.NewEncoder(sink, expfmt.NewFormat(expfmt.TypeProtoDelim))
	for _, fam := range snaps {
		mf := snapshotToDTO(fam)
		if err := enc.Encode(mf); err != nil {
			return wrapError(IOFailure, "encoding protobuf metric family", err)
		}
	}
	return nil
}

func snapshotToDTO(fam MetricSnapshot) *dto.MetricFamily {
	md := fam.Metadata
	mf := &dto.MetricFamily{
		Name: proto.String(md.Name),
		Type: dtoTypeFrom(md.Type).Enum(),
	}
	if md.Help != "" {
		mf.Help = proto.String(md.Help)
	}
	for _, p := range fam.Points {
		mf.Metric = append(mf.Metric, pointToDTO(md.Type, p))
	}
	return mf
}

func dtoTypeFrom(t MetricType) dto.MetricType {
	switch t {
	case TypeCounter:
		return dto.MetricType_COUNTER
	case TypeGauge:
		return dto.MetricType_GAUGE
	case TypeHistogram:
		return dto.MetricType_HISTOGRAM
	case TypeGaugeHistogram:
		return dto.MetricType_GAUGE_HISTOGRAM
	case TypeSummary:
		return dto.MetricType_SUMMARY
	default:
		return dto.MetricType_UNTYPED
	}
}

func pointToDTO(kind MetricType, p Point) *dto.Metric {
	m := &dto.Metric{Label: labelsToDTO(p.Labels)}
	if p.HasScrapeTimestamp {
		m.TimestampMs = proto.Int64(p.ScrapeTimestampMs)
	}
	switch kind {
	case TypeCounter:
		c := &dto.Counter{Value: proto.Float64(p.Value)}
		if p.Exemplar != nil {
			c.Exemplar = exemplarToDTO(*p.Exemplar)
		}
		m.Counter = c
	case TypeGauge:
		m.Gauge = &dto.Gauge{Value: proto.Float64(p.Value)}
	case TypeHistogram, TypeGaugeHistogram:
		h := &dto.Histogram{SampleSum: proto.Float64(p.Sum), SampleCount: proto.Uint64(p.Count)}
		for _, b := range p.Buckets {
			bucket := &dto.Bucket{UpperBound: proto.Float64(b.UpperBound), CumulativeCount: proto.Uint64(b.Count)}
			if b.Exemplar != nil {
				bucket.Exemplar = exemplarToDTO(*b.Exemplar)
			}
			h.Bucket = append(h.Bucket, bucket)
		}
		m.Histogram = h
	case TypeSummary:
		s := &dto.Summary{SampleSum: proto.Float64(p.Sum), SampleCount: proto.Uint64(p.Count)}
		for _, q := range p.Quantiles {
			s.Quantile = append(s.Quantile, &dto.Quantile{Quantile: proto.Float64(q.Quantile), Value: proto.Float64(q.Value)})
		}
		m.Summary = s
	default:
		m.Untyped = &dto.Untyped{Value: proto.Float64(p.Value)}
	}
	return m
}

func labelsToDTO(l Labels) []*dto.LabelPair {
	pairs := l.Pairs()
	if len(pairs) == 0 {
		return nil
	}
	out := make([]*dto.LabelPair, len(pairs))
	for i, p := range pairs {
		out[i] = &dto.LabelPair{Name: proto.String(p.Name), Value: proto.String(p.Value)}
	}
	return out
}

func exemplarToDTO(e Exemplar) *dto.Exemplar {
	ex := &dto.Exemplar{Value: proto.Float64(e.Value), Label: labelsToDTO(e.Labels)}
	if e.HasTimestamp {
		ex.Timestamp = timestamppb.New(time.UnixMilli(e.TimestampMillis))
	}
	return ex
}

func dtoToExemplar(ex *dto.Exemplar) Exemplar {
	pairs := make([]LabelPair, 0, len(ex.GetLabel()))
	for _, lp := range ex.GetLabel() {
		pairs = append(pairs, LabelPair{Name: lp.GetName(), Value: lp.GetValue()})
	}
	e := Exemplar{Value: ex.GetValue(), Labels: FromPairs(pairs)}
	if ts := ex.GetTimestamp(); ts != nil {
		e.HasTimestamp = true
		e.TimestampMillis = ts.AsTime().UnixMilli()
	}
	return e
}
