// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"bytes"
	"math"
	"testing"
)

func TestWritePrometheusMinimalCounter(t *testing.T) {
	snaps := MetricSnapshots{{
		Metadata: MetricMetadata{Name: "my_counter", Type: TypeCounter},
		Points:   []Point{{Value: 1.1}},
	}}
	var buf bytes.Buffer
	if err := WritePrometheus(&buf, snaps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "# TYPE my_counter_total counter\nmy_counter_total 1.1\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWritePrometheusHistogramInfBucketOnlySynthesizesCount(t *testing.T) {
	snaps := MetricSnapshots{{
		Metadata: MetricMetadata{Name: "h", Type: TypeHistogram},
		Points: []Point{{
			Buckets: []Bucket{{UpperBound: math.Inf(1), Count: 2}},
		}},
	}}
	var buf bytes.Buffer
	if err := WritePrometheus(&buf, snaps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "# TYPE h histogram\nh_bucket{le=\"+Inf\"} 2\nh_count 2\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWritePrometheusInfo(t *testing.T) {
	snaps := MetricSnapshots{{
		Metadata: MetricMetadata{Name: "build", Type: TypeInfo},
		Points:   []Point{{Labels: NewLabels("version", "1.2.3")}},
	}}
	var buf bytes.Buffer
	if err := WritePrometheus(&buf, snaps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "# TYPE build_info gauge\nbuild_info{version=\"1.2.3\"} 1\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWritePrometheusHelpEscapingLeavesQuoteRaw(t *testing.T) {
	snaps := MetricSnapshots{{
		Metadata: MetricMetadata{Name: "test", Type: TypeCounter, Help: "Some text and \n some \" escaping"},
		Points:   []Point{{Value: 0}},
	}}
	var buf bytes.Buffer
	if err := WritePrometheus(&buf, snaps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "# HELP test_total Some text and \\n some \" escaping\n# TYPE test_total counter\ntest_total 0\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWritePrometheusCounterCreatedIsSeparateBlock(t *testing.T) {
	snaps := MetricSnapshots{{
		Metadata: MetricMetadata{Name: "requests", Type: TypeCounter},
		Points:   []Point{{Value: 3, HasCreatedTimestamp: true, CreatedTimestampMs: 1672850385800}},
	}}
	var buf bytes.Buffer
	if err := WritePrometheus(&buf, snaps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "# TYPE requests_total counter\n" +
		"requests_total 3\n" +
		"# TYPE requests_created gauge\n" +
		"requests_created 1672850385.8\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWritePrometheusGaugeHistogramAlwaysEmitsGcount(t *testing.T) {
	snaps := MetricSnapshots{{
		Metadata: MetricMetadata{Name: "gh", Type: TypeGaugeHistogram},
		Points: []Point{{
			Buckets: []Bucket{{UpperBound: math.Inf(1), Count: 5}},
		}},
	}}
	var buf bytes.Buffer
	if err := WritePrometheus(&buf, snaps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "# TYPE gh histogram\n" +
		"gh_bucket{le=\"+Inf\"} 5\n" +
		"# TYPE gh_gcount gauge\n" +
		"gh_gcount 5\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
