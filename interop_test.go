// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "testing"

func TestSnapshotToDTORoundTripCounter(t *testing.T) {
	original := MetricSnapshot{
		Metadata: MetricMetadata{Name: "requests_total", Help: "total requests", Type: TypeCounter},
		Points: []Point{
			{Labels: NewLabels("path", "/a"), Value: 3},
			{Labels: NewLabels("path", "/b"), Value: 4},
		},
	}
	mf := snapshotToDTO(original)
	back := dtoToSnapshot(mf)

	if back.Metadata.Name != original.Metadata.Name || back.Metadata.Help != original.Metadata.Help {
		t.Fatalf("metadata mismatch: got %+v, want %+v", back.Metadata, original.Metadata)
	}
	if back.Metadata.Type != TypeCounter {
		t.Fatalf("expected type counter, got %v", back.Metadata.Type)
	}
	if len(back.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(back.Points))
	}
	for i, p := range back.Points {
		if p.Value != original.Points[i].Value {
			t.Errorf("point %d: got value %v, want %v", i, p.Value, original.Points[i].Value)
		}
		if !p.Labels.Equal(original.Points[i].Labels) {
			t.Errorf("point %d: got labels %+v, want %+v", i, p.Labels, original.Points[i].Labels)
		}
	}
}

func TestSnapshotToDTORoundTripHistogram(t *testing.T) {
	original := MetricSnapshot{
		Metadata: MetricMetadata{Name: "latency", Type: TypeHistogram},
		Points: []Point{{
			Sum: 10, HasSum: true,
			Count: 3, HasCount: true,
			Buckets: []Bucket{
				{UpperBound: 1, Count: 1},
				{UpperBound: 5, Count: 3},
			},
		}},
	}
	mf := snapshotToDTO(original)
	back := dtoToSnapshot(mf)

	if len(back.Points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(back.Points))
	}
	got := back.Points[0]
	if got.Sum != 10 || got.Count != 3 {
		t.Fatalf("got sum=%v count=%v, want sum=10 count=3", got.Sum, got.Count)
	}
	if len(got.Buckets) != 2 || got.Buckets[1].UpperBound != 5 || got.Buckets[1].Count != 3 {
		t.Fatalf("unexpected buckets: %+v", got.Buckets)
	}
}

func TestSnapshotToDTORoundTripExemplar(t *testing.T) {
	ex := Exemplar{Value: 1.5, Labels: NewLabels("trace_id", "abc"), HasTimestamp: true, TimestampMillis: 1672850685829}
	original := MetricSnapshot{
		Metadata: MetricMetadata{Name: "hits_total", Type: TypeCounter},
		Points:   []Point{{Value: 9, Exemplar: &ex}},
	}
	mf := snapshotToDTO(original)
	back := dtoToSnapshot(mf)

	got := back.Points[0].Exemplar
	if got == nil {
		t.Fatalf("expected exemplar to survive round-trip")
	}
	if got.Value != ex.Value || got.TimestampMillis != ex.TimestampMillis {
		t.Fatalf("got %+v, want %+v", got, ex)
	}
	if !got.Labels.Equal(ex.Labels) {
		t.Fatalf("got labels %+v, want %+v", got.Labels, ex.Labels)
	}
}
