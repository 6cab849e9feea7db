// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "testing"

func TestRegistryRejectsDuplicateName(t *testing.T) {
	r := NewRegistry()
	if _, err := r.NewCounter(Opts{Name: "requests_total"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.NewCounter(Opts{Name: "requests_total"}); err == nil {
		t.Fatalf("expected error registering duplicate metric name")
	}
}

func TestRegistryGetOrCreateReturnsSameCellForSameLabels(t *testing.T) {
	r := NewRegistry()
	vec, err := r.NewCounter(Opts{Name: "hits_total", VariableLabels: []string{"route"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, err := vec.WithLabelValues("/a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := vec.WithLabelValues("/a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatalf("expected the same cell for the same label combination")
	}
	a.Inc()
	if b.Value() != 1 {
		t.Fatalf("expected shared state between cells for the same labels")
	}
}

func TestRegistryGatherProducesOneSnapshotPerFamily(t *testing.T) {
	r := NewRegistry()
	vec, err := r.NewGauge(Opts{Name: "temperature", VariableLabels: []string{"room"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kitchen, err := vec.WithLabelValues("kitchen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kitchen.Set(21.5)

	snaps, err := r.Gather()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 1 {
		t.Fatalf("expected 1 family, got %d", len(snaps))
	}
	if len(snaps[0].Points) != 1 || snaps[0].Points[0].Value != 21.5 {
		t.Fatalf("unexpected snapshot: %+v", snaps[0])
	}
}

func TestRegistryWithLabelValuesLengthMismatch(t *testing.T) {
	r := NewRegistry()
	vec, err := r.NewCounter(Opts{Name: "errors_total", VariableLabels: []string{"code"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := vec.WithLabelValues(); err == nil {
		t.Fatalf("expected error for missing label value")
	}
}
