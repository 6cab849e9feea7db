// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "testing"

func TestNewLabelsCanonicalOrder(t *testing.T) {
	l := NewLabels("zeta", "1", "alpha", "2")
	pairs := l.Pairs()
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Name != "alpha" || pairs[1].Name != "zeta" {
		t.Fatalf("expected sorted order alpha,zeta, got %s,%s", pairs[0].Name, pairs[1].Name)
	}
}

func TestLabelsEqualIgnoresConstructionOrder(t *testing.T) {
	a := NewLabels("a", "1", "b", "2")
	b := NewLabels("b", "2", "a", "1")
	if !a.Equal(b) {
		t.Fatalf("expected equal label sets")
	}
}

func TestLabelsMergeDuplicateRejected(t *testing.T) {
	a := NewLabels("a", "1")
	b := NewLabels("a", "2")
	if _, err := a.Merge(b); err == nil {
		t.Fatalf("expected error merging duplicate label name")
	}
}

func TestNewLabelsOddArgsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on odd argument count")
		}
	}()
	NewLabels("a")
}
