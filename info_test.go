// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "testing"

func TestInfoCollectAlwaysValueOne(t *testing.T) {
	var i Info
	p := i.collect(NewLabels("version", "1.2.3"))
	if p.Value != 1 {
		t.Fatalf("expected value 1, got %v", p.Value)
	}
	if !p.Labels.Equal(NewLabels("version", "1.2.3")) {
		t.Fatalf("expected labels to be carried through unchanged, got %+v", p.Labels)
	}
}
