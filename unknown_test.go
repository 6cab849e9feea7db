// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"testing"
	"time"
)

func TestUnknownSetAndCollect(t *testing.T) {
	var u Unknown
	u.Set(7)
	p := u.collect(EmptyLabels)
	if p.Value != 7 {
		t.Fatalf("expected value 7, got %v", p.Value)
	}
	if p.Exemplar != nil {
		t.Fatalf("expected no exemplar before SetWithExemplar")
	}
}

func TestUnknownSetWithExemplar(t *testing.T) {
	var u Unknown
	sampler := NewAgeSampler(time.Hour, func(amount float64, now time.Time) Exemplar {
		return Exemplar{Value: amount, HasTimestamp: true, TimestampMillis: now.UnixMilli()}
	})
	u.SetWithExemplar(4, sampler, time.Now())
	if u.Value() != 4 {
		t.Fatalf("expected value 4, got %v", u.Value())
	}
	p := u.collect(EmptyLabels)
	if p.Exemplar == nil || p.Exemplar.Value != 4 {
		t.Fatalf("expected exemplar with value 4, got %+v", p.Exemplar)
	}
}
