// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"testing"
	"time"
)

func TestGaugeSetAddIncDec(t *testing.T) {
	var g Gauge
	g.Set(10)
	g.Inc()
	g.Dec()
	g.Add(5)
	if g.Value() != 15 {
		t.Fatalf("expected value 15, got %v", g.Value())
	}
}

func TestGaugeSetWithExemplar(t *testing.T) {
	var g Gauge
	sampler := NewAgeSampler(time.Hour, func(amount float64, now time.Time) Exemplar {
		return Exemplar{Value: amount, HasTimestamp: true, TimestampMillis: now.UnixMilli()}
	})
	g.SetWithExemplar(3, sampler, time.Now())
	p := g.collect(EmptyLabels)
	if p.Value != 3 {
		t.Fatalf("expected value 3, got %v", p.Value)
	}
	if p.Exemplar == nil || p.Exemplar.Value != 3 {
		t.Fatalf("expected exemplar with value 3, got %+v", p.Exemplar)
	}
}

func TestGaugeCollect(t *testing.T) {
	var g Gauge
	g.Set(-2.5)
	p := g.collect(EmptyLabels)
	if p.Value != -2.5 {
		t.Fatalf("expected value -2.5, got %v", p.Value)
	}
	if p.HasCreatedTimestamp {
		t.Fatalf("gauges do not carry a created timestamp")
	}
}
