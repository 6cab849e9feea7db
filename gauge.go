// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "time"

// Gauge is a point-in-time value cell that can move in either direction.
//
// Grounded on high_perf_metrics.go's VictoriaGauge CAS loop.
type Gauge struct {
	value    atomicFloat
	exemplar exemplarBox
}

// Set stores v unconditionally.
func (g *Gauge) Set(v float64) { g.value.store(v) }

// Add adds delta (positive or negative) to the gauge.
func (g *Gauge) Add(delta float64) { g.value.add(delta) }

// Inc increases the gauge by 1.
func (g *Gauge) Inc() { g.value.add(1) }

// Dec decreases the gauge by 1.
func (g *Gauge) Dec() { g.value.add(-1) }

// SetWithExemplar behaves like Set, also sampling an exemplar for v.
func (g *Gauge) SetWithExemplar(v float64, sampler Sampler, now time.Time) {
	g.Set(v)
	g.exemplar.tryUpdate(sampler, v, now)
}

// Value returns the gauge's current value.
func (g *Gauge) Value() float64 { return g.value.load() }

func (g *Gauge) collect(labels Labels) Point {
	ex := g.exemplar.load()
	v := g.value.load()
	return Point{Labels: labels, Value: v, Exemplar: ex}
}
