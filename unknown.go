// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "time"

// Unknown is an atomic f64 cell for values whose kind the producer cannot
// classify (spec 3: "Unknown: atomic f64 value, atomic exemplar slot").
// It renders with no sample-name suffix and as Prometheus TYPE "untyped".
type Unknown struct {
	value    atomicFloat
	exemplar exemplarBox
}

// Set stores v unconditionally.
func (u *Unknown) Set(v float64) { u.value.store(v) }

// SetWithExemplar behaves like Set, also sampling an exemplar for v.
func (u *Unknown) SetWithExemplar(v float64, sampler Sampler, now time.Time) {
	u.Set(v)
	u.exemplar.tryUpdate(sampler, v, now)
}

// Value returns the cell's current value.
func (u *Unknown) Value() float64 { return u.value.load() }

func (u *Unknown) collect(labels Labels) Point {
	ex := u.exemplar.load()
	v := u.value.load()
	return Point{Labels: labels, Value: v, Exemplar: ex}
}
