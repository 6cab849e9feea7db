// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "time"

// Counter is a monotonically non-decreasing accumulator cell for one label
// combination. All methods are safe for concurrent use without blocking.
//
// Grounded on the real client_golang Counter's exemplar-and-value pair and
// on high_perf_metrics.go's VictoriaCounter CAS loop, generalized to carry
// an optional exemplar and created-timestamp.
type Counter struct {
	value     atomicFloat
	exemplar  exemplarBox
	createdMs int64
}

func newCounter(now time.Time) *Counter {
	return &Counter{createdMs: snapshotTimeMillis(now)}
}

// Add increases the counter by delta. delta must be >= 0; a negative or NaN
// delta is rejected without modifying the counter.
func (c *Counter) Add(delta float64) error {
	if !(delta >= 0) {
		return newError(InvalidAmount, "counter: Add requires a non-negative delta")
	}
	c.value.add(delta)
	return nil
}

// Inc increases the counter by 1.
func (c *Counter) Inc() { c.value.add(1) }

// AddWithExemplar behaves like Add, and additionally samples an exemplar
// for the added observation via sampler (nil disables sampling for this
// call).
func (c *Counter) AddWithExemplar(delta float64, sampler Sampler, now time.Time) error {
	if err := c.Add(delta); err != nil {
		return err
	}
	c.exemplar.tryUpdate(sampler, delta, now)
	return nil
}

// Value returns the counter's current value.
func (c *Counter) Value() float64 { return c.value.load() }

// collect reads the exemplar before the numeric value, per the spec's
// snapshot ordering invariant (an exemplar must never be exposed ahead of
// the count it was sampled for).
func (c *Counter) collect(labels Labels) Point {
	ex := c.exemplar.load()
	v := c.value.load()
	return Point{
		Labels:              labels,
		Value:               v,
		Exemplar:            ex,
		HasCreatedTimestamp: true,
		CreatedTimestampMs:  c.createdMs,
	}
}
