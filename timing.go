// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "time"

// TimingMetric measures the duration of an operation and records it, in
// seconds, into a bound Histogram.
type TimingMetric struct {
	histogram *Histogram
	start     time.Time
}

// NewTimingMetric starts a timer bound to histogram.
func NewTimingMetric(histogram *Histogram) *TimingMetric {
	return &TimingMetric{histogram: histogram, start: time.Now()}
}

// ObserveDuration records the elapsed time since the timer started.
func (t *TimingMetric) ObserveDuration() {
	t.histogram.Observe(time.Since(t.start).Seconds())
}

// Time runs fn and observes its duration into histogram.
func Time(histogram *Histogram, fn func()) {
	start := time.Now()
	fn()
	histogram.Observe(time.Since(start).Seconds())
}
