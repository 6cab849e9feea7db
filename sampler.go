// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "time"

// defaultExemplarMinAge is the minimum age of a held exemplar before the
// default sampler will consider replacing it (spec 4.E).
const defaultExemplarMinAge = 7 * time.Second

// Sampler decides whether an observation should replace the exemplar
// currently held by a metric cell or histogram bucket. Sample sees the
// observed amount and the exemplar previously installed (nil if none), and
// returns either a new Exemplar to install or nil to leave the current one
// in place.
//
// Implementations must be pure (no I/O) and safe to call concurrently;
// Sample is invoked from inside the lock-free CAS loop in exemplarBox and
// may be called more than once per observation if it loses a race.
type Sampler interface {
	Sample(amount float64, previous *Exemplar, now time.Time) *Exemplar
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func(amount float64, previous *Exemplar, now time.Time) *Exemplar

func (f SamplerFunc) Sample(amount float64, previous *Exemplar, now time.Time) *Exemplar {
	return f(amount, previous, now)
}

// ageSampler is the default policy: replace the held exemplar when it is
// older than minAge or absent, otherwise decline.
//
// It never attaches a new Exemplar on its own: the sampler only decides
// *whether* to replace, and needs a caller-supplied builder to know *what*
// to put in place, since it has no labels/timestamp for the observation
// itself. Call sites that enable exemplar sampling provide that builder.
type ageSampler struct {
	minAge  time.Duration
	builder func(amount float64, now time.Time) Exemplar
}

// NewAgeSampler returns a Sampler implementing the spec's default policy:
// replace if the previous exemplar is older than minAge or absent, build
// the replacement via the supplied builder. minAge <= 0 defaults to 7s.
func NewAgeSampler(minAge time.Duration, builder func(amount float64, now time.Time) Exemplar) Sampler {
	if minAge <= 0 {
		minAge = defaultExemplarMinAge
	}
	return &ageSampler{minAge: minAge, builder: builder}
}

func (s *ageSampler) Sample(amount float64, previous *Exemplar, now time.Time) *Exemplar {
	if previous != nil {
		if !previous.HasTimestamp {
			return nil
		}
		age := now.Sub(time.UnixMilli(previous.TimestampMillis))
		if age < s.minAge {
			return nil
		}
	}
	e := s.builder(amount, now)
	return &e
}
