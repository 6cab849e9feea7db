// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"fmt"
	"sort"
	"sync"
)

// Gatherer produces a snapshot of the metrics it owns. *Registry satisfies
// this, as does anything wrapping an external collector (spec's
// external-collaborator boundary, e.g. the prometheus interop adapter).
type Gatherer interface {
	Gather() (MetricSnapshots, error)
}

// Gatherers is a helper type for slices of gatherers.
type Gatherers []Gatherer

// MultiGatherer extends Gatherer by allowing additional gatherers to be
// registered and deregistered under a namespace at runtime, the shape an
// application uses to compose its own metrics with a library's.
type MultiGatherer interface {
	Gatherer

	// Register adds the outputs of gatherer to the results of future calls
	// to Gather with the provided namespace added to the metrics.
	Register(namespace string, gatherer Gatherer) error

	// Deregister removes the outputs of a gatherer with namespace from the
	// results of future calls to Gather. Returns true if a gatherer with
	// namespace was found.
	Deregister(namespace string) bool
}

// NewMultiGatherer returns a new MultiGatherer that merges metrics by
// namespace, without renaming them.
func NewMultiGatherer() MultiGatherer {
	return &multiGatherer{
		gatherers: make(map[string]Gatherer),
	}
}

type multiGatherer struct {
	lock      sync.RWMutex
	gatherers map[string]Gatherer
}

func (g *multiGatherer) Gather() (MetricSnapshots, error) {
	g.lock.RLock()
	defer g.lock.RUnlock()

	var result MetricSnapshots
	for _, gatherer := range g.gatherers {
		snaps, err := gatherer.Gather()
		if err != nil {
			return nil, err
		}
		result = append(result, snaps...)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Metadata.Name < result[j].Metadata.Name
	})

	return result, nil
}

func (g *multiGatherer) Register(namespace string, gatherer Gatherer) error {
	g.lock.Lock()
	defer g.lock.Unlock()

	if _, exists := g.gatherers[namespace]; exists {
		return fmt.Errorf("gatherer already registered for namespace: %s", namespace)
	}
	g.gatherers[namespace] = gatherer
	return nil
}

func (g *multiGatherer) Deregister(namespace string) bool {
	g.lock.Lock()
	defer g.lock.Unlock()

	_, exists := g.gatherers[namespace]
	delete(g.gatherers, namespace)
	return exists
}

// MakeAndRegister creates a new registry and registers it with the
// gatherer under namespace.
func MakeAndRegister(gatherer MultiGatherer, namespace string) (*Registry, error) {
	reg := NewRegistry()
	if err := gatherer.Register(namespace, reg); err != nil {
		return nil, fmt.Errorf("couldn't register %q metrics: %w", namespace, err)
	}
	return reg, nil
}

// NewPrefixGatherer returns a new MultiGatherer that prefixes every
// registered gatherer's metric names with its namespace.
func NewPrefixGatherer() MultiGatherer {
	return &prefixGatherer{
		multiGatherer: multiGatherer{
			gatherers: make(map[string]Gatherer),
		},
	}
}

type prefixGatherer struct {
	multiGatherer
}

func (g *prefixGatherer) Gather() (MetricSnapshots, error) {
	g.lock.RLock()
	defer g.lock.RUnlock()

	var result MetricSnapshots
	for namespace, gatherer := range g.gatherers {
		snaps, err := gatherer.Gather()
		if err != nil {
			return nil, err
		}
		for _, snap := range snaps {
			snap.Metadata.Name = namespace + "_" + snap.Metadata.Name
			result = append(result, snap)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Metadata.Name < result[j].Metadata.Name
	})

	return result, nil
}
