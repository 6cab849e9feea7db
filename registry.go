// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// family holds one metric's metadata plus its live per-label-combination
// cells. Every lookup of a label combination, and every insert of a new
// one, takes mu; the cell map is not read lock-free.
type family struct {
	metadata MetricMetadata

	mu    sync.Mutex
	order []Labels          // insertion order, mirrored into cells below
	cells map[string]any    // keyed by a canonical label fingerprint
}

// Registry is an append-only, name-indexed collection of metric families.
// The top-level name->family map is swapped copy-on-write so Gather never
// blocks on registration; each family then guards its label-combination
// lookups and inserts with a small mutex, so looking up an already-created
// cell also takes that lock. Updates to a cell obtained from a lookup are
// lock-free.
//
// Grounded on luxfi-metric/registry.go's wrapping of a concurrent
// registration map and prometheus_adapter.go's Gatherer-shaped read path,
// generalized to produce this package's own MetricSnapshots.
type Registry struct {
	mu     sync.Mutex
	byName atomic.Pointer[map[string]*family]
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	r := &Registry{}
	empty := make(map[string]*family)
	r.byName.Store(&empty)
	return r
}

func (r *Registry) snapshotMap() map[string]*family {
	return *r.byName.Load()
}

// register installs a new family under metadata.Name, failing if a family
// with that name already exists or the metadata is invalid.
func (r *Registry) register(md MetricMetadata) (*family, error) {
	if err := md.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.snapshotMap()
	if _, exists := cur[md.Name]; exists {
		return nil, newError(InvalidName, "metric "+strconvQuote(md.Name)+" already registered")
	}
	f := &family{metadata: md, cells: make(map[string]any)}
	next := make(map[string]*family, len(cur)+1)
	for k, v := range cur {
		next[k] = v
	}
	next[md.Name] = f
	r.byName.Store(&next)
	return f, nil
}

// fingerprint produces a canonical string key for a label combination.
// Labels are already sorted; joining name=value pairs with a separator not
// legal in either is sufficient.
func fingerprint(l Labels) string {
	if l.Len() == 0 {
		return ""
	}
	var b []byte
	for _, p := range l.Pairs() {
		b = append(b, p.Name...)
		b = append(b, '=')
		b = append(b, p.Value...)
		b = append(b, '\x00')
	}
	return string(b)
}

// getOrCreate returns the existing cell for labels, or builds one with
// newCell under f's mutex if this is the first use of that combination.
func getOrCreate[T any](f *family, labels Labels, newCell func() T) (T, error) {
	var zero T
	if err := ValidateLabels(labels); err != nil {
		return zero, err
	}
	key := fingerprint(labels)

	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.cells[key]; ok {
		return existing.(T), nil
	}
	cell := newCell()
	f.cells[key] = cell
	f.order = append(f.order, labels)
	return cell, nil
}

// GatherAt produces an immutable snapshot of every registered family, as
// of the moment it runs. Collect ordering for a family's points follows
// first-use order of each label combination, which is the caller ordering
// the writers rely on (spec 4.G: "the writer does NOT sort data records").
// The time argument is ignored: created timestamps are fixed when each cell
// is constructed, and no cell reads a clock at collect.
func (r *Registry) GatherAt(time.Time) MetricSnapshots {
	cur := r.snapshotMap()
	names := make([]string, 0, len(cur))
	for name := range cur {
		names = append(names, name)
	}
	// Registration order isn't tracked on the top-level map (it's a plain
	// map for O(1) lookup); fall back to name order, which is stable and
	// deterministic across runs even though it isn't "registration order".
	sort.Strings(names)

	snaps := make(MetricSnapshots, 0, len(names))
	for _, name := range names {
		f := cur[name]
		snaps = append(snaps, f.collect())
	}
	return snaps
}

// Gather implements the Gatherer interface by snapshotting at the current
// wall-clock time. It never fails; the error return exists so Registry can
// sit behind the same interface as gatherers that wrap fallible external
// collectors (spec's external-collaborator boundary).
func (r *Registry) Gather() (MetricSnapshots, error) {
	return r.GatherAt(time.Now()), nil
}

func (f *family) collect() MetricSnapshot {
	f.mu.Lock()
	order := append([]Labels(nil), f.order...)
	cells := make([]any, len(order))
	for i, l := range order {
		cells[i] = f.cells[fingerprint(l)]
	}
	f.mu.Unlock()

	points := make([]Point, len(order))
	for i, cell := range cells {
		points[i] = collectCell(cell, order[i])
	}
	return MetricSnapshot{Metadata: f.metadata, Points: points}
}

func collectCell(cell any, labels Labels) Point {
	switch c := cell.(type) {
	case *Counter:
		return c.collect(labels)
	case *Gauge:
		return c.collect(labels)
	case *Histogram:
		return c.collect(labels)
	case *Summary:
		return c.collect(labels)
	case Info:
		return c.collect(labels)
	case *StateSet:
		return c.collect(labels)
	case *Unknown:
		return c.collect(labels)
	default:
		return Point{Labels: labels}
	}
}
