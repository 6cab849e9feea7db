// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewGoCollector returns a Gatherer exposing Go runtime statistics
// (goroutines, GC pauses, memory), delegating to client_golang's own
// collector rather than re-deriving runtime/metrics plumbing by hand.
//
// Grounded on the teacher's go_metrics.go, which wrapped the same runtime
// stats manually; collectors.NewGoCollector supersedes that wrapper.
func NewGoCollector() Gatherer {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	return FromPrometheusGatherer(reg)
}

// NewProcessCollector returns a Gatherer exposing process-level statistics
// (RSS, open fds, CPU time), delegating to client_golang's own
// prometheus/procfs-backed collector.
//
// Grounded on the teacher's process_metrics.go/process_metrics_unix.go,
// which hand-rolled /proc parsing; collectors.NewProcessCollector
// supersedes that, pulling procfs in as an indirect dependency instead.
func NewProcessCollector() Gatherer {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return FromPrometheusGatherer(reg)
}

// RegisterDefaultCollectors registers the Go and process collectors into
// gatherer under the given namespaces.
func RegisterDefaultCollectors(gatherer MultiGatherer, goNamespace, processNamespace string) error {
	if err := gatherer.Register(goNamespace, NewGoCollector()); err != nil {
		return err
	}
	return gatherer.Register(processNamespace, NewProcessCollector())
}
