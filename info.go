// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

// Info carries no numeric state: it always serializes with value 1, and
// its label combination is the payload (spec 4.C, 4.G: "Info metrics
// always carry value 1 when serialized").
type Info struct{}

func (Info) collect(labels Labels) Point {
	return Point{Labels: labels, Value: 1}
}
