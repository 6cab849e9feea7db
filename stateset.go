// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "sync"

// StateSet holds an ordered list of named boolean states. Insertion order
// is preserved for collect (spec 4.G: "state lines are emitted in the
// order the states were added"). Having more than one state true at a time
// is legal and not enforced against.
type StateSet struct {
	mu     sync.RWMutex
	order  []string
	values map[string]bool
}

// NewStateSet builds a StateSet from the given state names, all initially
// false. It requires at least one name and rejects duplicates.
func NewStateSet(names ...string) (*StateSet, error) {
	if len(names) == 0 {
		return nil, newError(MissingRequired, "stateset requires at least one state")
	}
	values := make(map[string]bool, len(names))
	order := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := values[n]; ok {
			return nil, newError(InvalidLabel, "duplicate state name "+strconvQuote(n))
		}
		values[n] = false
		order = append(order, n)
	}
	return &StateSet{order: order, values: values}, nil
}

// Set sets the named state's boolean value. It returns an error if name
// was not one of the states the set was constructed with.
func (s *StateSet) Set(name string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[name]; !ok {
		return newError(InvalidLabel, "unknown state "+strconvQuote(name))
	}
	s.values[name] = enabled
	return nil
}

// SetExclusive sets name true and every other state false, in one atomic
// step with respect to concurrent readers.
func (s *StateSet) SetExclusive(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[name]; !ok {
		return newError(InvalidLabel, "unknown state "+strconvQuote(name))
	}
	for k := range s.values {
		s.values[k] = k == name
	}
	return nil
}

func (s *StateSet) collect(labels Labels) Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	states := make([]StateValue, len(s.order))
	for i, name := range s.order {
		states[i] = StateValue{Name: name, Enabled: s.values[name]}
	}
	return Point{Labels: labels, States: states}
}
