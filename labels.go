// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"sort"
	"strings"
)

// Labels is an immutable, canonically ordered set of name/value pairs.
//
// Two label sets are equal iff they contain the same pairs; the canonical
// form used for iteration, hashing and rendering is sorted by name
// ascending. Construct one with NewLabels or FromPairs; there is no way to
// mutate a Labels value in place.
type Labels struct {
	pairs []LabelPair
}

// LabelPair is a single name/value label.
type LabelPair struct {
	Name  string
	Value string
}

// EmptyLabels is the canonical empty label set.
var EmptyLabels = Labels{}

// NewLabels builds a Labels value from alternating name/value arguments.
// It panics if the argument count is odd; use Validate (via the metric
// builders) to turn caller errors into the InvalidLabel error kind instead.
func NewLabels(nameValue ...string) Labels {
	if len(nameValue)%2 != 0 {
		panic("metric: NewLabels requires an even number of arguments")
	}
	pairs := make([]LabelPair, 0, len(nameValue)/2)
	for i := 0; i < len(nameValue); i += 2 {
		pairs = append(pairs, LabelPair{Name: nameValue[i], Value: nameValue[i+1]})
	}
	return FromPairs(pairs)
}

// FromPairs builds a Labels value from a slice of pairs, sorting into
// canonical order and copying the backing slice so the caller's slice
// remains mutable without affecting the result.
func FromPairs(pairs []LabelPair) Labels {
	if len(pairs) == 0 {
		return EmptyLabels
	}
	cp := make([]LabelPair, len(pairs))
	copy(cp, pairs)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Name < cp[j].Name })
	return Labels{pairs: cp}
}

// FromMap builds a Labels value from a map, in canonical (sorted) order.
func FromMap(m map[string]string) Labels {
	if len(m) == 0 {
		return EmptyLabels
	}
	pairs := make([]LabelPair, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, LabelPair{Name: k, Value: v})
	}
	return FromPairs(pairs)
}

// Len returns the number of label pairs.
func (l Labels) Len() int { return len(l.pairs) }

// Pairs returns the label pairs in canonical (name-ascending) order. The
// returned slice must not be mutated by the caller.
func (l Labels) Pairs() []LabelPair { return l.pairs }

// Get returns the value for name and whether it was present.
func (l Labels) Get(name string) (string, bool) {
	for _, p := range l.pairs {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Merge combines l with other, failing if the two sets share a label name.
func (l Labels) Merge(other Labels) (Labels, error) {
	if l.Len() == 0 {
		return other, nil
	}
	if other.Len() == 0 {
		return l, nil
	}
	merged := make([]LabelPair, 0, l.Len()+other.Len())
	merged = append(merged, l.pairs...)
	for _, p := range other.pairs {
		if _, ok := l.Get(p.Name); ok {
			return Labels{}, &Error{Kind: InvalidLabel, msg: "duplicate label name " + strconvQuote(p.Name)}
		}
		merged = append(merged, p)
	}
	return FromPairs(merged), nil
}

// Equal reports whether l and other contain the same set of pairs,
// independent of construction order.
func (l Labels) Equal(other Labels) bool {
	if l.Len() != other.Len() {
		return false
	}
	for i, p := range l.pairs {
		if other.pairs[i] != p {
			return false
		}
	}
	return true
}

// combinedCharCount returns the total UTF-8 rune count across all names and
// values, used by the exemplar size rule (spec: <=128 combined chars).
func (l Labels) combinedCharCount() int {
	n := 0
	for _, p := range l.pairs {
		n += len([]rune(p.Name)) + len([]rune(p.Value))
	}
	return n
}

// escapeValue backslash-escapes '\', '"' and '\n' in a label value, per the
// common exposition-format escaping rule (spec section 4.G).
var escapeValue = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func strconvQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(s)
	b.WriteByte('"')
	return b.String()
}
