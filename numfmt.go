// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"math"
	"strconv"
)

// appendFloat appends the shortest round-trip decimal rendering of v,
// using the exposition formats' special spellings for the non-finite
// values (spec 4.G "Common numeric rendering"). Magnitudes in [1e-4, 1e21)
// are written without an exponent; smaller or larger ones use exponent form.
func appendFloat(buf []byte, v float64) []byte {
	switch {
	case math.IsNaN(v):
		return append(buf, "NaN"...)
	case math.IsInf(v, 1):
		return append(buf, "+Inf"...)
	case math.IsInf(v, -1):
		return append(buf, "-Inf"...)
	default:
		if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e21) {
			return strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		return strconv.AppendFloat(buf, v, 'f', -1, 64)
	}
}

// appendSum behaves like appendFloat but keeps a trailing ".0" on whole
// finite values, the one exception the format calls out for _sum/_gsum
// lines so an observed sum of exactly e.g. 12 isn't misread as an integer
// counter value by naive consumers.
func appendSum(buf []byte, v float64) []byte {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return appendFloat(buf, v)
	}
	start := len(buf)
	buf = appendFloat(buf, v)
	for _, b := range buf[start:] {
		if b == '.' || b == 'e' || b == 'E' {
			return buf
		}
	}
	return append(buf, '.', '0')
}

// appendTimestampSeconds appends a millisecond epoch timestamp rendered as
// seconds with three decimal places (spec: "millis / 1000.0, stable
// formatting").
func appendTimestampSeconds(buf []byte, millis int64) []byte {
	u := uint64(millis)
	if millis < 0 {
		buf = append(buf, '-')
		u = -u
	}
	seconds := u / 1000
	frac := u % 1000
	buf = strconv.AppendUint(buf, seconds, 10)
	buf = append(buf, '.')
	if frac < 100 {
		buf = append(buf, '0')
	}
	if frac < 10 {
		buf = append(buf, '0')
	}
	return strconv.AppendUint(buf, frac, 10)
}

// appendUint appends a non-negative integer counter/bucket value.
func appendUint(buf []byte, v uint64) []byte {
	return strconv.AppendUint(buf, v, 10)
}
