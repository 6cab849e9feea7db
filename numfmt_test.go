// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"math"
	"testing"
)

func TestAppendFloatSpecialValues(t *testing.T) {
	cases := map[float64]string{
		math.NaN():        "NaN",
		math.Inf(1):       "+Inf",
		math.Inf(-1):      "-Inf",
		1.1:                "1.1",
		0:                  "0",
	}
	for v, want := range cases {
		got := string(appendFloat(nil, v))
		if got != want {
			t.Errorf("appendFloat(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestAppendSumKeepsTrailingDotZeroOnWholeNumbers(t *testing.T) {
	if got := string(appendSum(nil, 12)); got != "12.0" {
		t.Errorf("appendSum(12) = %q, want %q", got, "12.0")
	}
	if got := string(appendSum(nil, 12.5)); got != "12.5" {
		t.Errorf("appendSum(12.5) = %q, want %q", got, "12.5")
	}
	if got := string(appendSum(nil, math.Inf(1))); got != "+Inf" {
		t.Errorf("appendSum(+Inf) = %q, want %q", got, "+Inf")
	}
}

func TestAppendTimestampSeconds(t *testing.T) {
	if got := string(appendTimestampSeconds(nil, 1672850685829)); got != "1672850685.829" {
		t.Errorf("got %q, want %q", got, "1672850685.829")
	}
}

func TestAppendTimestampSecondsNegativeMillis(t *testing.T) {
	if got := string(appendTimestampSeconds(nil, -500)); got != "-0.500" {
		t.Errorf("got %q, want %q", got, "-0.500")
	}
}
