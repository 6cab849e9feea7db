// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "testing"

func TestValidateMetricName(t *testing.T) {
	cases := map[string]bool{
		"http_requests_total": true,
		"a:b_c":                true,
		"__reserved":           false,
		"1leading_digit":       false,
		"has space":            false,
		"":                     false,
	}
	for name, want := range cases {
		if got := IsValidMetricName(name); got != want {
			t.Errorf("IsValidMetricName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestValidateUserLabelNameRejectsReserved(t *testing.T) {
	for _, reserved := range []string{"le", "quantile", "state"} {
		if err := ValidateUserLabelName(reserved); err == nil {
			t.Errorf("expected error for reserved label name %q", reserved)
		}
	}
	if err := ValidateLabelName("le"); err != nil {
		t.Errorf("ValidateLabelName should not reject reserved names, writers own that check: %v", err)
	}
}

func TestValidateLabelsRejectsDuplicates(t *testing.T) {
	l := Labels{pairs: []LabelPair{{Name: "a", Value: "1"}, {Name: "a", Value: "2"}}}
	if err := ValidateLabels(l); err == nil {
		t.Fatalf("expected error for duplicate label name")
	}
}

func TestValidateLabelValueRejectsNUL(t *testing.T) {
	if err := ValidateLabelValue("a\x00b"); err == nil {
		t.Fatalf("expected error for NUL byte in label value")
	}
}
