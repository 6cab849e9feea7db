// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "strings"

// escapeLabelValue backslash-escapes '\', '"' and '\n' in a label value.
// Both exposition formats agree on this rule (spec 4.G).
var escapeLabelValue = escapeValue

// escapeHelpOpenMetrics escapes '\', '"' and '\n' in HELP text, per the
// OpenMetrics writer's stricter rule (spec 4.G.1).
var escapeHelpOpenMetrics = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// escapeHelpPrometheus escapes '\' and '\n' but leaves '"' raw, per the
// Prometheus writer's rule (spec 4.G.2).
var escapeHelpPrometheus = strings.NewReplacer(`\`, `\\`, "\n", `\n`)

func appendEscaped(buf []byte, r *strings.Replacer, s string) []byte {
	return append(buf, r.Replace(s)...)
}
