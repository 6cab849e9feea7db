// Copyright (C) 2020-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

// appendLabelBraces writes "{name=\"value\",...}" for base's pairs followed
// by extra (e.g. the synthetic le/quantile/state label), or nothing at all
// if both are empty (spec 4.G: "Labels are absent if empty").
func appendLabelBraces(buf []byte, base Labels, extra ...LabelPair) []byte {
	pairs := base.Pairs()
	if len(pairs) == 0 && len(extra) == 0 {
		return buf
	}
	buf = append(buf, '{')
	first := true
	for _, p := range pairs {
		if !first {
			buf = append(buf, ',')
		}
		first = false
		buf = append(buf, p.Name...)
		buf = append(buf, '=', '"')
		buf = appendEscaped(buf, escapeLabelValue, p.Value)
		buf = append(buf, '"')
	}
	for _, p := range extra {
		if !first {
			buf = append(buf, ',')
		}
		first = false
		buf = append(buf, p.Name...)
		buf = append(buf, '=', '"')
		buf = appendEscaped(buf, escapeLabelValue, p.Value)
		buf = append(buf, '"')
	}
	return append(buf, '}')
}
