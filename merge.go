// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package globre

// MergeRules merges rule slices preserving input order and dropping exact
// duplicates, keeping the last occurrence of each.
//
// Keeping the last occurrence is safe under last-match-wins evaluation: for
// any path the surviving copy decides at the same or a later position than
// the dropped ones, so matcher decisions are unchanged.
func MergeRules(ruleSets ...[]Rule) []Rule {
	total := 0
	for _, set := range ruleSets {
		total += len(set)
	}

	flat := make([]Rule, 0, total)
	for _, set := range ruleSets {
		flat = append(flat, set...)
	}

	last := make(map[Rule]int, len(flat))
	for i, rule := range flat {
		last[rule] = i
	}

	out := make([]Rule, 0, len(last))
	for i, rule := range flat {
		if last[rule] == i {
			out = append(out, rule)
		}
	}

	return out
}
