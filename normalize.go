// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package globre

import (
	"github.com/woozymasta/globre/peg"
)

// normRoot rewrites redundant globstars before conversion.
var normRoot = buildNormalizeGrammar()

// buildNormalizeGrammar assembles the glob clean-up grammar:
//   - escaped characters pass through untouched
//   - runs of three or more stars collapse to one star
//   - "**" keeps globstar meaning only when bounded on the left by one of
//     "/ { [ ( !" (or the pattern start) and on the right by one of
//     "* / ) ] }" (or the pattern end); otherwise it collapses to "*"
func buildNormalizeGrammar() *peg.Rule {
	pass := func(text string) any { return text }
	star := func(string) any { return "*" }

	escaped := peg.Re(`\\.`, pass)
	starRun := peg.Re(`\*{3,}`, star)
	starStarNoLeft := peg.Re(`(?<=[^/{\[(!])\*\*`, star)
	starStarNoRight := peg.Re(`\*\*(?=[^*/)\]}])`, star)
	other := peg.Raw(func(s *peg.State) bool {
		r, ok := s.Peek()
		if !ok {
			return false
		}

		s.Advance(1)
		s.Emit(string(r))

		return true
	})

	return peg.Star(peg.Alt(escaped, starRun, starStarNoLeft, starStarNoRight, other))
}

// normalize rewrites a raw glob into its canonical form. It is idempotent:
// normalizing a normalized glob returns it unchanged.
func normalize(glob string) string {
	out, err := peg.Parse(glob, normRoot)
	if err != nil {
		return glob
	}

	return joinText(out)
}
