// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package globre

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// maxAlphaBoundLen caps alphabetic range bounds so their bijective
	// base-26 values stay well inside the int range.
	maxAlphaBoundLen = 12

	// maxRangeSpan caps how many alternatives one inline range may expand
	// to; wider ranges degrade to a literal match.
	maxRangeSpan = 4096
)

// expandNumericRange turns "{lo..hi}" captures into a regex alternation of
// every number in the inclusive range, in bound order. Numbers are
// zero-padded to the narrower bound's width. Bounds that do not parse, and
// ranges spanning more than maxRangeSpan values, degrade the whole token to
// a literal match.
func expandNumericRange(groups []string) any {
	lo, errLo := strconv.Atoi(groups[1])
	hi, errHi := strconv.Atoi(groups[2])
	if errLo != nil || errHi != nil || rangeTooWide(lo, hi) {
		return regexp.QuoteMeta(groups[0])
	}

	width := len(groups[1])
	if len(groups[2]) < width {
		width = len(groups[2])
	}

	var sb strings.Builder
	sb.WriteString(`(?:`)

	step := 1
	if hi < lo {
		step = -1
	}

	for n := lo; ; n += step {
		if n != lo {
			sb.WriteByte('|')
		}

		fmt.Fprintf(&sb, `%0*d`, width, n)
		if n == hi {
			break
		}
	}

	sb.WriteByte(')')

	return sb.String()
}

// expandAlphaRange turns "{lo..hi}" letter captures into a regex alternation
// over the bijective base-26 sequence between the bounds, in bound order.
// Both bounds arrive in the same case; oversized bounds and too-wide ranges
// degrade the token to a literal match.
func expandAlphaRange(groups []string) any {
	if len(groups[1]) > maxAlphaBoundLen || len(groups[2]) > maxAlphaBoundLen {
		return regexp.QuoteMeta(groups[0])
	}

	lo := alphaValue(groups[1])
	hi := alphaValue(groups[2])
	if rangeTooWide(lo, hi) {
		return regexp.QuoteMeta(groups[0])
	}

	upper := groups[1][0] >= 'A' && groups[1][0] <= 'Z'

	var sb strings.Builder
	sb.WriteString(`(?:`)

	step := 1
	if hi < lo {
		step = -1
	}

	for n := lo; ; n += step {
		if n != lo {
			sb.WriteByte('|')
		}

		sb.WriteString(alphaText(n, upper))
		if n == hi {
			break
		}
	}

	sb.WriteByte(')')

	return sb.String()
}

// rangeTooWide reports whether the inclusive range between the bounds holds
// more than maxRangeSpan values. Bounds are never negative here, so the
// difference cannot overflow.
func rangeTooWide(lo, hi int) bool {
	if hi < lo {
		lo, hi = hi, lo
	}

	return hi-lo >= maxRangeSpan
}

// alphaValue interprets letters as bijective base-26 digits, "a" = 1.
func alphaValue(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}

		v = v*26 + int(c-'a') + 1
	}

	return v
}

// alphaText renders a bijective base-26 value back into letters.
func alphaText(v int, upper bool) string {
	base := byte('a')
	if upper {
		base = 'A'
	}

	var buf [maxAlphaBoundLen]byte
	i := len(buf)
	for v > 0 {
		v--
		i--
		buf[i] = base + byte(v%26)
		v /= 26
	}

	return string(buf[i:])
}
