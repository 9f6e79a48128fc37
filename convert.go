// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package globre

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/woozymasta/globre/peg"
)

// plainRunes are consumed in one gulp; they need no regex escaping.
const plainRunes = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

// convRoot translates a normalized glob into regex source fragments.
var convRoot = buildConvertGrammar()

// buildConvertGrammar assembles the glob-to-regex grammar. Alternation is
// ordered, so the most specific form wins at every position and anything
// unrecognized falls through to a literal match; the grammar as a whole can
// never fail.
func buildConvertGrammar() *peg.Rule {
	pass := func(text string) any { return text }
	emit := func(fragment string) peg.TextHandler {
		return func(string) any { return fragment }
	}
	escape := func(text string) any { return `\` + text }

	// An escape neutralizes the next character wholesale.
	escaped := peg.ReSub(`\\(.)`, func(groups []string) any {
		return regexp.QuoteMeta(groups[1])
	})

	// Globstars keep their path-crossing power only in separator context;
	// normalization has already demoted every other "**" to "*".
	starStarBetween := peg.Re(`/\*\*/`, emit(`(?:[\\/].+[\\/]|[\\/])`))
	starStarLeading := peg.Re(`^\*\*/`, emit(`(?:^|.*[\\/])`))
	starStarTrailing := peg.Re(`/\*\*\z`, emit(`(?:[\\/].*|$)`))
	starStar := peg.Re(`\*\*`, emit(`.*`))

	// A star never crosses a separator. Star-slash pairs fuse into one
	// fragment unless the slash belongs to a globstar coming right after.
	starSlash := peg.Re(`\*/(?!\*\*(?:/|\z))`, emit(`[^\\/]*[\\/]`))
	star := peg.Lit(`*`, emit(`[^\\/]*`))
	question := peg.Lit(`?`, emit(`[^\\/]`))

	// Character classes translate almost verbatim: negated classes also
	// exclude separators, escapes and well-ordered same-case ranges pass
	// through, everything else matches literally. An unterminated or empty
	// class falls back to literal brackets.
	classOpen := peg.Alt(
		peg.Re(`\[[!^]`, emit(`[^\\/`)),
		peg.Lit(`[`, emit(`[`)),
	)
	classEscaped := peg.ReSub(`\\(.)`, func(groups []string) any {
		r, _ := utf8.DecodeRuneInString(groups[1])
		if keepClassEscape(r) {
			return `\` + groups[1]
		}

		return regexp.QuoteMeta(groups[1])
	})
	classRange := peg.Re(`[a-z]-[a-z]|[A-Z]-[A-Z]|[0-9]-[0-9]`, func(text string) any {
		if text[0] <= text[2] {
			return text
		}

		return text[:1] + `\-` + text[2:]
	})
	classSpecial := peg.Re(`[-\[\^]`, escape)
	classOther := peg.Re(`[^\]]`, pass)
	class := peg.Seq(
		classOpen,
		peg.Plus(peg.Alt(classEscaped, classRange, classSpecial, classOther)),
		peg.Lit(`]`, emit(`]`)),
	)

	// Brace ranges expand inline and shadow plain brace alternation.
	rangeNumeric := peg.ReSub(`\{(\d+)\.\.(\d+)\}`, expandNumericRange)
	rangeAlphaLower := peg.ReSub(`\{([a-z]+)\.\.([a-z]+)\}`, expandAlphaRange)
	rangeAlphaUpper := peg.ReSub(`\{([A-Z]+)\.\.([A-Z]+)\}`, expandAlphaRange)

	separator := peg.Re(`[\\/]`, emit(`[\\/]`))
	plain := peg.Chars(plainRunes, pass)
	meta := peg.Re(`[$()+.^{}\[\]|]`, escape)
	other := peg.Raw(func(s *peg.State) bool {
		r, ok := s.Peek()
		if !ok {
			return false
		}

		s.Advance(1)
		s.Emit(string(r))

		return true
	})

	// Brace groups recurse through a late-bound self reference. Inside a
	// group the comma separates alternatives and the closing brace is
	// reserved, so the meta and fallback rules must leave it alone.
	var braces *peg.Rule
	bracesRef := peg.Lazy(func() *peg.Rule { return braces })
	braceMeta := peg.Re(`[$()+.^{\[\]|]`, escape)
	braceItem := peg.Alt(
		escaped,
		rangeNumeric,
		rangeAlphaLower,
		rangeAlphaUpper,
		bracesRef,
		starStarBetween,
		starStar,
		starSlash,
		star,
		question,
		class,
		separator,
		plain,
		peg.Lit(`,`, emit(`|`)),
		braceMeta,
		peg.Re(`[^}]`, pass),
	)
	braces = peg.Seq(
		peg.Lit(`{`, emit(`(?:`)),
		peg.Star(braceItem),
		peg.Lit(`}`, emit(`)`)),
	)

	body := peg.Star(peg.Alt(
		escaped,
		starStarBetween,
		starStarLeading,
		starStarTrailing,
		starStar,
		starSlash,
		star,
		question,
		class,
		rangeNumeric,
		rangeAlphaLower,
		rangeAlphaUpper,
		braces,
		separator,
		plain,
		meta,
		other,
	))

	// An odd count of leading bangs inverts the whole pattern; an even
	// count cancels out and is simply consumed.
	negate := func(values []any) any {
		return `(?!^` + joinText(values) + `$).*?`
	}

	return peg.Alt(
		peg.Handle(peg.Seq(peg.Re(`!(?:!!)*(?!!)`, nil), body), negate),
		peg.Seq(peg.Re(`(?:!!)+(?!!)`, nil), body),
		body,
	)
}

// convert translates a normalized glob into regex source.
func convert(glob string) string {
	out, err := peg.Parse(glob, convRoot)
	if err != nil {
		return regexp.QuoteMeta(glob)
	}

	return joinText(out)
}

// keepClassEscape reports whether a backslash escape keeps its backslash
// inside a character class. Alphanumeric escapes outside the known set are
// demoted to bare literals: regexp2 rejects unknown alphabetic escapes that
// JavaScript engines quietly accept.
func keepClassEscape(r rune) bool {
	if strings.ContainsRune(`dDwWsSnrtfvb0123456789`, r) {
		return true
	}

	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// joinText concatenates parser output fragments.
func joinText(values []any) string {
	var sb strings.Builder
	for _, v := range values {
		if text, ok := v.(string); ok {
			sb.WriteString(text)
		}
	}

	return sb.String()
}
