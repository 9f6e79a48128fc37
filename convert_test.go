// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package globre

import "testing"

func TestConvertWildcards(t *testing.T) {
	t.Parallel()

	cases := []struct {
		glob string
		want string
	}{
		{"", ""},
		{"*.js", `[^\\/]*\.js`},
		{"?at", `[^\\/]at`},
		{"a/b", `a[\\/]b`},
		{"a/*/b", `a[\\/][^\\/]*[\\/]b`},

		{"**", `.*`},
		{"**/*.js", `(?:^|.*[\\/])[^\\/]*\.js`},
		{"a/**/b", `a(?:[\\/].+[\\/]|[\\/])b`},
		{"foo/**", `foo(?:[\\/].*|$)`},
		{"a/*/**", `a[\\/][^\\/]*(?:[\\/].*|$)`},
		{"a/*/**/b", `a[\\/][^\\/]*(?:[\\/].+[\\/]|[\\/])b`},
	}

	for _, tc := range cases {
		if got := convert(tc.glob); got != tc.want {
			t.Fatalf("convert(%q)=%q, want %q", tc.glob, got, tc.want)
		}
	}
}

func TestConvertClasses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		glob string
		want string
	}{
		{"[abc]", `[abc]`},
		{"[!a]", `[^\\/a]`},
		{"[^a]", `[^\\/a]`},
		{"[a-z0-9]", `[a-z0-9]`},
		{"[-a]", `[\-a]`},
		{`[a\]b]`, `[a\]b]`},
		{`[\d]`, `[\d]`},

		// Reversed and mixed-case ranges degrade to literal members.
		{"[z-a]", `[z\-a]`},
		{"[a-Z]", `[a\-Z]`},

		// Unknown alphabetic escapes lose the backslash.
		{`[\q]`, `[q]`},

		// Unterminated or empty brackets degrade to literals.
		{"[", `\[`},
		{"[]", `\[\]`},
		{"[!", `\[!`},
	}

	for _, tc := range cases {
		if got := convert(tc.glob); got != tc.want {
			t.Fatalf("convert(%q)=%q, want %q", tc.glob, got, tc.want)
		}
	}
}

func TestConvertBracesAndRanges(t *testing.T) {
	t.Parallel()

	cases := []struct {
		glob string
		want string
	}{
		{"file.{js,ts}", `file\.(?:js|ts)`},
		{"{a,{b,c}}", `(?:a|(?:b|c))`},
		{"x.{png,jp{,e}g}", `x\.(?:png|jp(?:|e)g)`},
		{"{*,a}", `(?:[^\\/]*|a)`},

		{"{1..3}", `(?:1|2|3)`},
		{"{3..1}", `(?:3|2|1)`},
		{"{08..11}", `(?:08|09|10|11)`},
		{"{a..c}", `(?:a|b|c)`},
		{"{A..C}", `(?:A|B|C)`},
		{"{y..ab}", `(?:y|z|aa|ab)`},
		{"f{1..3}.{a..b}", `f(?:1|2|3)\.(?:a|b)`},
		{"{x,{1..3}}", `(?:x|(?:1|2|3))`},

		// Unterminated braces degrade to literals.
		{"{", `\{`},
		{"{a", `\{a`},
		{"a}", `a\}`},
		{"{a,{b", `\{a,\{b`},
	}

	for _, tc := range cases {
		if got := convert(tc.glob); got != tc.want {
			t.Fatalf("convert(%q)=%q, want %q", tc.glob, got, tc.want)
		}
	}
}

func TestConvertEscapesAndMeta(t *testing.T) {
	t.Parallel()

	cases := []struct {
		glob string
		want string
	}{
		{`\*`, `\*`},
		{`\{a,b\}`, `\{a,b\}`},
		{`\n`, `n`},
		{".hidden", `\.hidden`},
		{"a+b(c)", `a\+b\(c\)`},
		{"a|b", `a\|b`},
		{"a!b", `a!b`},
		{"héllo", `héllo`},
		{`\`, `[\\/]`},
	}

	for _, tc := range cases {
		if got := convert(tc.glob); got != tc.want {
			t.Fatalf("convert(%q)=%q, want %q", tc.glob, got, tc.want)
		}
	}
}

func TestConvertNegation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		glob string
		want string
	}{
		{"!foo", `(?!^foo$).*?`},
		{"!!foo", `foo`},
		{"!!!foo", `(?!^foo$).*?`},
		{"!", `(?!^$).*?`},
		{"!!", ``},
		{"!*.js", `(?!^[^\\/]*\.js$).*?`},
	}

	for _, tc := range cases {
		if got := convert(tc.glob); got != tc.want {
			t.Fatalf("convert(%q)=%q, want %q", tc.glob, got, tc.want)
		}
	}
}
