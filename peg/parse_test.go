// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package peg

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRequiresFullConsumption(t *testing.T) {
	t.Parallel()

	root := Seq(Lit("a", passText), Lit("b", passText))

	if _, err := Parse("ab", root); err != nil {
		t.Fatalf("Parse(ab): %v", err)
	}

	_, err := Parse("abc", root)
	if err == nil {
		t.Fatalf("Parse(abc) must fail on trailing input")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type %T, want *ParseError", err)
	}

	if perr.Index != 2 {
		t.Fatalf("ParseError.Index=%d, want 2", perr.Index)
	}

	if got, want := perr.Error(), "failed to parse at index 2"; got != want {
		t.Fatalf("Error()=%q, want %q", got, want)
	}
}

func TestParseBacktrackingDoesNotLeakOutput(t *testing.T) {
	t.Parallel()

	a := Lit("a", passText)
	b := Lit("b", passText)
	c := Lit("c", passText)
	d := Lit("d", passText)

	root := Alt(Seq(a, b, c), Seq(a, b, d))

	got, err := Parse("abd", root)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Only fragments of the second alternative may survive; the failed
	// first attempt must be rolled back completely.
	if diff := cmp.Diff([]any{"a", "b", "d"}, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMemoizationIsObservablyTransparent(t *testing.T) {
	t.Parallel()

	build := func() *Rule {
		a := Lit("a", passText)
		b := Lit("b", passText)
		return Alt(
			Seq(a, b, Lit("c", passText)),
			Seq(a, b, Lit("d", passText)),
			Seq(a, Lit("bd", passText)),
		)
	}

	for _, input := range []string{"abc", "abd", "abd", "abx"} {
		root := build()

		memoized, memoErr := ParseWithOptions(input, root, Options{Memoize: true})
		plain, plainErr := ParseWithOptions(input, root, Options{Memoize: false})

		if (memoErr == nil) != (plainErr == nil) {
			t.Fatalf("Parse(%q): outcome differs: memoized err=%v, plain err=%v", input, memoErr, plainErr)
		}

		if diff := cmp.Diff(plain, memoized); diff != "" {
			t.Fatalf("Parse(%q) output differs (-plain +memoized):\n%s", input, diff)
		}
	}
}

func TestParseMemoizationServesRepeatedPositions(t *testing.T) {
	t.Parallel()

	calls := 0
	a := Lit("a", func(text string) any {
		calls++
		return text
	})

	// Both alternatives start with the same rule at index 0: the second
	// attempt must replay the memo instead of re-running the handler.
	root := Alt(Seq(a, Lit("x", nil)), Seq(a, Lit("y", nil)))

	if _, err := Parse("ay", root); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if calls != 1 {
		t.Fatalf("handler ran %d times with memoization, want 1", calls)
	}

	calls = 0
	if _, err := ParseWithOptions("ay", root, Options{}); err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}

	if calls != 2 {
		t.Fatalf("handler ran %d times without memoization, want 2", calls)
	}
}

func TestParseErrorReportsDeepestIndex(t *testing.T) {
	t.Parallel()

	root := Alt(
		Seq(Lit("a", nil), Lit("b", nil), Lit("c", nil)),
		Lit("z", nil),
	)

	_, err := Parse("abx", root)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type %T, want *ParseError", err)
	}

	// The first alternative reached index 2 before failing; the final
	// cursor rolled back to 0, but diagnostics keep the deepest point.
	if perr.Index != 2 {
		t.Fatalf("ParseError.Index=%d, want 2", perr.Index)
	}
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	got, err := Parse("", Star(Lit("a", passText)))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(got) != 0 {
		t.Fatalf("output=%v, want empty", got)
	}

	if _, err := Parse("", Lit("a", nil)); err == nil {
		t.Fatalf("Parse must fail when a required rule finds no input")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	root := Plus(Chars("ab", nil))

	if !Validate("abab", root) {
		t.Fatalf("Validate(abab) must succeed")
	}

	if Validate("abz", root) {
		t.Fatalf("Validate(abz) must fail on trailing input")
	}

	if Validate("", root) {
		t.Fatalf("Validate(empty) must fail a one-or-more rule")
	}
}
