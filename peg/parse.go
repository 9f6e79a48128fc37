// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package peg

import "fmt"

// Options controls one parse call.
type Options struct {
	// Memoize enables packrat caching of (rule, index) outcomes. Parse
	// enables it; disable it for handlers with side effects that must run
	// on every attempt, or to measure raw backtracking cost. Either way
	// the parse outcome is identical.
	Memoize bool
}

// ParseError reports a failed parse.
type ParseError struct {
	// Index is the furthest rune index any attempt reached; a best-effort
	// diagnostic position, not always the true point of failure.
	Index int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse at index %d", e.Index)
}

// Parse matches root against input with memoization enabled and returns the
// accumulated output values. The whole input must be consumed: a root match
// that stops short fails with a *ParseError.
func Parse(input string, root *Rule) ([]any, error) {
	return ParseWithOptions(input, root, Options{Memoize: true})
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(input string, root *Rule, opts Options) ([]any, error) {
	s := &State{
		input:   []rune(input),
		memoize: opts.Memoize,
	}
	if opts.Memoize {
		s.memos = make(map[*Rule]*ruleMemo)
	}

	if root.match(s) && s.index == len(s.input) {
		return s.output, nil
	}

	index := s.index
	if s.backtrackMax > index {
		index = s.backtrackMax
	}

	return nil, &ParseError{Index: index}
}

// Validate reports whether root matches and fully consumes input.
func Validate(input string, root *Rule) bool {
	_, err := Parse(input, root)
	return err == nil
}
