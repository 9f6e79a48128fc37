// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package peg

// State is the mutable cursor of one parse call.
//
// A State is created by Parse and discarded when it returns; it is not safe
// for concurrent use. Rule values, by contrast, are immutable and may drive
// any number of parses at once, each with its own State.
type State struct {
	// input is the full text being parsed.
	input []rune
	// output accumulates handler-produced values in match order.
	output []any
	// memos holds per-rule packrat tables keyed by rule identity.
	memos map[*Rule]*ruleMemo
	// index is the current cursor position in input.
	index int
	// backtrackMax is the deepest index reached by any failed attempt.
	backtrackMax int
	// memoize reports whether packrat caching is enabled for this call.
	memoize bool
}

// Index returns the current cursor position in runes.
func (s *State) Index() int {
	return s.index
}

// Len returns the total input length in runes.
func (s *State) Len() int {
	return len(s.input)
}

// Peek returns the rune at the cursor without consuming it.
func (s *State) Peek() (rune, bool) {
	if s.index >= len(s.input) {
		return 0, false
	}

	return s.input[s.index], true
}

// Advance moves the cursor forward by n runes, clamped to the input end.
func (s *State) Advance(n int) {
	s.index += n
	if s.index > len(s.input) {
		s.index = len(s.input)
	}
}

// Emit appends one produced value to the parse output.
func (s *State) Emit(v any) {
	s.output = append(s.output, v)
}

// Rest returns the unconsumed input. The slice aliases parser memory and
// must not be modified.
func (s *State) Rest() []rune {
	return s.input[s.index:]
}

// attempt runs one matcher, restoring cursor and output on failure and
// recording the deepest index reached for diagnostics.
func (s *State) attempt(core MatchFunc) bool {
	index := s.index
	mark := len(s.output)

	if core(s) {
		return true
	}

	if s.index > s.backtrackMax {
		s.backtrackMax = s.index
	}

	s.index = index
	s.output = s.output[:mark]

	return false
}
