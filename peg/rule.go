// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package peg

import (
	"sync"

	"github.com/dlclark/regexp2"
)

// MatchFunc attempts a match at the current State cursor. It returns true
// and advances the cursor on success. The surrounding rule restores cursor
// and output on failure, so implementations may leave partial effects behind
// when they return false.
type MatchFunc func(s *State) bool

// TextHandler converts matched text into an output value.
// A nil return drops the match from the output.
type TextHandler func(text string) any

// CapturesHandler converts regex capture groups into an output value;
// groups[0] is the whole match. A nil return drops the match.
type CapturesHandler func(groups []string) any

// OutputHandler folds the output values produced by a wrapped rule into one
// value. A nil return drops them all.
type OutputHandler func(values []any) any

// Rule is one executable grammar node.
//
// Rules are built through the package constructors and never mutated
// afterwards; identity (the pointer) keys the per-parse memo table, so a
// rule reused across a grammar shares one memo slot while equal rules built
// separately stay distinct.
type Rule struct {
	match MatchFunc
}

// newRule wraps a core matcher with backtracking and memoization.
func newRule(core MatchFunc) *Rule {
	r := &Rule{}
	r.match = func(s *State) bool {
		if s.memoize {
			return s.memoized(r, core)
		}

		return s.attempt(core)
	}

	return r
}

// Lit matches the exact text at the cursor.
func Lit(text string, h TextHandler) *Rule {
	want := []rune(text)

	return newRule(func(s *State) bool {
		if len(want) > len(s.input)-s.index {
			return false
		}

		for i, r := range want {
			if s.input[s.index+i] != r {
				return false
			}
		}

		s.index += len(want)
		emitText(s, h, text)

		return true
	})
}

// Chars matches the maximal run of one or more runes drawn from set.
// It panics on an empty set: that is a grammar-construction error.
func Chars(set string, h TextHandler) *Rule {
	if set == "" {
		panic("peg: Chars called with empty set")
	}

	members := make(map[rune]struct{}, len(set))
	for _, r := range set {
		members[r] = struct{}{}
	}

	return newRule(func(s *State) bool {
		start := s.index
		for s.index < len(s.input) {
			if _, ok := members[s.input[s.index]]; !ok {
				break
			}

			s.index++
		}

		if s.index == start {
			return false
		}

		emitText(s, h, string(s.input[start:s.index]))

		return true
	})
}

// Re matches pattern exactly at the cursor, never scanning forward. The
// pattern is compiled once with regexp2 semantics and the Singleline flag
// ("." matches any rune); lookaround may inspect input on either side of
// the cursor. Re panics on an invalid pattern, like regexp.MustCompile.
func Re(pattern string, h TextHandler) *Rule {
	re := regexp2.MustCompile(pattern, regexp2.Singleline)

	return newRule(func(s *State) bool {
		m, err := re.FindRunesMatchStartingAt(s.input, s.index)
		if err != nil || m == nil || m.Index != s.index {
			return false
		}

		s.index += m.Length
		emitText(s, h, m.String())

		return true
	})
}

// ReSub is Re with capture groups: the handler receives every group,
// groups[0] being the whole match. Groups that did not participate in the
// match come through as empty strings.
func ReSub(pattern string, h CapturesHandler) *Rule {
	re := regexp2.MustCompile(pattern, regexp2.Singleline)

	return newRule(func(s *State) bool {
		m, err := re.FindRunesMatchStartingAt(s.input, s.index)
		if err != nil || m == nil || m.Index != s.index {
			return false
		}

		s.index += m.Length
		if h != nil {
			groups := m.Groups()
			texts := make([]string, len(groups))
			for i := range groups {
				texts[i] = groups[i].String()
			}

			if v := h(texts); v != nil {
				s.Emit(v)
			}
		}

		return true
	})
}

// Seq matches every rule in order; it fails as a whole if any part fails.
func Seq(rules ...*Rule) *Rule {
	return newRule(func(s *State) bool {
		for _, r := range rules {
			if !r.match(s) {
				return false
			}
		}

		return true
	})
}

// Alt tries rules in order and commits to the first that matches.
func Alt(rules ...*Rule) *Rule {
	return newRule(func(s *State) bool {
		for _, r := range rules {
			if r.match(s) {
				return true
			}
		}

		return false
	})
}

// Rep matches rule greedily between min and max times; max < 0 means
// unbounded. An iteration that succeeds without consuming input counts once
// and stops the loop, so nullable rules cannot spin forever.
func Rep(rule *Rule, min, max int) *Rule {
	return newRule(func(s *State) bool {
		count := 0
		for max < 0 || count < max {
			before := s.index
			if !rule.match(s) {
				break
			}

			count++
			if s.index == before {
				break
			}
		}

		return count >= min
	})
}

// Opt matches rule zero or one time.
func Opt(rule *Rule) *Rule {
	return Rep(rule, 0, 1)
}

// Star matches rule zero or more times.
func Star(rule *Rule) *Rule {
	return Rep(rule, 0, -1)
}

// Plus matches rule one or more times.
func Plus(rule *Rule) *Rule {
	return Rep(rule, 1, -1)
}

// Lazy defers rule resolution to first use, so a grammar can reference a
// rule defined later and recurse into itself. The supplier runs exactly
// once; its result is reused for every subsequent match.
func Lazy(resolve func() *Rule) *Rule {
	if resolve == nil {
		panic("peg: Lazy called with nil supplier")
	}

	var (
		once sync.Once
		rule *Rule
	)

	return newRule(func(s *State) bool {
		once.Do(func() {
			rule = resolve()
		})

		return rule.match(s)
	})
}

// Raw wraps a custom matcher as a rule. The matcher may use the exported
// State helpers freely; cursor and output are restored for it on failure.
func Raw(fn MatchFunc) *Rule {
	if fn == nil {
		panic("peg: Raw called with nil matcher")
	}

	return newRule(fn)
}

// Handle replaces the output values produced by rule with the handler's
// single result. On failure nothing is replaced.
func Handle(rule *Rule, h OutputHandler) *Rule {
	return newRule(func(s *State) bool {
		mark := len(s.output)
		if !rule.match(s) {
			return false
		}

		if h == nil {
			return true
		}

		values := make([]any, len(s.output)-mark)
		copy(values, s.output[mark:])
		s.output = s.output[:mark]

		if v := h(values); v != nil {
			s.Emit(v)
		}

		return true
	})
}

// emitText runs a text handler and appends its non-nil result.
func emitText(s *State, h TextHandler, text string) {
	if h == nil {
		return
	}

	if v := h(text); v != nil {
		s.Emit(v)
	}
}
