// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package globre

import "fmt"

// Matcher evaluates path decisions against compiled ordered rules.
type Matcher struct {
	compiled        []compiledRule
	defaultAction   Action
	caseInsensitive bool
}

// compiledRule pairs one source rule with its compiled glob.
type compiledRule struct {
	glob   *Glob
	source Rule
}

// NewMatcher compiles ordered rules into a matcher.
//
// Rule patterns use the glob syntax documented on Compile and match the
// whole normalized path, not a basename: use a "**/" prefix to match at any
// depth. Leading "/" and "./" on patterns are stripped, since matched paths
// are normalized to relative slash form.
func NewMatcher(rules []Rule, opts MatcherOptions) (*Matcher, error) {
	opts.applyDefaults()

	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		cr, err := compileMatcherRule(rule, opts.CaseInsensitive)
		if err != nil {
			return nil, err
		}

		compiled = append(compiled, *cr)
	}

	return &Matcher{
		compiled:        compiled,
		defaultAction:   opts.DefaultAction,
		caseInsensitive: opts.CaseInsensitive,
	}, nil
}

// compileMatcherRule validates and compiles one rule through the shared
// pattern cache.
func compileMatcherRule(rule Rule, caseInsensitive bool) (*compiledRule, error) {
	if !rule.Action.valid() {
		return nil, fmt.Errorf("%w: action %q", ErrInvalidRule, rule.Action)
	}

	pattern := normalizePattern(rule.Pattern)
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidRule)
	}

	if caseInsensitive {
		pattern = asciiLower(pattern)
	}

	glob, err := globCache.compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, rule.Pattern, err)
	}

	return &compiledRule{glob: glob, source: rule}, nil
}

// Decide returns the deterministic include/exclude decision for one path.
//
// Decision policy:
// - last matched rule wins
// - if no rule matched, the default action is used
func (m *Matcher) Decide(path string) MatchResult {
	candidate := normalizePath(path)
	if m.caseInsensitive {
		candidate = asciiLower(candidate)
	}

	res := MatchResult{
		Included:  m.defaultAction == ActionInclude,
		Matched:   false,
		RuleIndex: -1,
	}

	for i := range m.compiled {
		if !m.compiled[i].glob.Match(candidate) {
			continue
		}

		res.Matched = true
		res.RuleIndex = i
		res.Included = m.compiled[i].source.Action == ActionInclude
	}

	return res
}

// Included reports whether path is included by decision policy.
func (m *Matcher) Included(path string) bool {
	return m.Decide(path).Included
}

// Excluded reports whether path is excluded by decision policy.
func (m *Matcher) Excluded(path string) bool {
	return !m.Decide(path).Included
}
