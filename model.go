// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package globre

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Action represents a decision action of one rule.
type Action uint8

const (
	// ActionUnknown is the unset/invalid action placeholder.
	ActionUnknown Action = iota
	// ActionExclude means a matching path should be excluded.
	ActionExclude
	// ActionInclude means a matching path should be included.
	ActionInclude
)

// Rule is one user-visible path rule.
type Rule struct {
	// Pattern is a glob pattern as understood by Compile.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Action is the decision action applied when the rule matches.
	Action Action `json:"action" yaml:"action"`
}

// MatcherOptions controls matcher behavior.
type MatcherOptions struct {
	// CaseInsensitive enables ASCII case-insensitive matching.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
	// DefaultAction is applied when no rule matched.
	DefaultAction Action `json:"default_action,omitempty" yaml:"default_action,omitempty"`
}

// RuleSet is a serializable bundle of ordered rules plus matcher options,
// the document shape LoadRuleSetFile reads.
type RuleSet struct {
	// Rules are evaluated in order; the last matching rule wins.
	Rules []Rule `json:"rules" yaml:"rules"`
	// CaseInsensitive enables ASCII case-insensitive matching.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
	// DefaultAction is applied when no rule matched.
	DefaultAction Action `json:"default_action,omitempty" yaml:"default_action,omitempty"`
}

// Matcher compiles the rule set into a matcher.
func (rs *RuleSet) Matcher() (*Matcher, error) {
	return NewMatcher(rs.Rules, MatcherOptions{
		CaseInsensitive: rs.CaseInsensitive,
		DefaultAction:   rs.DefaultAction,
	})
}

// MatchResult is a deterministic decision produced by a matcher.
type MatchResult struct {
	// Included reports the final include decision.
	Included bool `json:"included" yaml:"included"`
	// Matched reports whether at least one rule matched.
	Matched bool `json:"matched" yaml:"matched"`
	// RuleIndex is the matched rule index in matcher input order, -1 when
	// no rule matched.
	RuleIndex int `json:"rule_index" yaml:"rule_index"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *MatcherOptions) applyDefaults() {
	if !opts.DefaultAction.valid() {
		opts.DefaultAction = ActionInclude
	}
}

// valid reports whether the action value is supported.
func (a Action) valid() bool {
	return a == ActionExclude || a == ActionInclude
}

// String returns the lower-case action name.
func (a Action) String() string {
	switch a {
	case ActionExclude:
		return "exclude"
	case ActionInclude:
		return "include"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the action as its name.
func (a Action) MarshalJSON() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAction, uint8(a))
	}

	return json.Marshal(a.String())
}

// UnmarshalJSON decodes an action from its name.
func (a *Action) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}

	return a.parse(name)
}

// MarshalYAML encodes the action as its name.
func (a Action) MarshalYAML() (any, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAction, uint8(a))
	}

	return a.String(), nil
}

// UnmarshalYAML decodes an action from its name.
func (a *Action) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}

	return a.parse(name)
}

// parse resolves one action name; "allow" and "deny" are accepted aliases.
func (a *Action) parse(name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exclude", "deny":
		*a = ActionExclude
	case "include", "allow":
		*a = ActionInclude
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAction, name)
	}

	return nil
}
