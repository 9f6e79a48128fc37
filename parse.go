// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package globre

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseRules parses glob rules in ignore-file format from r.
//
// Semantics:
// - blank lines and "#" comments are ignored
// - "!" creates an include rule, plain lines an exclude rule
// - "\#" and "\!" escape the leading comment/include markers; an escaped
//   "!" keeps its backslash, so the pattern matches a literal "!"
// - unescaped trailing spaces are trimmed
func ParseRules(r io.Reader) ([]Rule, error) {
	s := bufio.NewScanner(r)
	rules := make([]Rule, 0, 16)

	for s.Scan() {
		rule, ok := parseRuleLine(s.Text())
		if !ok {
			continue
		}

		rules = append(rules, rule)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan rules: %w", err)
	}

	return rules, nil
}

// ParseRulesString parses rules from string input.
func ParseRulesString(src string) ([]Rule, error) {
	return ParseRules(strings.NewReader(src))
}

// parseRuleLine converts one source line into a rule; ok is false for blank
// lines and comments.
func parseRuleLine(line string) (Rule, bool) {
	line = strings.TrimRight(line, "\r")
	line = trimTrailingSpaces(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Rule{}, false
	}

	if strings.HasPrefix(line, `\#`) {
		line = line[1:]
	}

	// A leading "\!" keeps its backslash: the glob layer needs the escape
	// to tell a literal "!" from whole-pattern negation.
	action := ActionExclude
	if strings.HasPrefix(line, "!") {
		action = ActionInclude
		line = line[1:]
	}

	if line == "" {
		return Rule{}, false
	}

	return Rule{Action: action, Pattern: line}, true
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
