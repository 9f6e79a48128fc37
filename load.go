// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package globre

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRulesFile reads and parses rules from an ignore-format file.
func LoadRulesFile(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rules, err := ParseRules(f)
	if err != nil {
		return nil, fmt.Errorf("parse rules file %q: %w", path, err)
	}

	return rules, nil
}

// LoadRulesFiles reads and merges rules from files in the given order.
//
// Returned rules preserve file order and rule order inside each file.
func LoadRulesFiles(paths ...string) ([]Rule, error) {
	out := make([]Rule, 0, len(paths)*8)
	for _, path := range paths {
		rules, err := LoadRulesFile(path)
		if err != nil {
			return nil, err
		}

		out = append(out, rules...)
	}

	return out, nil
}

// LoadRuleSetFile reads a YAML rule set: rules with explicit actions plus
// matcher options.
func LoadRuleSetFile(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule set file: %w", err)
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parse rule set file %q: %w", path, err)
	}

	return &rs, nil
}
