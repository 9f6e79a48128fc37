// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

/*
Package globre compiles glob patterns into regular expressions and matches
paths against them, directly or through ordered include/exclude rule sets.

Glob syntax:
  - "*" matches within one path segment, "?" exactly one non-separator rune
  - "**" crosses segments when bounded by separators, the pattern start
    or the pattern end; anywhere else it degrades to "*"
  - "[abc]" and "[a-z]" character classes; "[!...]" / "[^...]" negate and
    never match a separator
  - "{js,ts}" alternation with nesting; "{1..12}" and "{a..f}" inline ranges
  - "!" at the pattern start negates the whole pattern
  - "\" escapes the next character; "/" and "\" both match either separator

Matching is case-sensitive, anchored to the whole path, and tolerates one
trailing separator. Compilation is lenient: malformed fragments degrade to
literal matches instead of failing.

Basic flow:
  - test one path against one or many globs (`Match` / `MatchAny`)
  - or compile once and reuse (`Compile` / `MustCompile`, `Glob.Match`)
  - parse ordered rules from ignore-format text (`ParseRules`) or load them
    from files (`LoadRulesFile`, `LoadRuleSetFile`)
  - compile a matcher (`NewMatcher`) and ask for decisions
    (`Decide` / `Included` / `Excluded`)

Compiled patterns are cached process-wide by their source string. The
parsing engine behind the glob grammars lives in the peg subpackage.
*/
package globre
