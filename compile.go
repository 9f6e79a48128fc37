// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package globre

import (
	"fmt"
	"strconv"

	"github.com/dlclark/regexp2"
)

// Glob is one compiled glob pattern, safe for concurrent use.
type Glob struct {
	re      *regexp2.Regexp
	pattern string
}

// Compile translates a glob into a compiled matcher. The pattern is
// normalized, converted to regex source and anchored on both ends, with one
// optional trailing separator allowed; matching is case-sensitive and "."
// crosses newlines.
//
// Compilation is lenient: malformed fragments (unterminated braces or
// classes, reversed ranges, stray escapes) degrade to literal matches
// instead of failing, so arbitrary input does not produce an error.
func Compile(pattern string) (*Glob, error) {
	src := `^` + convert(normalize(pattern)) + `[\\/]?$`
	re, err := regexp2.Compile(src, regexp2.Singleline)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}

	return &Glob{re: re, pattern: pattern}, nil
}

// MustCompile is Compile for patterns known at build time; it panics on
// error.
func MustCompile(pattern string) *Glob {
	g, err := Compile(pattern)
	if err != nil {
		panic(`globre: Compile(` + strconv.Quote(pattern) + `): ` + err.Error())
	}

	return g
}

// Match reports whether path matches the compiled glob.
func (g *Glob) Match(path string) bool {
	ok, err := g.re.MatchString(path)
	return err == nil && ok
}

// String returns the original glob pattern.
func (g *Glob) String() string {
	return g.pattern
}

// Regex returns the compiled regular expression source, for diagnostics.
func (g *Glob) Regex() string {
	return g.re.String()
}
