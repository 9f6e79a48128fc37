// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

/*
Package peg implements a small PEG combinator engine with packrat memoization.

Rules are immutable values built once at grammar-definition time from the
primitive constructors (`Lit`, `Chars`, `Re`, `ReSub`, `Raw`) and combinators
(`Seq`, `Alt`, `Rep`, `Opt`, `Star`, `Plus`, `Lazy`, `Handle`), then reused
for any number of parses. Alternation is ordered (first match wins) and
repetition is greedy without give-back, per PEG semantics.

Parsing walks the rule tree over a fresh State per call:
  - a failed attempt restores the cursor and the produced output exactly
  - each (rule, start index) outcome is memoized within one parse call
  - the deepest index reached survives into ParseError for diagnostics

Handlers attached to rules turn matched text into output values; Parse
returns the accumulated output list on success and requires the root rule
to consume the whole input.
*/
package peg
