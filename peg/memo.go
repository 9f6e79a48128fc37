// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package peg

// memoResult is one recorded (rule, start index) outcome.
type memoResult struct {
	// out holds the output values the attempt appended, nil when none.
	out []any
	// end is the cursor position after the attempt.
	end int
	// ok reports whether the attempt matched.
	ok bool
}

// memoEntry is one queued result awaiting flush into the lookup map.
type memoEntry struct {
	result memoResult
	start  int
}

// ruleMemo is the packrat table of one rule within one parse call.
//
// Results are queued first and merged into the lookup map only when a lookup
// can actually hit (start index at or below the highest index seen), so
// grammars that never revisit a position skip the map writes entirely.
type ruleMemo struct {
	results  map[int]memoResult
	pending  []memoEntry
	indexMax int
}

// memoized serves one rule attempt through the packrat table.
func (s *State) memoized(r *Rule, core MatchFunc) bool {
	memo := s.memos[r]
	if memo == nil {
		memo = &ruleMemo{results: make(map[int]memoResult), indexMax: -1}
		s.memos[r] = memo
	}

	start := s.index
	if start <= memo.indexMax {
		memo.flush()
		if res, ok := memo.results[start]; ok {
			return s.replay(res)
		}
	} else {
		memo.indexMax = start
	}

	mark := len(s.output)
	ok := s.attempt(core)

	res := memoResult{ok: ok, end: s.index}
	if ok && len(s.output) > mark {
		res.out = make([]any, len(s.output)-mark)
		copy(res.out, s.output[mark:])
	}

	memo.pending = append(memo.pending, memoEntry{start: start, result: res})

	return ok
}

// replay applies one recorded outcome to the current State.
func (s *State) replay(res memoResult) bool {
	if !res.ok {
		return false
	}

	s.index = res.end
	s.output = append(s.output, res.out...)

	return true
}

// flush merges queued results into the lookup map, later entries winning.
func (m *ruleMemo) flush() {
	if len(m.pending) == 0 {
		return
	}

	for _, e := range m.pending {
		m.results[e.start] = e.result
	}

	m.pending = m.pending[:0]
}
