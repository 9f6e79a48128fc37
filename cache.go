// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package globre

import "sync"

// globCache memoizes compiled patterns for the process lifetime. Glob
// pattern sets are small and developer-supplied, so entries are never
// evicted.
var globCache = newPatternCache()

// patternCache maps glob source strings to their compiled form.
type patternCache struct {
	mu      sync.Mutex
	entries map[string]*cachedGlob
}

// cachedGlob stores one compiled pattern or a cached compile error.
type cachedGlob struct {
	// glob is nil when compilation failed.
	glob *Glob
	// err stores the compile error for deterministic repeated calls.
	err error
	// loading reports whether another goroutine is still compiling.
	loading bool
	// wg coordinates concurrent waiters for one compile attempt.
	wg sync.WaitGroup
}

func newPatternCache() *patternCache {
	return &patternCache{entries: make(map[string]*cachedGlob)}
}

// compile returns the cached compilation of pattern, compiling at most once
// per key. Concurrent callers for an uncached pattern wait for the first
// one instead of duplicating the work.
func (c *patternCache) compile(pattern string) (*Glob, error) {
	c.mu.Lock()
	entry, ok := c.entries[pattern]
	if ok {
		loading := entry.loading
		c.mu.Unlock()
		if loading {
			entry.wg.Wait()
		}

		return entry.glob, entry.err
	}

	entry = &cachedGlob{loading: true}
	entry.wg.Add(1)
	c.entries[pattern] = entry
	c.mu.Unlock()

	glob, err := Compile(pattern)

	c.mu.Lock()
	entry.glob = glob
	entry.err = err
	entry.loading = false
	entry.wg.Done()
	c.mu.Unlock()

	return glob, err
}

// size reports the number of cached patterns.
func (c *patternCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Match reports whether path matches the glob pattern. Compiled patterns
// are cached process-wide by their source string, so repeated calls with
// the same pattern reuse one compilation. Malformed patterns never panic;
// they simply report false.
func Match(pattern, path string) bool {
	g, err := globCache.compile(pattern)
	if err != nil {
		return false
	}

	return g.Match(path)
}

// MatchAny reports whether path matches at least one of the glob patterns,
// testing in order and stopping at the first hit.
func MatchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if Match(pattern, path) {
			return true
		}
	}

	return false
}
