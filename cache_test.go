// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globre

package globre

import (
	"sync"
	"testing"
)

func TestPatternCacheCompilesOnce(t *testing.T) {
	t.Parallel()

	c := newPatternCache()

	const workers = 16
	globs := make([]*Glob, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			globs[i], errs[i] = c.compile("assets/**/*.paa")
		}(i)
	}
	wg.Wait()

	if got := c.size(); got != 1 {
		t.Fatalf("size()=%d, want 1", got)
	}

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("compile[%d]: %v", i, errs[i])
		}

		if globs[i] != globs[0] {
			t.Fatalf("compile[%d] returned a different instance", i)
		}
	}

	if !globs[0].Match("assets/a/b.paa") {
		t.Fatalf("cached glob must match")
	}
}

func TestPatternCacheKeysBySource(t *testing.T) {
	t.Parallel()

	c := newPatternCache()

	a1, err := c.compile("*.a")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	a2, err := c.compile("*.a")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	b, err := c.compile("*.b")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if a1 != a2 {
		t.Fatalf("same source must return the cached instance")
	}

	if b == a1 {
		t.Fatalf("distinct sources must not share an instance")
	}

	if got := c.size(); got != 2 {
		t.Fatalf("size()=%d, want 2", got)
	}
}

func TestMatchUsesProcessCache(t *testing.T) {
	t.Parallel()

	const pattern = "state/blobs/**/*.bin"

	if !Match(pattern, "state/blobs/x/y.bin") {
		t.Fatalf("path must match the cached pattern")
	}

	globCache.mu.Lock()
	entry := globCache.entries[pattern]
	globCache.mu.Unlock()

	if entry == nil || entry.loading || entry.err != nil || entry.glob == nil {
		t.Fatalf("unexpected cache entry state: %+v", entry)
	}

	if Match(pattern, "state/blobs/no.txt") {
		t.Fatalf("path must not match the cached pattern")
	}

	globCache.mu.Lock()
	again := globCache.entries[pattern]
	globCache.mu.Unlock()

	if again != entry {
		t.Fatalf("pattern was recompiled instead of served from cache")
	}
}
