// Package statcache caches stat indexes per stats root.
package statcache

import (
	"sync"

	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/moditems/internal/core/ports"
	"go.trai.ch/moditems/internal/core/statgraph"
	"golang.org/x/sync/singleflight"
)

// BuildHook observes every index built by the cache.
type BuildHook func(h domain.RootHandle, report statgraph.Report)

// Option configures a Cache.
type Option func(*Cache)

// WithBuildHook registers fn to be called after each cache miss is built.
func WithBuildHook(fn BuildHook) Option {
	return func(c *Cache) {
		c.onBuild = fn
	}
}

// Cache maps stats root handles to their indexes.
//
// Entries are keyed by handle, never by the root node, so the cache does not keep a root alive.
// An entry is dropped when its root is released; a freed arena slot is reissued with a new
// generation, so an old entry can never be hit by a new root.
//
// A cached index is not refreshed. Attributes added to the graph after the first build are not seen.
type Cache struct {
	indexer ports.Indexer
	onBuild BuildHook

	mu       sync.Mutex
	entries  map[domain.RootHandle]*statgraph.Index
	inflight map[domain.RootHandle]struct{}
	group    singleflight.Group
}

// New creates an empty Cache that builds missing entries with indexer.
func New(indexer ports.Indexer, opts ...Option) *Cache {
	c := &Cache{
		indexer: indexer,
		entries:  make(map[domain.RootHandle]*statgraph.Index),
		inflight: make(map[domain.RootHandle]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrBuild returns the index for root, building and storing it on first use.
// Concurrent misses for the same root share a single traversal.
func (c *Cache) GetOrBuild(root statgraph.Root) *statgraph.Index {
	if idx, ok := c.Get(root.Handle); ok {
		return idx
	}

	v, _, _ := c.group.Do(root.Handle.String(), func() (any, error) {
		c.mu.Lock()
		if idx, ok := c.entries[root.Handle]; ok {
			c.mu.Unlock()
			return idx, nil
		}
		c.inflight[root.Handle] = struct{}{}
		c.mu.Unlock()

		idx, report := c.indexer.Build(root.Node)
		if c.onBuild != nil {
			c.onBuild(root.Handle, report)
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		// Releasing this root during the build clears its inflight mark; the root may already be gone.
		if _, ok := c.inflight[root.Handle]; ok {
			delete(c.inflight, root.Handle)
			c.entries[root.Handle] = idx
		}
		return idx, nil
	})

	idx, _ := v.(*statgraph.Index)
	return idx
}

// Get returns the stored index for h without building.
func (c *Cache) Get(h domain.RootHandle) (*statgraph.Index, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx, ok := c.entries[h]
	return idx, ok
}

// Release drops the entry for h. It is safe to call for unknown handles.
func (c *Cache) Release(h domain.RootHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, h)
	delete(c.inflight, h)
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset drops every entry.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	clear(c.inflight)
}

// LogReadFailures returns a hook that warns about every member whose read failed during a build.
func LogReadFailures(log ports.Logger) BuildHook {
	return func(h domain.RootHandle, report statgraph.Report) {
		for _, v := range report.Failures() {
			log.Warn("skipped unreadable stat member", "root", h.String(), "member", v.Path, "error", v.Err)
		}
	}
}
