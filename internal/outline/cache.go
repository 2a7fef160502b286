package outline

import (
	"context"
	"fmt"

	"github.com/maypok86/otter"
)

// cachedOutline pairs an outline with the document version it was built
// from. A version mismatch is a cache miss.
type cachedOutline struct {
	version int64
	outline *Outline
}

// CachingProvider wraps a Provider with a per-document, version-guarded
// cache: repeated requests for an unchanged document return the cached
// outline without re-parsing, and any version change invalidates the entry.
// The cache is an explicit owned object, not ambient state; the owner must
// call Purge when a document is closed and Close when shutting down.
type CachingProvider struct {
	inner Provider
	cache otter.Cache[string, cachedOutline]
}

// NewCachingProvider builds a CachingProvider holding at most capacity
// document outlines.
func NewCachingProvider(inner Provider, capacity int) (*CachingProvider, error) {
	cache, err := otter.MustBuilder[string, cachedOutline](capacity).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build outline cache: %w", err)
	}
	return &CachingProvider{inner: inner, cache: cache}, nil
}

// OutlineAt returns the document's outline for the given version, consulting
// the cache first. source is only parsed on a miss.
func (c *CachingProvider) OutlineAt(ctx context.Context, path string, version int64, source []byte) (*Outline, error) {
	if entry, ok := c.cache.Get(path); ok && entry.version == version {
		return entry.outline, nil
	}

	o, err := c.inner.Outline(ctx, path, source)
	if err != nil {
		return nil, err
	}

	c.cache.Set(path, cachedOutline{version: version, outline: o})
	return o, nil
}

// Outline satisfies Provider; the uncached path delegates directly.
func (c *CachingProvider) Outline(ctx context.Context, path string, source []byte) (*Outline, error) {
	return c.inner.Outline(ctx, path, source)
}

// Purge drops the cached outline for a closed document.
func (c *CachingProvider) Purge(path string) {
	c.cache.Delete(path)
}

// Close releases the cache.
func (c *CachingProvider) Close() {
	c.cache.Close()
}
