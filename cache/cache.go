// Package cache provides an LRU cache of segmentation results keyed by
// input text. Ingestion pipelines often see the same URLs and hashtags
// many times; caching skips the search entirely for repeats.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Segmentations is a fixed-size LRU cache mapping input text to its word
// sequence. It is safe for concurrent use. Entries are copied on the way
// in and out, so callers may mutate what they pass or receive.
type Segmentations struct {
	lru *lru.Cache[string, []string]
}

// NewSegmentations creates a cache holding up to size entries.
func NewSegmentations(size int) (*Segmentations, error) {
	c, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}
	return &Segmentations{lru: c}, nil
}

// Get returns a copy of the cached words for text, if present.
func (c *Segmentations) Get(text string) ([]string, bool) {
	words, ok := c.lru.Get(text)
	if !ok {
		return nil, false
	}
	return append([]string(nil), words...), true
}

// Put stores a copy of words under text.
func (c *Segmentations) Put(text string, words []string) {
	c.lru.Add(text, append([]string(nil), words...))
}

// Len returns the number of cached entries.
func (c *Segmentations) Len() int { return c.lru.Len() }

// Purge drops all entries.
func (c *Segmentations) Purge() { c.lru.Purge() }
