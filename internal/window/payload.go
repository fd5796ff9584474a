package window

import "sync"

// PayloadCache is a one-shot key/value store for inter-window data
// handoff. A creating window stores a payload before opening a new
// window; the new window takes (consumes) it on initialization.
//
// The cache is an explicitly constructed service rather than ambient
// package state so tests can build isolated instances.
type PayloadCache struct {
	mu      sync.Mutex
	entries map[string]interface{}
}

// NewPayloadCache returns an empty payload cache.
func NewPayloadCache() *PayloadCache {
	return &PayloadCache{entries: make(map[string]interface{})}
}

// Set stores a payload for a window label, overwriting any existing one.
func (c *PayloadCache) Set(label string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[label] = value
}

// Take consumes the payload for a label. The second return is false when
// no payload exists; a Take after a successful Take returns false absent
// an intervening Set.
func (c *PayloadCache) Take(label string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[label]
	if ok {
		delete(c.entries, label)
	}
	return v, ok
}

// Peek reads the payload without consuming it.
func (c *PayloadCache) Peek(label string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[label]
	return v, ok
}

// Clear empties the cache.
func (c *PayloadCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]interface{})
}
