package textlayout

import (
	"sync"

	"github.com/tsawler/pdfreplay/font"
)

// Layout measures text. Advance returns the width, in text space units, of
// text set in the font described by d at the given size, before character
// spacing, word spacing and horizontal scaling are applied.
type Layout interface {
	Advance(d font.Descriptor, size float64, text string) float64
}

// Func adapts a function to the Layout interface
type Func func(d font.Descriptor, size float64, text string) float64

// Advance calls f
func (f Func) Advance(d font.Descriptor, size float64, text string) float64 {
	return f(d, size, text)
}

// Metrics measures with the standard 14 AFM widths
type Metrics struct{}

// Advance sums the per-glyph widths of the nearest standard font
func (Metrics) Advance(d font.Descriptor, size float64, text string) float64 {
	return font.WidthsFor(d).StringWidth(text) / 1000 * size
}

type cacheKey struct {
	font font.Descriptor
	size float64
	text string
}

// Cached memoises another Layout. It is safe for concurrent use if the
// wrapped layout is.
type Cached struct {
	inner    Layout
	capacity int

	mu      sync.Mutex
	entries map[cacheKey]float64
	hits    int
	misses  int
}

// DefaultCacheSize is the capacity used when NewCached is given zero
const DefaultCacheSize = 4096

// NewCached wraps inner with a memo of at most capacity entries. When full,
// the memo is emptied and starts over.
func NewCached(inner Layout, capacity int) *Cached {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &Cached{
		inner:    inner,
		capacity: capacity,
		entries:  make(map[cacheKey]float64),
	}
}

// Advance returns the memoised width, measuring on a miss
func (c *Cached) Advance(d font.Descriptor, size float64, text string) float64 {
	key := cacheKey{font: d, size: size, text: text}

	c.mu.Lock()
	if w, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()
		return w
	}
	c.misses++
	c.mu.Unlock()

	w := c.inner.Advance(d, size, text)

	c.mu.Lock()
	if len(c.entries) >= c.capacity {
		c.entries = make(map[cacheKey]float64)
	}
	c.entries[key] = w
	c.mu.Unlock()
	return w
}

// Stats returns the hit and miss counts
func (c *Cached) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
