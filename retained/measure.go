package retained

import (
	"container/list"
	"sync"
)

// TextCache is an LRU cache for text width measurements. It prevents
// repeated font shaping for labels that are measured again on rename or
// re-add.
type TextCache struct {
	m TextMeasurer

	mu      sync.Mutex
	maxSize int
	cache   map[string]*list.Element
	lru     *list.List // Front = most recently used
}

type cacheEntry struct {
	text  string
	width int
}

// NewTextCache wraps m with an LRU cache of at most maxSize entries.
func NewTextCache(m TextMeasurer, maxSize int) *TextCache {
	return &TextCache{
		m:       m,
		maxSize: max(1, maxSize),
		cache:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// TextWidth returns the cached width of text, measuring it on a miss.
func (c *TextCache) TextWidth(text string) int {
	if w, ok := c.get(text); ok {
		return w
	}
	w := c.m.TextWidth(text)
	c.put(text, w)
	return w
}

// Len returns the number of cached entries.
func (c *TextCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Clear removes all entries, for example after a font change.
func (c *TextCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]*list.Element)
	c.lru.Init()
}

func (c *TextCache) get(text string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[text]; ok {
		c.lru.MoveToFront(elem)
		return elem.Value.(*cacheEntry).width, true
	}
	return 0, false
}

func (c *TextCache) put(text string, width int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[text]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*cacheEntry).width = width
		return
	}

	// Evict oldest entries if at capacity
	for c.lru.Len() >= c.maxSize {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.cache, oldest.Value.(*cacheEntry).text)
	}

	c.cache[text] = c.lru.PushFront(&cacheEntry{text: text, width: width})
}

// cachedRenderer measures through a TextCache and renders through the
// wrapped renderer.
type cachedRenderer struct {
	Renderer
	cache *TextCache
}

func (r cachedRenderer) TextWidth(text string) int { return r.cache.TextWidth(text) }

// WithTextCache caches label measurements of the renderer, keeping at most
// maxSize widths.
func WithTextCache(maxSize int) Option {
	return func(c *Container) {
		c.renderer = cachedRenderer{Renderer: c.renderer, cache: NewTextCache(c.renderer, maxSize)}
	}
}
