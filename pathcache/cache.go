package pathcache

import (
	"container/list"
	"slices"
	"sync"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/search"
)

// DefaultCapacity is the pair bound used when none (or a non-positive one) is given.
const DefaultCapacity = 4096

// View is what the cache needs from a grid snapshot: the search space plus
// the identity and version of the grid it came from. *grid.View implements it.
type View interface {
	search.Space
	Serial() uint64
	Version() uint64
}

// Stats reports cumulative counters for one Cache.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
}

// key identifies an unordered pair on one grid at one version; lo <= hi.
type key struct {
	serial  uint64
	version uint64
	lo, hi  grid.CellID
}

// entry holds both traversal directions of a pair.
type entry struct {
	key     key
	forward []grid.CellID // lo → hi
	reverse []grid.CellID // hi → lo
}

// Cache memoizes Finder results. Construct with New.
type Cache struct {
	finder   search.Finder
	capacity int

	mu    sync.Mutex
	items map[key]*list.Element
	order *list.List // front = most recent
	stats Stats
}

// Option configures a Cache.
type Option func(*Cache)

// WithCapacity bounds the number of cached pairs. n <= 0 keeps DefaultCapacity.
func WithCapacity(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// New returns an empty Cache that computes misses with f.
func New(f search.Finder, opts ...Option) *Cache {
	c := &Cache{
		finder:   f,
		capacity: DefaultCapacity,
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.items = make(map[key]*list.Element, min(c.capacity, 1024))

	return c
}

// Finder returns the strategy used on misses.
func (c *Cache) Finder() search.Finder { return c.finder }

// Capacity returns the pair bound.
func (c *Cache) Capacity() int { return c.capacity }

// Get returns the path a→b on v, computing and storing it on a miss.
// The returned slice is a copy owned by the caller.
// Errors from the Finder are returned unchanged and nothing is stored.
func (c *Cache) Get(v View, a, b grid.CellID) ([]grid.CellID, error) {
	k := makeKey(v, a, b)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[k]; ok {
		c.order.MoveToFront(el)
		c.stats.Hits++
		cacheHits.Inc()
		return slices.Clone(el.Value.(*entry).direction(a, b)), nil
	}

	c.stats.Misses++
	cacheMisses.Inc()
	path, err := c.finder.FindPath(v, k.lo, k.hi)
	if err != nil {
		return nil, err
	}

	rev := slices.Clone(path)
	slices.Reverse(rev)
	e := &entry{key: k, forward: path, reverse: rev}
	c.insert(e)

	return slices.Clone(e.direction(a, b)), nil
}

// Peek returns a copy of the cached path a→b on v without computing
// or touching recency.
func (c *Cache) Peek(v View, a, b grid.CellID) ([]grid.CellID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[makeKey(v, a, b)]
	if !ok {
		return nil, false
	}

	return slices.Clone(el.Value.(*entry).direction(a, b)), true
}

// Len returns the number of cached pairs.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}

// Stats returns a copy of the counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stats
}

// Purge drops every entry. Counters are kept.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[key]*list.Element, min(c.capacity, 1024))
	c.order.Init()
}

// insert adds e at the front, evicting from the back when full. Caller holds mu.
func (c *Cache) insert(e *entry) {
	for c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*entry).key)
		c.stats.Evictions++
		cacheEvictions.Inc()
	}
	c.items[e.key] = c.order.PushFront(e)
}

func makeKey(v View, a, b grid.CellID) key {
	if a > b {
		a, b = b, a
	}

	return key{serial: v.Serial(), version: v.Version(), lo: a, hi: b}
}

// direction returns the stored path oriented from a to b.
func (e *entry) direction(a, b grid.CellID) []grid.CellID {
	if a <= b {
		return e.forward
	}

	return e.reverse
}
