package planner

import (
	"log/slog"

	"github.com/katalvlaran/gridroute/pathcache"
	"github.com/katalvlaran/gridroute/search"
	"github.com/katalvlaran/gridroute/tsp"
)

// Option configures a Planner.
type Option func(*Planner)

// WithFinder sets the pairwise strategy. Ignored when WithCache is also given.
func WithFinder(f search.Finder) Option {
	return func(p *Planner) {
		if f != nil {
			p.finder = f
		}
	}
}

// WithCache shares an existing cache (and its Finder) with this Planner.
func WithCache(c *pathcache.Cache) Option {
	return func(p *Planner) {
		if c != nil {
			p.cache = c
		}
	}
}

// WithCacheCapacity bounds the Planner's own cache. Ignored with WithCache.
func WithCacheCapacity(n int) Option {
	return func(p *Planner) { p.cacheCapacity = n }
}

// WithTSPOptions sets the ordering configuration. Options.Rand is dropped:
// every call builds its own generator from Options.Seed.
func WithTSPOptions(o tsp.Options) Option {
	return func(p *Planner) {
		o.Rand = nil
		p.tsp = o
	}
}

// WithSeed sets the ordering seed.
func WithSeed(seed int64) Option {
	return func(p *Planner) { p.tsp.Seed = seed }
}

// WithLogger sets the structured logger. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}
