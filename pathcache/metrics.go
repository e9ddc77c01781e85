package pathcache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridroute_pathcache_hits_total",
		Help: "Pairwise path lookups served from the cache",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridroute_pathcache_misses_total",
		Help: "Pairwise path lookups that ran a search",
	})

	cacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridroute_pathcache_evictions_total",
		Help: "Pairs evicted by the LRU bound",
	})
)
