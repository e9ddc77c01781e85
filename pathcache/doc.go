// Package pathcache memoizes pairwise shortest paths for the route planner.
//
// A Cache sits in front of a search.Finder. Entries are keyed by the grid
// serial and version plus the unordered cell pair {A,B}; each entry stores the A→B path
// together with its exact reverse, so Get(A,B) and Get(B,A) are served by the
// same computation. Keying on the version means a path computed before an
// obstacle edit is never returned for a View taken after it, and the serial
// keeps grids that share one Cache apart even when their versions coincide.
//
// The cache is bounded: once Capacity pairs are held, the least recently used
// pair is evicted. Failures (search.ErrUnreachable and friends) are returned
// to the caller and never stored.
//
// Thread safety: one mutex guards lookup-or-compute, so concurrent planning
// calls sharing a Cache never compute the same pair twice.
package pathcache
