package engine

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ProjectionCache memoizes Project results by input tuple. Project is pure,
// so a cached result never goes stale; the cache only exists to make repeated
// recomputation on unchanged inputs free. A singleflight.Group coalesces
// concurrent identical computations into one.
type ProjectionCache struct {
	mu      sync.RWMutex
	entries map[ProjectionInput]ProjectionResult
	group   singleflight.Group
}

// NewProjectionCache creates an empty cache.
func NewProjectionCache() *ProjectionCache {
	return &ProjectionCache{
		entries: make(map[ProjectionInput]ProjectionResult),
	}
}

// Project returns the memoized result for in, computing it on first use.
// Callers must treat the returned YearlyData slice as read-only.
func (pc *ProjectionCache) Project(in ProjectionInput) ProjectionResult {
	pc.mu.RLock()
	cached, ok := pc.entries[in]
	pc.mu.RUnlock()
	if ok {
		return cached
	}

	sfKey := fmt.Sprintf("%g:%g:%d:%d:%g:%g:%d",
		in.AnnualInvestment, in.LumpSumInvestment, in.Age, in.HorizonYears,
		in.ExpectedReturn, in.Volatility, in.TailPercentile)

	result, _, _ := pc.group.Do(sfKey, func() (interface{}, error) {
		res := Project(in)
		pc.mu.Lock()
		pc.entries[in] = res
		pc.mu.Unlock()
		return res, nil
	})
	return result.(ProjectionResult)
}

// Len reports how many distinct inputs are cached.
func (pc *ProjectionCache) Len() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return len(pc.entries)
}

// Clear drops all cached results.
func (pc *ProjectionCache) Clear() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.entries = make(map[ProjectionInput]ProjectionResult)
}
