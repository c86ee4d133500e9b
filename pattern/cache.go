package pattern

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the validator cache capacity used by NewCachedValidator
// when the caller passes a non-positive size.
const DefaultCacheSize = 1024

// CachedValidator memoizes Validate results. Feed ingestion tends to see the
// same indicator patterns over and over; validation is pure, so results can
// be cached indefinitely. Safe for concurrent use.
type CachedValidator struct {
	cache *lru.Cache[string, error]
}

// NewCachedValidator creates a validator with an LRU result cache of the
// given capacity.
func NewCachedValidator(size int) (*CachedValidator, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, error](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}
	return &CachedValidator{cache: cache}, nil
}

// Validate returns the same result as the package-level Validate, served
// from cache when the pattern has been seen before.
func (v *CachedValidator) Validate(pattern string) error {
	if result, ok := v.cache.Get(pattern); ok {
		return result
	}
	result := Validate(pattern)
	v.cache.Add(pattern, result)
	return result
}

// Len returns the number of cached validation results.
func (v *CachedValidator) Len() int {
	return v.cache.Len()
}
