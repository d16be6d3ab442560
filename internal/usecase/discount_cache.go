package usecase

import (
	"sync"
	"time"

	"github.com/polkiloo/checkout/internal/domain/model"
)

// DiscountCache holds the latest snapshot of discount tiers.
type DiscountCache struct {
	mu       sync.RWMutex
	tiers    map[string]float64
	loadedAt time.Time
}

// NewDiscountCache constructs an empty cache.
func NewDiscountCache() *DiscountCache {
	return &DiscountCache{tiers: make(map[string]float64)}
}

// Replace swaps the whole snapshot.
func (c *DiscountCache) Replace(discounts []model.Discount, at time.Time) {
	tiers := make(map[string]float64, len(discounts))
	for _, d := range discounts {
		tiers[d.MembershipLevel] = d.Percentage
	}

	c.mu.Lock()
	c.tiers = tiers
	c.loadedAt = at
	c.mu.Unlock()
}

// Percentage returns the discount for level if it is cached.
func (c *DiscountCache) Percentage(level string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	pct, ok := c.tiers[level]
	return pct, ok
}

// LoadedAt is the time of the last successful Replace, zero if none.
func (c *DiscountCache) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}

// Len returns the number of cached tiers.
func (c *DiscountCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tiers)
}
