package usecase

import (
	"sync"
	"testing"
	"time"

	"github.com/polkiloo/checkout/internal/domain/model"
)

func TestDiscountCacheReplace(t *testing.T) {
	cache := NewDiscountCache()
	if _, ok := cache.Percentage("VIP"); ok {
		t.Fatal("expected empty cache")
	}
	if !cache.LoadedAt().IsZero() {
		t.Fatal("expected zero load time")
	}

	at := time.Unix(100, 0)
	cache.Replace([]model.Discount{{MembershipLevel: "VIP", Percentage: 20}, {MembershipLevel: "Basic", Percentage: 0}}, at)
	if pct, ok := cache.Percentage("VIP"); !ok || pct != 20 {
		t.Fatalf("unexpected VIP tier: %v %v", pct, ok)
	}
	if cache.Len() != 2 || !cache.LoadedAt().Equal(at) {
		t.Fatalf("unexpected cache state: len=%d at=%v", cache.Len(), cache.LoadedAt())
	}

	cache.Replace([]model.Discount{{MembershipLevel: "Premium", Percentage: 10}}, at.Add(time.Minute))
	if _, ok := cache.Percentage("VIP"); ok {
		t.Fatal("expected VIP to be dropped by replace")
	}
}

func TestDiscountCacheConcurrentAccess(t *testing.T) {
	cache := NewDiscountCache()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			cache.Replace([]model.Discount{{MembershipLevel: "VIP", Percentage: float64(i)}}, time.Now())
		}(i)
		go func() {
			defer wg.Done()
			_, _ = cache.Percentage("VIP")
		}()
	}
	wg.Wait()
	if cache.Len() != 1 {
		t.Fatalf("expected single tier, got %d", cache.Len())
	}
}
