package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/checkout/internal/domain/model"
	"github.com/polkiloo/checkout/internal/pkg/clock"
)

// DiscountSource lists the current discount tiers.
type DiscountSource interface {
	List(ctx context.Context) ([]model.Discount, error)
}

// DiscountSink receives fresh discount snapshots.
type DiscountSink interface {
	Replace(discounts []model.Discount, at time.Time)
}

// DiscountRefresher periodically copies discount tiers into an in-memory snapshot.
type DiscountRefresher struct {
	source   DiscountSource
	sink     DiscountSink
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDiscountRefresher constructs the refresher.
func NewDiscountRefresher(source DiscountSource, sink DiscountSink, clk clock.Clock, interval time.Duration, logger *slog.Logger) *DiscountRefresher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &DiscountRefresher{
		source:   source,
		sink:     sink,
		clock:    clk,
		interval: interval,
		logger:   logger,
	}
}

// Start loads the tiers once and then keeps reloading them in background.
// The loop outlives ctx cancellation and only ends on Stop.
func (r *DiscountRefresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return
	}

	r.refresh(ctx)

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel

	r.wg.Add(1)
	go r.loop(runCtx)
}

// Stop waits for the background loop to finish.
func (r *DiscountRefresher) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *DiscountRefresher) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *DiscountRefresher) refresh(ctx context.Context) {
	discounts, err := r.source.List(ctx)
	if err != nil {
		r.logger.Error("refresh discounts failed", slog.String("error", err.Error()))
		return
	}
	if len(discounts) == 0 {
		r.logger.Warn("no discount tiers found, keeping previous snapshot")
		return
	}
	r.sink.Replace(discounts, r.clock.Now())
	r.logger.Debug("discounts refreshed", slog.Int("tiers", len(discounts)))
}
