package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
	"github.com/polkiloo/checkout/internal/domain/model"
	"github.com/polkiloo/checkout/internal/domain/repository"
)

// BillingUseCase quotes rentals with membership discounts applied.
type BillingUseCase struct {
	discounts repository.DiscountRepository
	cache     *DiscountCache
}

// NewBillingUseCase constructs BillingUseCase.
func NewBillingUseCase(discounts repository.DiscountRepository, cache *DiscountCache) *BillingUseCase {
	return &BillingUseCase{discounts: discounts, cache: cache}
}

// Quote prices a rental of durationHours at pricePerHour for a membership level.
func (u *BillingUseCase) Quote(ctx context.Context, level string, durationHours int, pricePerHour float64) (*model.Bill, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return nil, domainErrors.ErrUnknownMembershipLevel
	}
	if durationHours <= 0 || pricePerHour < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	pct, err := u.percentage(ctx, level)
	if err != nil {
		return nil, err
	}

	total := pricePerHour * float64(durationHours)
	discount := total * (pct / 100)

	return &model.Bill{
		MembershipLevel: level,
		DurationHours:   durationHours,
		PricePerHour:    pricePerHour,
		TotalPrice:      total,
		Discount:        discount,
		FinalPrice:      total - discount,
	}, nil
}

func (u *BillingUseCase) percentage(ctx context.Context, level string) (float64, error) {
	if pct, ok := u.cache.Percentage(level); ok {
		return pct, nil
	}

	d, err := u.discounts.Get(ctx, level)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return 0, domainErrors.ErrUnknownMembershipLevel
		}
		return 0, fmt.Errorf("get discount: %w", err)
	}
	return d.Percentage, nil
}
