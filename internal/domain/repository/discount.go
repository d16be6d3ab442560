package repository

import (
	"context"

	"github.com/polkiloo/checkout/internal/domain/model"
)

// DiscountRepository reads membership discount tiers.
type DiscountRepository interface {
	Get(ctx context.Context, level string) (*model.Discount, error)
	List(ctx context.Context) ([]model.Discount, error)
}
