package handlers

import (
	"context"

	"github.com/polkiloo/checkout/internal/domain/model"
)

// CardFacade exposes card checks used by the payment form.
type CardFacade interface {
	CheckCard(number string) model.CardCheck
	ValidateCard(card model.PaymentCardInput) (model.CardNetwork, error)
}

// BillingFacade quotes rentals.
type BillingFacade interface {
	RealTimeBill(ctx context.Context, level string, durationHours int, pricePerHour float64) (*model.Bill, error)
}

// PaymentFacade processes checkouts.
type PaymentFacade interface {
	PayRental(ctx context.Context, p model.RentalPayment) (*model.Receipt, error)
	PayMembership(ctx context.Context, p model.MembershipPayment) (*model.Receipt, error)
}

// HealthFacade reports readiness of backing services.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// CheckoutFacade aggregates the full set of operations used across handlers.
type CheckoutFacade interface {
	CardFacade
	BillingFacade
	PaymentFacade
	HealthFacade
}
