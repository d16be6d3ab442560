package app

import (
	"context"

	"github.com/polkiloo/checkout/internal/domain/model"
	"github.com/polkiloo/checkout/internal/usecase"
)

// HealthChecker reports whether the backing database is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// CheckoutFacade routes transport calls to the use cases.
type CheckoutFacade struct {
	cards    *usecase.CardUseCase
	billing  *usecase.BillingUseCase
	payments *usecase.PaymentUseCase
	health   HealthChecker
}

func NewCheckoutFacade(cards *usecase.CardUseCase, billing *usecase.BillingUseCase, payments *usecase.PaymentUseCase, health HealthChecker) *CheckoutFacade {
	return &CheckoutFacade{cards: cards, billing: billing, payments: payments, health: health}
}

func (f *CheckoutFacade) CheckCard(number string) model.CardCheck {
	return f.cards.Check(number)
}

func (f *CheckoutFacade) ValidateCard(card model.PaymentCardInput) (model.CardNetwork, error) {
	return f.cards.Validate(card)
}

func (f *CheckoutFacade) RealTimeBill(ctx context.Context, level string, durationHours int, pricePerHour float64) (*model.Bill, error) {
	return f.billing.Quote(ctx, level, durationHours, pricePerHour)
}

func (f *CheckoutFacade) PayRental(ctx context.Context, p model.RentalPayment) (*model.Receipt, error) {
	return f.payments.PayRental(ctx, p)
}

func (f *CheckoutFacade) PayMembership(ctx context.Context, p model.MembershipPayment) (*model.Receipt, error) {
	return f.payments.PayMembership(ctx, p)
}

func (f *CheckoutFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
