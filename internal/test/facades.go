package test

import (
	"context"

	"github.com/polkiloo/checkout/internal/domain/model"
)

// CardFacadeStub provides controllable card checks.
type CardFacadeStub struct {
	CheckFn    func(string) model.CardCheck
	ValidateFn func(model.PaymentCardInput) (model.CardNetwork, error)
}

// CheckCard delegates to provided function or reports a valid Visa.
func (s CardFacadeStub) CheckCard(number string) model.CardCheck {
	if s.CheckFn != nil {
		return s.CheckFn(number)
	}
	return model.CardCheck{Valid: true, Network: model.CardNetworkVisa, Masked: number}
}

// ValidateCard delegates to provided function or accepts the card.
func (s CardFacadeStub) ValidateCard(card model.PaymentCardInput) (model.CardNetwork, error) {
	if s.ValidateFn != nil {
		return s.ValidateFn(card)
	}
	return model.CardNetworkVisa, nil
}

// BillingFacadeStub simulates quotes.
type BillingFacadeStub struct {
	BillFn func(context.Context, string, int, float64) (*model.Bill, error)
}

// RealTimeBill returns configured quote or an undiscounted bill.
func (s BillingFacadeStub) RealTimeBill(ctx context.Context, level string, hours int, price float64) (*model.Bill, error) {
	if s.BillFn != nil {
		return s.BillFn(ctx, level, hours, price)
	}
	total := price * float64(hours)
	return &model.Bill{MembershipLevel: level, DurationHours: hours, PricePerHour: price, TotalPrice: total, FinalPrice: total}, nil
}

// PaymentFacadeStub simulates checkouts.
type PaymentFacadeStub struct {
	RentalFn     func(context.Context, model.RentalPayment) (*model.Receipt, error)
	MembershipFn func(context.Context, model.MembershipPayment) (*model.Receipt, error)
}

// PayRental executes configured handler or returns a receipt.
func (s PaymentFacadeStub) PayRental(ctx context.Context, p model.RentalPayment) (*model.Receipt, error) {
	if s.RentalFn != nil {
		return s.RentalFn(ctx, p)
	}
	return &model.Receipt{Message: "Payment processed successfully", BookingID: 1, PaymentID: 2}, nil
}

// PayMembership executes configured handler or returns a receipt.
func (s PaymentFacadeStub) PayMembership(ctx context.Context, p model.MembershipPayment) (*model.Receipt, error) {
	if s.MembershipFn != nil {
		return s.MembershipFn(ctx, p)
	}
	return &model.Receipt{Message: "Membership payment processed successfully", PaymentID: 3}, nil
}

// HealthFacadeStub reports configured health.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// CheckoutFacadeStub combines all facade stubs.
type CheckoutFacadeStub struct {
	CardFacadeStub
	BillingFacadeStub
	PaymentFacadeStub
	HealthFacadeStub
}
