package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
	"github.com/polkiloo/checkout/internal/domain/model"
)

// PaymentGateway forwards validated charges to the remote payment API.
type PaymentGateway interface {
	SubmitRental(ctx context.Context, charge model.RentalCharge) (*model.Receipt, error)
	SubmitMembership(ctx context.Context, charge model.MembershipCharge) (*model.Receipt, error)
}

// PaymentUseCase validates checkouts and hands them to the gateway.
type PaymentUseCase struct {
	cards   *CardUseCase
	gateway PaymentGateway
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(cards *CardUseCase, gateway PaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{cards: cards, gateway: gateway}
}

// PayRental charges a vehicle booking.
func (u *PaymentUseCase) PayRental(ctx context.Context, p model.RentalPayment) (*model.Receipt, error) {
	card, err := u.checkCard(p.PaymentMethod, p.Card)
	if err != nil {
		return nil, err
	}
	if p.VehicleID <= 0 || !p.EndDate.After(p.StartDate) || p.TotalPrice <= 0 {
		return nil, domainErrors.ErrInvalidPayment
	}

	return u.gateway.SubmitRental(ctx, model.RentalCharge{
		UserID:        p.UserID,
		VehicleID:     p.VehicleID,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		TotalPrice:    p.TotalPrice,
		PaymentMethod: p.PaymentMethod,
		Email:         p.Email,
		Card:          card,
	})
}

// PayMembership charges a membership upgrade.
func (u *PaymentUseCase) PayMembership(ctx context.Context, p model.MembershipPayment) (*model.Receipt, error) {
	card, err := u.checkCard(p.PaymentMethod, p.Card)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.MembershipLevel) == "" || p.Amount < 0 {
		return nil, domainErrors.ErrInvalidPayment
	}
	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate) {
		return nil, domainErrors.ErrInvalidPayment
	}

	return u.gateway.SubmitMembership(ctx, model.MembershipCharge{
		UserID:          p.UserID,
		MembershipLevel: strings.TrimSpace(p.MembershipLevel),
		Amount:          p.Amount,
		PaymentMethod:   p.PaymentMethod,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		Email:           p.Email,
		Card:            card,
	})
}

// checkCard validates the card for card payments and returns its summary.
// Other methods carry no card.
func (u *PaymentUseCase) checkCard(method model.PaymentMethod, card *model.PaymentCardInput) (*model.CardSummary, error) {
	if method != model.PaymentMethodCard {
		return nil, nil
	}
	var in model.PaymentCardInput
	if card != nil {
		in = *card
	}
	if _, err := u.cards.Validate(in); err != nil {
		return nil, err
	}
	return u.cards.Summary(in), nil
}
