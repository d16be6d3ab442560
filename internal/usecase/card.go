package usecase

import (
	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
	"github.com/polkiloo/checkout/internal/domain/model"
	"github.com/polkiloo/checkout/internal/pkg/clock"
)

// CardUseCase runs card checks against the service clock.
type CardUseCase struct {
	clock clock.Clock
}

// NewCardUseCase constructs CardUseCase.
func NewCardUseCase(c clock.Clock) *CardUseCase {
	return &CardUseCase{clock: c}
}

// Check reports what the payment page shows while a number is being typed.
func (u *CardUseCase) Check(number string) model.CardCheck {
	check := model.CardCheck{
		Valid:   ValidateCardNumber(number),
		Network: ClassifyNetwork(number),
		Masked:  MaskCardNumber(NormalizeDigits(number)),
	}
	if !check.Valid {
		check.Reason = domainErrors.ErrInvalidCardNumber.Error()
	}
	return check
}

// Validate runs the full pre-submission check and returns the card network.
func (u *CardUseCase) Validate(card model.PaymentCardInput) (model.CardNetwork, error) {
	if err := ValidateCardForSubmission(card, u.clock.Now()); err != nil {
		return model.CardNetworkUnknown, err
	}
	return ClassifyNetwork(card.Number), nil
}

// Summary returns the card data that may leave the service.
func (u *CardUseCase) Summary(card model.PaymentCardInput) *model.CardSummary {
	return &model.CardSummary{
		HolderName: card.HolderName,
		Masked:     MaskCardNumber(NormalizeDigits(card.Number)),
		Network:    ClassifyNetwork(card.Number),
	}
}
