package usecase

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
	"github.com/polkiloo/checkout/internal/domain/model"
)

const (
	minCardDigits = 13
	maxCardDigits = 19
)

// ValidateCardNumber checks card number length and Luhn checksum.
// Separators are ignored, letters are not.
func ValidateCardNumber(number string) bool {
	for i := 0; i < len(number); i++ {
		c := number[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return false
		}
	}

	digits := NormalizeDigits(number)
	if len(digits) < minCardDigits || len(digits) > maxCardDigits {
		return false
	}

	var sum int
	var alt bool
	for i := len(digits) - 1; i >= 0; i-- {
		digit := int(digits[i] - '0')
		if alt {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		alt = !alt
	}

	return sum%10 == 0
}

// ValidateExpiry checks an MM/YY expiry against the month of ref. Only the
// first two "/"-separated fields are read.
//
// The year field is compared as typed against ref's year modulo 100, so the
// result is only meaningful while the expiry lies within a century of ref.
func ValidateExpiry(expiry string, ref time.Time) bool {
	fields := strings.Split(expiry, "/")
	if len(fields) < 2 {
		return false
	}
	month, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return false
	}

	refYear := ref.Year() % 100
	refMonth := int(ref.Month())

	return year > refYear || (year == refYear && month >= refMonth)
}

// ValidateCVV accepts exactly three or four decimal digits.
func ValidateCVV(cvv string) bool {
	if len(cvv) < 3 || len(cvv) > 4 {
		return false
	}
	for i := 0; i < len(cvv); i++ {
		if cvv[i] < '0' || cvv[i] > '9' {
			return false
		}
	}
	return true
}

// ClassifyNetwork guesses the card brand from its leading digits.
func ClassifyNetwork(number string) model.CardNetwork {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, number)

	switch {
	case strings.HasPrefix(compact, "4"):
		return model.CardNetworkVisa
	case len(compact) >= 2 && compact[0] == '5' && compact[1] >= '1' && compact[1] <= '5':
		return model.CardNetworkMasterCard
	case strings.HasPrefix(compact, "34"), strings.HasPrefix(compact, "37"):
		return model.CardNetworkAmex
	case strings.HasPrefix(compact, "6"):
		return model.CardNetworkDiscover
	default:
		return model.CardNetworkUnknown
	}
}

// ValidateCardForSubmission runs every card check in form order and returns
// the first failure: holder name, number, expiry, then CVV.
func ValidateCardForSubmission(card model.PaymentCardInput, ref time.Time) error {
	if strings.TrimSpace(card.HolderName) == "" {
		return domainErrors.ErrEmptyHolderName
	}
	if !ValidateCardNumber(card.Number) {
		return domainErrors.ErrInvalidCardNumber
	}
	if !ValidateExpiry(card.Expiry, ref) {
		return domainErrors.ErrInvalidExpiry
	}
	if !ValidateCVV(card.CVV) {
		return domainErrors.ErrInvalidCVV
	}
	return nil
}

// NormalizeDigits drops every character that is not an ASCII digit.
func NormalizeDigits(number string) string {
	var b strings.Builder
	b.Grow(maxCardDigits)
	for i := 0; i < len(number); i++ {
		if number[i] >= '0' && number[i] <= '9' {
			b.WriteByte(number[i])
		}
	}
	return b.String()
}

// MaskCardNumber keeps the first six and last four digits and hides the rest.
// Numbers of ten digits or fewer are returned unchanged.
func MaskCardNumber(digits string) string {
	if len(digits) <= 10 {
		return digits
	}
	return digits[:6] + strings.Repeat("*", len(digits)-10) + digits[len(digits)-4:]
}
