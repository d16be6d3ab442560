package errors

import "errors"

// Card validation failures, in the order they are checked before submission.
var (
	ErrEmptyHolderName   = errors.New("cardholder name is required")
	ErrInvalidCardNumber = errors.New("invalid card number")
	ErrInvalidExpiry     = errors.New("invalid expiry date")
	ErrInvalidCVV        = errors.New("invalid cvv")
)

var (
	ErrNotFound               = errors.New("not found")
	ErrUnknownMembershipLevel = errors.New("unknown membership level")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidPayment         = errors.New("invalid payment request")
	ErrPaymentRejected        = errors.New("payment rejected")
)

// IsCardValidation reports whether err is one of the user-correctable card errors.
func IsCardValidation(err error) bool {
	return errors.Is(err, ErrEmptyHolderName) ||
		errors.Is(err, ErrInvalidCardNumber) ||
		errors.Is(err, ErrInvalidExpiry) ||
		errors.Is(err, ErrInvalidCVV)
}
