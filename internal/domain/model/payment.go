package model

import "time"

// RentalDateLayout is the datetime-local format the booking form submits.
const RentalDateLayout = "2006-01-02T15:04"

// PaymentMethod is the instrument picked on the checkout page.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "Card"
	PaymentMethodPayNow PaymentMethod = "PayNow"
)

// CardSummary is the only card data that leaves the service.
type CardSummary struct {
	HolderName string
	Masked     string
	Network    CardNetwork
}

// RentalPayment describes a checkout for a vehicle booking.
type RentalPayment struct {
	UserID        int64
	VehicleID     int64
	StartDate     time.Time
	EndDate       time.Time
	TotalPrice    float64
	PaymentMethod PaymentMethod
	Email         string
	Card          *PaymentCardInput
}

// MembershipPayment describes a checkout for a membership upgrade.
type MembershipPayment struct {
	UserID          int64
	MembershipLevel string
	Amount          float64
	PaymentMethod   PaymentMethod
	StartDate       time.Time
	EndDate         time.Time
	Email           string
	Card            *PaymentCardInput
}

// Receipt is returned by the remote payment API after a successful charge.
type Receipt struct {
	Message   string
	BookingID int64
	PaymentID int64
}

// RentalCharge is the rental checkout as forwarded to the payment API.
type RentalCharge struct {
	UserID        int64
	VehicleID     int64
	StartDate     time.Time
	EndDate       time.Time
	TotalPrice    float64
	PaymentMethod PaymentMethod
	Email         string
	Card          *CardSummary
}

// MembershipCharge is the membership checkout as forwarded to the payment API.
type MembershipCharge struct {
	UserID          int64
	MembershipLevel string
	Amount          float64
	PaymentMethod   PaymentMethod
	StartDate       time.Time
	EndDate         time.Time
	Email           string
	Card            *CardSummary
}
