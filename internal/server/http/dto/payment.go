package dto

// RentalPaymentRequest is the booking checkout form. Numeric fields arrive as
// strings because the page copies them straight from form inputs. The page's
// price_per_hour and rental_duration are display-only and not read.
type RentalPaymentRequest struct {
	UserID        int64        `json:"user_id"`
	VehicleID     string       `json:"vehicle_id"`
	StartDate     string       `json:"start_date"`
	EndDate       string       `json:"end_date"`
	PaymentMethod string       `json:"payment_method"`
	TotalPrice    string       `json:"total_price"`
	Email         string       `json:"email"`
	Card          *CardRequest `json:"card,omitempty"`
}

// MembershipPaymentRequest is the membership upgrade form.
type MembershipPaymentRequest struct {
	UserID          int64        `json:"user_id"`
	MembershipLevel string       `json:"membership_level"`
	Amount          float64      `json:"amount"`
	PaymentMethod   string       `json:"payment_method"`
	StartDate       string       `json:"start_date,omitempty"`
	EndDate         string       `json:"end_date,omitempty"`
	Email           string       `json:"email"`
	Card            *CardRequest `json:"card,omitempty"`
}

// ReceiptResponse confirms a processed payment.
type ReceiptResponse struct {
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id,omitempty"`
	PaymentID int64  `json:"payment_id"`
}
