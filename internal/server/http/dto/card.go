package dto

// CardRequest carries the card fields from the payment form.
type CardRequest struct {
	HolderName string `json:"holder_name"`
	Number     string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// CardCheckRequest carries a partially typed card number.
type CardCheckRequest struct {
	Number string `json:"card_number"`
}

// CardCheckResponse is the live number feedback.
type CardCheckResponse struct {
	Valid   bool   `json:"valid"`
	Network string `json:"network"`
	Masked  string `json:"masked"`
	Reason  string `json:"reason,omitempty"`
}

// CardValidateResponse is returned when the whole card passes validation.
type CardValidateResponse struct {
	Network string `json:"network"`
}
