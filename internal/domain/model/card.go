package model

// CardNetwork is the issuing brand guessed from the leading digits of a card number.
// It drives display only and never takes part in validation.
type CardNetwork string

const (
	CardNetworkVisa       CardNetwork = "Visa"
	CardNetworkMasterCard CardNetwork = "MasterCard"
	CardNetworkAmex       CardNetwork = "Amex"
	CardNetworkDiscover   CardNetwork = "Discover"
	CardNetworkUnknown    CardNetwork = "Unknown"
)

// PaymentCardInput holds the card fields exactly as the user typed them.
type PaymentCardInput struct {
	HolderName string
	Number     string
	Expiry     string
	CVV        string
}

// CardCheck is the live feedback for a card number typed so far.
type CardCheck struct {
	Valid   bool
	Network CardNetwork
	Masked  string
	// Reason is empty for a valid number.
	Reason string
}
