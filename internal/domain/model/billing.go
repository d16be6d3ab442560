package model

// Discount is the percentage granted to a membership level.
type Discount struct {
	MembershipLevel string
	Percentage      float64
}

// Bill is a real-time price quote for a rental.
type Bill struct {
	MembershipLevel string
	DurationHours   int
	PricePerHour    float64
	TotalPrice      float64
	Discount        float64
	FinalPrice      float64
}
