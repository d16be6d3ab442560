package dto

// BillResponse is the real-time rental quote.
type BillResponse struct {
	FinalPrice float64 `json:"final_price"`
	Discount   float64 `json:"discount"`
	TotalPrice float64 `json:"total_price"`
	Membership string  `json:"membership"`
	Duration   int     `json:"duration"`
}
