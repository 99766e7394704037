package domain

import "github.com/shopspring/decimal"

// Business is the tenant scope all products and transactions belong to.
// A user has one active business at a time, selected via the stored identifier.
type Business struct {
	ID             int64           `json:"id"`
	UserID         string          `json:"user_id"`
	BusinessName   string          `json:"business_name"`
	Category       string          `json:"category"`
	Location       string          `json:"location"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Timestamps
}
