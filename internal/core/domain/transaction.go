package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction adds to or subtracts from the balance.
type TransactionType string

const (
	Income  TransactionType = "Income"
	Expense TransactionType = "Expense"
)

// Valid reports whether t is one of the two known transaction types.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// TransactionStatus tracks the backend lifecycle of a transaction.
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusComplete TransactionStatus = "complete"
	StatusCancel   TransactionStatus = "cancel"
)

// Transaction is a single income or expense record owned by a business.
// Amount is always non-negative; the sign is carried by Type.
type Transaction struct {
	ID              int64             `json:"id"`
	BusinessID      int64             `json:"business_id"`
	TransactionDate time.Time         `json:"transaction_date"`
	Type            TransactionType   `json:"type"`
	Category        string            `json:"category"`
	Amount          decimal.Decimal   `json:"amount"`
	Description     string            `json:"description"`
	Status          TransactionStatus `json:"status"`
	Timestamps
}

// TransactionDetail links a transaction to a product line (sales and purchases).
type TransactionDetail struct {
	ID            int64           `json:"id"`
	TransactionID int64           `json:"transaction_id"`
	ProductID     int64           `json:"product_id"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price_at_transaction"`
	ProductName   string          `json:"product_name,omitempty"`
}

// TransactionWithDetails is a transaction joined with its product lines.
type TransactionWithDetails struct {
	Transaction
	Details []TransactionDetail `json:"details"`
}

// TransactionTotals summarizes a transaction set over an optional date range.
type TransactionTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// TransactionFilter narrows a transaction listing. Zero values mean "no filter".
type TransactionFilter struct {
	Type      TransactionType
	Category  string
	Status    TransactionStatus
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

// TransactionPage is a filtered listing plus its pagination window.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Pagination   Pagination    `json:"pagination"`
}

// Pagination describes the window the backend returned for a listing.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}
