package domain

// StockState is a snapshot of one product's stock controller: the value shown
// to the user (optimistic), the value last acknowledged by the backend, and
// whether a send is still pending.
type StockState struct {
	ProductID int64  `json:"product_id"`
	BaseStock int64  `json:"base_stock"`
	Displayed int64  `json:"displayed"`
	Confirmed int64  `json:"confirmed"`
	Pending   bool   `json:"pending"`
	LastError string `json:"last_error,omitempty"`
}
