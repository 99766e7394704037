package domain

import "github.com/shopspring/decimal"

// StockStatus is the derived stock state of a product.
type StockStatus string

const (
	StockActive  StockStatus = "active"
	StockWarning StockStatus = "warning"
	StockLow     StockStatus = "low"
	StockOut     StockStatus = "out"
)

// Product is an item tracked by a business. CurrentStock is always within
// [0, BaseStock]; BaseStock is the capacity ceiling.
type Product struct {
	ID            int64            `json:"id"`
	BusinessID    int64            `json:"business_id"`
	Name          string           `json:"name"`
	BaseStock     int64            `json:"base_stock"`
	CurrentStock  int64            `json:"current_stock"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	StockStatus   StockStatus      `json:"stock_status"`
	Image         string           `json:"image,omitempty"`
	Timestamps
}

// StockPercent returns the fill level of the product as a 0..100 percentage,
// capped at 100. A missing capacity ceiling counts as full.
func (p Product) StockPercent() int64 {
	if p.BaseStock <= 0 {
		return 100
	}
	pct := p.CurrentStock * 100 / p.BaseStock
	if pct > 100 {
		pct = 100
	}
	return pct
}

// DeriveStockStatus computes the stock status shown for a current/capacity pair.
// Thresholds follow the product card bands: empty is out, at or under 20% is
// low, at or under 50% is warning.
func DeriveStockStatus(current, base int64) StockStatus {
	if current <= 0 {
		return StockOut
	}
	if base > 0 {
		pct := current * 100 / base
		if pct <= 20 {
			return StockLow
		}
		if pct <= 50 {
			return StockWarning
		}
	}
	return StockActive
}

// Product sort keys accepted by listing endpoints.
const (
	SortStockHighest = "stok-tertinggi"
	SortStockLowest  = "stok-terendah"
	SortPriceHighest = "harga-tertinggi"
	SortPriceLowest  = "harga-terendah"
)
