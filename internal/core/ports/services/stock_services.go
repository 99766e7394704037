package services

import (
	"context"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
)

// StockSvcFacade manages the per-product debounced stock controllers.
//
// Adjustments are reflected in the returned state immediately (optimistic) and
// coalesced into a single backend call per quiescence window. A failed send
// rolls the displayed value back to the last confirmed one.
type StockSvcFacade interface {
	// Increment bumps the displayed stock by one, clamped to base stock.
	Increment(ctx context.Context, productID int64) (*domain.StockState, error)

	// Decrement lowers the displayed stock by one, clamped to zero.
	Decrement(ctx context.Context, productID int64) (*domain.StockState, error)

	// SetStock applies a direct numeric entry, clamped to [0, base stock].
	SetStock(ctx context.Context, productID int64, value int64) (*domain.StockState, error)

	// SetStockFromInput parses a typed value. Empty or non-numeric input
	// reverts to the current displayed value without scheduling a send.
	SetStockFromInput(ctx context.Context, productID int64, raw string) (*domain.StockState, error)

	// StockState reports the controller snapshot, clearing any recorded error.
	StockState(ctx context.Context, productID int64) (*domain.StockState, error)

	// Close cancels every pending debounce timer. Called on shutdown.
	Close()
}
