package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
)

// stockController coordinates optimistic stock edits for one product.
//
// Every adjustment updates the displayed value immediately and (re)arms a
// debounce timer; only when the timer fires does a single backend call carry
// the accumulated delta against the last confirmed value. A failed send rolls
// the displayed value back to the confirmed one.
type stockController struct {
	productID int64
	debounce  time.Duration
	timeout   time.Duration
	send      func(ctx context.Context, delta int64) (*domain.Product, error)
	logger    *slog.Logger

	mu        sync.Mutex // guards the fields below
	baseStock int64
	displayed int64
	confirmed int64
	pending   bool
	lastErr   error
	timer     *time.Timer
	closed    bool

	sendMu sync.Mutex // serializes flushes so deltas apply in order
}

func newStockController(p *domain.Product, debounce, timeout time.Duration, logger *slog.Logger,
	send func(ctx context.Context, delta int64) (*domain.Product, error)) *stockController {
	return &stockController{
		productID: p.ID,
		debounce:  debounce,
		timeout:   timeout,
		send:      send,
		logger:    logger,
		baseStock: p.BaseStock,
		displayed: p.CurrentStock,
		confirmed: p.CurrentStock,
	}
}

// adjust moves the displayed value by delta, clamped to [0, baseStock], and
// restarts the debounce window.
func (c *stockController) adjust(delta int64) domain.StockState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setLocked(c.displayed + delta)
}

// set applies an absolute displayed value, clamped to [0, baseStock], and
// restarts the debounce window.
func (c *stockController) set(value int64) domain.StockState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setLocked(value)
}

func (c *stockController) setLocked(value int64) domain.StockState {
	if c.closed {
		return c.snapshotLocked()
	}
	if value < 0 {
		value = 0
	}
	if value > c.baseStock {
		value = c.baseStock
	}
	c.displayed = value
	c.pending = true
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, c.flush)
	return c.snapshotLocked()
}

// snapshot reports the current state. When clearErr is set the recorded send
// error is consumed, so each failure is reported once.
func (c *stockController) snapshot(clearErr bool) domain.StockState {
	c.mu.Lock()
	defer c.mu.Unlock()
	state := c.snapshotLocked()
	if clearErr {
		c.lastErr = nil
	}
	return state
}

func (c *stockController) snapshotLocked() domain.StockState {
	state := domain.StockState{
		ProductID: c.productID,
		BaseStock: c.baseStock,
		Displayed: c.displayed,
		Confirmed: c.confirmed,
		Pending:   c.pending,
	}
	if c.lastErr != nil {
		state.LastError = c.lastErr.Error()
	}
	return state
}

// flush runs on the debounce timer's goroutine. It sends the delta between
// the displayed and confirmed values; a zero delta sends nothing.
func (c *stockController) flush() {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	target := c.displayed
	delta := target - c.confirmed
	if delta == 0 {
		c.pending = false
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	product, err := c.send(ctx, delta)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.displayed = c.confirmed
		c.lastErr = err
		c.pending = false
		c.logger.Error("stock update failed, rolling back",
			slog.Int64("product_id", c.productID),
			slog.Int64("delta", delta),
			slog.String("error", err.Error()))
		return
	}

	c.confirmed = target
	if product != nil {
		c.baseStock = product.BaseStock
	}
	// an adjustment made while the send was in flight keeps pending set;
	// its own timer is already running
	if c.displayed == c.confirmed {
		c.pending = false
	}
	c.logger.Debug("stock update confirmed",
		slog.Int64("product_id", c.productID),
		slog.Int64("delta", delta),
		slog.Int64("confirmed", c.confirmed))
}

// close stops the debounce timer. A pending delta is dropped, matching the
// page-navigation behavior where unsent edits are discarded.
func (c *stockController) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
