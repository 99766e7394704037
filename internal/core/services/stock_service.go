package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/nusabiz/nusabiz_gateway/internal/apperrors"
	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
)

const (
	defaultStockDebounce = 500 * time.Millisecond
	defaultStockTimeout  = 30 * time.Second
)

type stockService struct {
	BaseService
	products portsrepo.ProductBackend
	debounce time.Duration
	timeout  time.Duration
	logger   *slog.Logger

	mu          sync.Mutex
	controllers map[int64]*stockController
}

// StockServiceOption configures the stock service.
type StockServiceOption func(*stockService)

// WithStockDebounce overrides the quiescence window before a send fires.
func WithStockDebounce(d time.Duration) StockServiceOption {
	return func(s *stockService) {
		s.debounce = d
	}
}

// WithStockSendTimeout overrides the per-send backend timeout.
func WithStockSendTimeout(d time.Duration) StockServiceOption {
	return func(s *stockService) {
		s.timeout = d
	}
}

// NewStockService creates the service that owns the per-product stock
// controllers. Controllers are created lazily on first touch and live until
// Close.
func NewStockService(products portsrepo.ProductBackend, sessions portsrepo.SessionReader, logger *slog.Logger, opts ...StockServiceOption) portssvc.StockSvcFacade {
	s := &stockService{
		BaseService: BaseService{Sessions: sessions},
		products:    products,
		debounce:    defaultStockDebounce,
		timeout:     defaultStockTimeout,
		logger:      logger,
		controllers: make(map[int64]*stockController),
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *stockService) Increment(ctx context.Context, productID int64) (*domain.StockState, error) {
	c, err := s.controller(ctx, productID)
	if err != nil {
		return nil, err
	}
	state := c.adjust(1)
	return &state, nil
}

func (s *stockService) Decrement(ctx context.Context, productID int64) (*domain.StockState, error) {
	c, err := s.controller(ctx, productID)
	if err != nil {
		return nil, err
	}
	state := c.adjust(-1)
	return &state, nil
}

func (s *stockService) SetStock(ctx context.Context, productID int64, value int64) (*domain.StockState, error) {
	c, err := s.controller(ctx, productID)
	if err != nil {
		return nil, err
	}
	state := c.set(value)
	return &state, nil
}

// SetStockFromInput handles typed entry. Empty or non-numeric text reverts to
// the displayed value without arming the debounce timer.
func (s *stockService) SetStockFromInput(ctx context.Context, productID int64, raw string) (*domain.StockState, error) {
	c, err := s.controller(ctx, productID)
	if err != nil {
		return nil, err
	}
	value, parseErr := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if parseErr != nil {
		state := c.snapshot(false)
		return &state, nil
	}
	state := c.set(value)
	return &state, nil
}

func (s *stockService) StockState(ctx context.Context, productID int64) (*domain.StockState, error) {
	c, err := s.controller(ctx, productID)
	if err != nil {
		return nil, err
	}
	state := c.snapshot(true)
	return &state, nil
}

// Close stops every controller's debounce timer.
func (s *stockService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.controllers {
		c.close()
	}
	s.controllers = make(map[int64]*stockController)
}

// controller returns the product's controller, creating it from a fresh
// backend snapshot the first time the product is touched.
func (s *stockService) controller(ctx context.Context, productID int64) (*stockController, error) {
	s.mu.Lock()
	if c, ok := s.controllers[productID]; ok {
		s.mu.Unlock()
		return c, nil
	}
	s.mu.Unlock()

	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	product, err := s.products.GetProduct(ctx, businessID, productID)
	if err != nil {
		return nil, fmt.Errorf("loading product %d: %w", productID, err)
	}
	if product.BaseStock < 0 {
		return nil, fmt.Errorf("product %d has invalid base stock: %w", productID, apperrors.ErrValidation)
	}

	c := newStockController(product, s.debounce, s.timeout, s.logger,
		func(sendCtx context.Context, delta int64) (*domain.Product, error) {
			return s.products.AdjustStock(sendCtx, businessID, productID, delta)
		})

	s.mu.Lock()
	defer s.mu.Unlock()
	// another request may have created it while we were fetching
	if existing, ok := s.controllers[productID]; ok {
		c.close()
		return existing, nil
	}
	s.controllers[productID] = c
	return c, nil
}
