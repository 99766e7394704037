package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/nusabiz/nusabiz_gateway/internal/apperrors"
	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
)

type transactionService struct {
	BaseService
	transactions portsrepo.TransactionBackend
	products     portsrepo.ProductBackend
}

// NewTransactionService creates the transaction service. The product backend
// is needed to validate sale quantities against current stock before anything
// goes over the wire.
func NewTransactionService(transactions portsrepo.TransactionBackend, products portsrepo.ProductBackend, sessions portsrepo.SessionReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:  BaseService{Sessions: sessions},
		transactions: transactions,
		products:     products,
	}
}

// ListTransactions fetches the filtered page, then applies the free-text
// query locally. The backend has no search endpoint, so the query matches
// against category, description, type label and formatted amount.
func (s *transactionService) ListTransactions(ctx context.Context, opts portssvc.TransactionListOptions) (*domain.TransactionPage, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	page, err := s.transactions.ListTransactions(ctx, businessID, opts.TransactionFilter)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	page.Transactions = FilterTransactions(page.Transactions, opts.Query)
	return page, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, transactionID int64) (*domain.TransactionWithDetails, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	return s.transactions.GetTransaction(ctx, businessID, transactionID)
}

func (s *transactionService) CreateTransaction(ctx context.Context, tx portsrepo.NewTransaction) (*domain.Transaction, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	if !tx.Type.Valid() {
		return nil, fmt.Errorf("unknown transaction type %q: %w", tx.Type, apperrors.ErrValidation)
	}
	if tx.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}
	created, err := s.transactions.CreateTransaction(ctx, businessID, tx)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "transaction created",
		slog.Int64("transaction_id", created.ID),
		slog.String("type", string(created.Type)))
	return created, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID int64, update portsrepo.TransactionUpdate) (*domain.Transaction, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	if update.Type != nil {
		return nil, fmt.Errorf("transaction type cannot be changed after creation: %w", apperrors.ErrValidation)
	}
	if update.Amount != nil && update.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}
	return s.transactions.UpdateTransaction(ctx, businessID, transactionID, update)
}

func (s *transactionService) CancelTransaction(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	cancelled, err := s.transactions.CancelTransaction(ctx, businessID, transactionID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "transaction cancelled", slog.Int64("transaction_id", transactionID))
	return cancelled, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID int64) error {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return err
	}
	return s.transactions.DeleteTransaction(ctx, businessID, transactionID)
}

// RecordSale validates every line against the current catalogue before
// calling the backend: a quantity above the product's current stock never
// leaves the gateway.
func (s *transactionService) RecordSale(ctx context.Context, lines []portsrepo.SaleLine, description string) (*domain.TransactionWithDetails, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateLines(lines); err != nil {
		return nil, err
	}

	products, err := s.products.ListProducts(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("loading catalogue for sale validation: %w", err)
	}
	stock := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		stock[p.ID] = p
	}
	for _, line := range lines {
		p, ok := stock[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("product %d not found in catalogue: %w", line.ProductID, apperrors.ErrValidation)
		}
		if line.Quantity > p.CurrentStock {
			return nil, fmt.Errorf("quantity %d exceeds available stock %d for %q: %w",
				line.Quantity, p.CurrentStock, p.Name, apperrors.ErrValidation)
		}
	}

	return s.transactions.RecordSale(ctx, businessID, lines, description)
}

func (s *transactionService) RecordPurchase(ctx context.Context, lines []portsrepo.SaleLine, description string) (*domain.TransactionWithDetails, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateLines(lines); err != nil {
		return nil, err
	}
	return s.transactions.RecordPurchase(ctx, businessID, lines, description)
}

func (s *transactionService) TransactionTotals(ctx context.Context, startDate, endDate string) (*domain.TransactionTotals, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	return s.transactions.TransactionTotals(ctx, businessID, startDate, endDate)
}

func validateLines(lines []portsrepo.SaleLine) error {
	if len(lines) == 0 {
		return fmt.Errorf("at least one product line is required: %w", apperrors.ErrValidation)
	}
	for _, line := range lines {
		if line.ProductID <= 0 {
			return fmt.Errorf("product id is required: %w", apperrors.ErrValidation)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("quantity must be positive: %w", apperrors.ErrValidation)
		}
		if line.UnitPrice.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("unit price must be positive: %w", apperrors.ErrValidation)
		}
	}
	return nil
}
