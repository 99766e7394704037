package services

import (
	"context"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
)

// TransactionListOptions extends the backend filter with the client-side
// free-text search the transaction table offers.
type TransactionListOptions struct {
	domain.TransactionFilter
	Query string
}

// TransactionSvcFacade exposes the transaction operations of the active business.
type TransactionSvcFacade interface {
	ListTransactions(ctx context.Context, opts TransactionListOptions) (*domain.TransactionPage, error)
	GetTransaction(ctx context.Context, transactionID int64) (*domain.TransactionWithDetails, error)
	CreateTransaction(ctx context.Context, tx portsrepo.NewTransaction) (*domain.Transaction, error)

	// UpdateTransaction rejects any attempt to change the transaction type:
	// the reversal math downstream assumes the type is fixed at creation.
	UpdateTransaction(ctx context.Context, transactionID int64, update portsrepo.TransactionUpdate) (*domain.Transaction, error)

	CancelTransaction(ctx context.Context, transactionID int64) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID int64) error

	RecordSale(ctx context.Context, lines []portsrepo.SaleLine, description string) (*domain.TransactionWithDetails, error)
	RecordPurchase(ctx context.Context, lines []portsrepo.SaleLine, description string) (*domain.TransactionWithDetails, error)

	TransactionTotals(ctx context.Context, startDate, endDate string) (*domain.TransactionTotals, error)
}
