package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// TransactionRepository implements the business-scoped transaction endpoints.
type TransactionRepository struct {
	client *Client
}

// NewTransactionRepository creates a TransactionRepository over the shared client.
func NewTransactionRepository(client *Client) *TransactionRepository {
	return &TransactionRepository{client: client}
}

var _ portsrepo.TransactionBackend = (*TransactionRepository)(nil)

func transactionsPath(businessID int64) string {
	return fmt.Sprintf("/businesses/%d/transactions", businessID)
}

// ListTransactions returns a filtered page of transactions.
func (r *TransactionRepository) ListTransactions(ctx context.Context, businessID int64, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	params := url.Values{}
	if filter.Type != "" {
		params.Set("type", string(filter.Type))
	}
	if filter.Category != "" {
		params.Set("category", filter.Category)
	}
	if filter.Status != "" {
		params.Set("status", string(filter.Status))
	}
	if filter.StartDate != "" {
		params.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		params.Set("endDate", filter.EndDate)
	}
	if filter.Limit > 0 {
		params.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		params.Set("offset", strconv.Itoa(filter.Offset))
	}

	path := transactionsPath(businessID)
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page domain.TransactionPage
	if err := r.client.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetTransaction fetches a transaction joined with its product lines.
func (r *TransactionRepository) GetTransaction(ctx context.Context, businessID, transactionID int64) (*domain.TransactionWithDetails, error) {
	var tx domain.TransactionWithDetails
	path := fmt.Sprintf("%s/%d", transactionsPath(businessID), transactionID)
	if err := r.client.do(ctx, http.MethodGet, path, nil, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// CreateTransaction records a new income or expense.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, businessID int64, tx portsrepo.NewTransaction) (*domain.Transaction, error) {
	var created domain.Transaction
	if err := r.client.do(ctx, http.MethodPost, transactionsPath(businessID), tx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTransaction applies a partial update.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, businessID, transactionID int64, update portsrepo.TransactionUpdate) (*domain.Transaction, error) {
	var updated domain.Transaction
	path := fmt.Sprintf("%s/%d", transactionsPath(businessID), transactionID)
	if err := r.client.do(ctx, http.MethodPut, path, update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CancelTransaction marks a transaction as cancelled.
func (r *TransactionRepository) CancelTransaction(ctx context.Context, businessID, transactionID int64) (*domain.Transaction, error) {
	var cancelled domain.Transaction
	path := fmt.Sprintf("%s/%d/cancel", transactionsPath(businessID), transactionID)
	if err := r.client.do(ctx, http.MethodPut, path, nil, &cancelled); err != nil {
		return nil, err
	}
	return &cancelled, nil
}

// DeleteTransaction soft-deletes a transaction.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, businessID, transactionID int64) error {
	path := fmt.Sprintf("%s/%d", transactionsPath(businessID), transactionID)
	return r.client.do(ctx, http.MethodDelete, path, nil, nil)
}

type saleLineWire struct {
	ProductID     int64            `json:"productId"`
	Quantity      int64            `json:"quantity"`
	SellingPrice  *decimal.Decimal `json:"sellingPrice,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice,omitempty"`
}

type recordRequest struct {
	Products    []saleLineWire `json:"products"`
	Description string         `json:"description,omitempty"`
}

// RecordSale records a product sale transaction.
func (r *TransactionRepository) RecordSale(ctx context.Context, businessID int64, lines []portsrepo.SaleLine, description string) (*domain.TransactionWithDetails, error) {
	body := recordRequest{Description: description}
	for _, l := range lines {
		price := l.UnitPrice
		body.Products = append(body.Products, saleLineWire{ProductID: l.ProductID, Quantity: l.Quantity, SellingPrice: &price})
	}
	var recorded domain.TransactionWithDetails
	if err := r.client.do(ctx, http.MethodPost, transactionsPath(businessID)+"/sales", body, &recorded); err != nil {
		return nil, err
	}
	return &recorded, nil
}

// RecordPurchase records a stock purchase transaction.
func (r *TransactionRepository) RecordPurchase(ctx context.Context, businessID int64, lines []portsrepo.SaleLine, description string) (*domain.TransactionWithDetails, error) {
	body := recordRequest{Description: description}
	for _, l := range lines {
		price := l.UnitPrice
		body.Products = append(body.Products, saleLineWire{ProductID: l.ProductID, Quantity: l.Quantity, PurchasePrice: &price})
	}
	var recorded domain.TransactionWithDetails
	if err := r.client.do(ctx, http.MethodPost, transactionsPath(businessID)+"/purchases", body, &recorded); err != nil {
		return nil, err
	}
	return &recorded, nil
}

// TransactionTotals returns income/expense/net totals over an optional range.
func (r *TransactionRepository) TransactionTotals(ctx context.Context, businessID int64, startDate, endDate string) (*domain.TransactionTotals, error) {
	params := url.Values{}
	if startDate != "" {
		params.Set("startDate", startDate)
	}
	if endDate != "" {
		params.Set("endDate", endDate)
	}
	path := transactionsPath(businessID) + "/totals"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var totals domain.TransactionTotals
	if err := r.client.do(ctx, http.MethodGet, path, nil, &totals); err != nil {
		return nil, err
	}
	return &totals, nil
}
