package services

import (
	"context"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
)

// ExportSvcFacade renders transaction listings as downloadable spreadsheets.
type ExportSvcFacade interface {
	// ExportTransactions builds an xlsx workbook for the given transactions
	// with the fixed column order (date, type label, category, raw amount,
	// formatted amount, description) and returns the file content plus a
	// filename embedding the current date. An empty list is a validation error.
	ExportTransactions(ctx context.Context, transactions []domain.Transaction) ([]byte, string, error)
}
