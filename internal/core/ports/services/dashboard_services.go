package services

import (
	"context"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
)

// DashboardSvcFacade builds the derived views backing the dashboard page.
type DashboardSvcFacade interface {
	// Summary computes saldo and today's omzet against their reference periods.
	Summary(ctx context.Context) (*domain.DashboardSummary, error)

	// MonthlySeries buckets the year's transactions per calendar month.
	MonthlySeries(ctx context.Context, year int) (*domain.MonthlySeries, error)

	// RecentTransactions returns the newest transactions for the history panel.
	RecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
}
