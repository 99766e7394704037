package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
)

type dashboardService struct {
	BaseService
	transactions portsrepo.TransactionBackend
	now          func() time.Time
}

// DashboardServiceOption configures the dashboard service.
type DashboardServiceOption func(*dashboardService)

// WithClock overrides the time source. Used by tests to pin "today".
func WithClock(now func() time.Time) DashboardServiceOption {
	return func(s *dashboardService) {
		s.now = now
	}
}

// NewDashboardService creates the service backing the dashboard views.
func NewDashboardService(transactions portsrepo.TransactionBackend, sessions portsrepo.SessionReader, opts ...DashboardServiceOption) portssvc.DashboardSvcFacade {
	s := &dashboardService{
		BaseService:  BaseService{Sessions: sessions},
		transactions: transactions,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summary derives the saldo and omzet cards from the full transaction list.
// Saldo compares the running balance with its value at the start of the
// month; omzet compares today's income with yesterday's.
func (s *dashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	txns, err := s.allTransactions(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	saldoNow := Balance(txns)
	saldoPast := BalanceBefore(txns, monthStart)
	omzetToday := OmzetForDate(txns, now)
	omzetYesterday := OmzetForDate(txns, now.AddDate(0, 0, -1))

	return &domain.DashboardSummary{
		Saldo: domain.DashboardCard{
			Current: saldoNow,
			Past:    saldoPast,
			Change:  PercentageChange(saldoNow, saldoPast),
		},
		Omzet: domain.DashboardCard{
			Current: omzetToday,
			Past:    omzetYesterday,
			Change:  PercentageChange(omzetToday, omzetYesterday),
		},
	}, nil
}

func (s *dashboardService) MonthlySeries(ctx context.Context, year int) (*domain.MonthlySeries, error) {
	if year == 0 {
		year = s.now().Year()
	}
	txns, err := s.allTransactions(ctx)
	if err != nil {
		return nil, err
	}
	series := MonthlyBuckets(txns, year, s.now().Location())
	return &series, nil
}

func (s *dashboardService) RecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 5
	}
	page, err := s.transactions.ListTransactions(ctx, businessID, domain.TransactionFilter{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("listing recent transactions: %w", err)
	}
	return page.Transactions, nil
}

func (s *dashboardService) allTransactions(ctx context.Context) ([]domain.Transaction, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	page, err := s.transactions.ListTransactions(ctx, businessID, domain.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return page.Transactions, nil
}
