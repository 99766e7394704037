package domain

import "github.com/shopspring/decimal"

// MonthlyBucket accumulates one calendar month of income and expense.
// Net is always income - expense, including for months with no contributions.
type MonthlyBucket struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// MonthlySeries is the twelve buckets of one calendar year, January first.
type MonthlySeries [12]MonthlyBucket

// DashboardCard pairs a current figure with its reference figure and the
// rounded percentage change between them.
type DashboardCard struct {
	Current decimal.Decimal `json:"current"`
	Past    decimal.Decimal `json:"past"`
	Change  int64           `json:"change"`
}

// DashboardSummary is the derived view backing the dashboard page: overall
// saldo against last month's, and today's omzet against yesterday's.
type DashboardSummary struct {
	Saldo DashboardCard `json:"saldo"`
	Omzet DashboardCard `json:"omzet"`
}
