package services

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	"github.com/nusabiz/nusabiz_gateway/internal/utils/format"
)

// signedAmount folds a transaction into a running balance: income adds,
// expense subtracts.
func signedAmount(t domain.Transaction) decimal.Decimal {
	if t.Type == domain.Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Balance returns the net balance over all transactions.
func Balance(txns []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(signedAmount(t))
	}
	return total
}

// BalanceBefore returns the net balance over transactions dated strictly
// before cutoff.
func BalanceBefore(txns []domain.Transaction, cutoff time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.TransactionDate.Before(cutoff) {
			total = total.Add(signedAmount(t))
		}
	}
	return total
}

// OmzetForDate sums income transactions that fall on the same calendar day
// as day, in day's location.
func OmzetForDate(txns []domain.Transaction, day time.Time) decimal.Decimal {
	y, m, d := day.Date()
	total := decimal.Zero
	for _, t := range txns {
		if t.Type != domain.Income {
			continue
		}
		ty, tm, td := t.TransactionDate.In(day.Location()).Date()
		if ty == y && tm == m && td == d {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// MonthlyBuckets distributes a year's transactions into twelve monthly
// income/expense buckets. Every bucket carries a net value even when the
// month saw no activity.
func MonthlyBuckets(txns []domain.Transaction, year int, loc *time.Location) domain.MonthlySeries {
	var series domain.MonthlySeries
	for _, t := range txns {
		local := t.TransactionDate.In(loc)
		if local.Year() != year {
			continue
		}
		b := &series[int(local.Month())-1]
		switch t.Type {
		case domain.Income:
			b.Income = b.Income.Add(t.Amount)
		case domain.Expense:
			b.Expense = b.Expense.Add(t.Amount)
		}
	}
	for i := range series {
		series[i].Net = series[i].Income.Sub(series[i].Expense)
	}
	return series
}

// PercentageChange reports the relative change from past to current as a
// rounded whole percentage. A zero past period maps to 100 when anything was
// earned now and 0 otherwise, so a first month of activity reads as full
// growth rather than a division blowup.
func PercentageChange(current, past decimal.Decimal) int64 {
	if past.IsZero() {
		if current.GreaterThan(decimal.Zero) {
			return 100
		}
		return 0
	}
	return current.Sub(past).Div(past.Abs()).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// SortProducts returns a copy of products ordered by the given key. Unknown
// keys leave the backend order untouched. The sort is stable so products
// with equal keys keep their relative order.
func SortProducts(products []domain.Product, key string) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)

	price := func(p domain.Product) decimal.Decimal {
		if p.SellingPrice == nil {
			return decimal.Zero
		}
		return *p.SellingPrice
	}

	switch key {
	case domain.SortStockHighest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CurrentStock > out[j].CurrentStock })
	case domain.SortStockLowest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CurrentStock < out[j].CurrentStock })
	case domain.SortPriceHighest:
		sort.SliceStable(out, func(i, j int) bool { return price(out[i]).GreaterThan(price(out[j])) })
	case domain.SortPriceLowest:
		sort.SliceStable(out, func(i, j int) bool { return price(out[i]).LessThan(price(out[j])) })
	}
	return out
}

// FilterTransactions keeps transactions whose category, description, type
// label or formatted amount contains the query, case-insensitively. An empty
// query keeps everything.
func FilterTransactions(txns []domain.Transaction, query string) []domain.Transaction {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return txns
	}
	out := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if strings.Contains(strings.ToLower(t.Category), q) ||
			strings.Contains(strings.ToLower(t.Description), q) ||
			strings.Contains(strings.ToLower(format.TypeLabel(t.Type)), q) ||
			strings.Contains(format.Number(t.Amount), q) {
			out = append(out, t)
		}
	}
	return out
}
