package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	"github.com/nusabiz/nusabiz_gateway/internal/core/services"
)

func tx(t domain.TransactionType, amount int64, date time.Time) domain.Transaction {
	return domain.Transaction{
		Type:            t,
		Amount:          decimal.NewFromInt(amount),
		TransactionDate: date,
	}
}

func TestBalance(t *testing.T) {
	day := time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		tx(domain.Income, 150000, day),
		tx(domain.Expense, 50000, day),
		tx(domain.Income, 25000, day),
	}
	assert.True(t, services.Balance(txns).Equal(decimal.NewFromInt(125000)))
	assert.True(t, services.Balance(nil).IsZero())
}

func TestBalanceBefore(t *testing.T) {
	cutoff := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		tx(domain.Income, 100, cutoff.AddDate(0, 0, -1)),
		tx(domain.Income, 200, cutoff), // on the cutoff itself, excluded
		tx(domain.Expense, 30, cutoff.AddDate(0, -1, 0)),
	}
	assert.True(t, services.BalanceBefore(txns, cutoff).Equal(decimal.NewFromInt(70)))
}

func TestOmzetForDate(t *testing.T) {
	day := time.Date(2025, 3, 7, 15, 30, 0, 0, time.UTC)
	txns := []domain.Transaction{
		tx(domain.Income, 100, time.Date(2025, 3, 7, 0, 0, 1, 0, time.UTC)),
		tx(domain.Income, 200, time.Date(2025, 3, 7, 23, 59, 59, 0, time.UTC)),
		tx(domain.Expense, 999, day), // expenses never count toward omzet
		tx(domain.Income, 400, day.AddDate(0, 0, -1)),
	}
	assert.True(t, services.OmzetForDate(txns, day).Equal(decimal.NewFromInt(300)))
}

func TestMonthlyBuckets(t *testing.T) {
	txns := []domain.Transaction{
		tx(domain.Income, 500, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)),
		tx(domain.Expense, 200, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)),
		tx(domain.Income, 50, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)),
		tx(domain.Income, 9999, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)), // other year
	}
	series := services.MonthlyBuckets(txns, 2025, time.UTC)

	require.True(t, series[0].Income.Equal(decimal.NewFromInt(500)))
	require.True(t, series[0].Expense.Equal(decimal.NewFromInt(200)))
	require.True(t, series[0].Net.Equal(decimal.NewFromInt(300)))
	require.True(t, series[11].Net.Equal(decimal.NewFromInt(50)))

	// months with no activity still carry an explicit zero net
	for i := 1; i < 11; i++ {
		assert.True(t, series[i].Net.IsZero(), "month %d", i+1)
	}
}

func TestPercentageChange(t *testing.T) {
	cases := []struct {
		name          string
		current, past int64
		want          int64
	}{
		{"growth", 150, 100, 50},
		{"decline", 50, 100, -50},
		{"flat", 100, 100, 0},
		{"zero past with activity", 80, 0, 100},
		{"zero past no activity", 0, 0, 0},
		{"negative past", 50, -100, 150},
		{"rounded", 100, 3, 3233},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := services.PercentageChange(decimal.NewFromInt(c.current), decimal.NewFromInt(c.past))
			assert.Equal(t, c.want, got)
		})
	}
}

func TestSortProducts(t *testing.T) {
	price := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	products := []domain.Product{
		{ID: 1, CurrentStock: 5, SellingPrice: price(300)},
		{ID: 2, CurrentStock: 20, SellingPrice: price(100)},
		{ID: 3, CurrentStock: 5, SellingPrice: nil},
	}

	byStock := services.SortProducts(products, domain.SortStockHighest)
	assert.Equal(t, []int64{2, 1, 3}, productIDs(byStock))

	byPrice := services.SortProducts(products, domain.SortPriceLowest)
	assert.Equal(t, []int64{3, 2, 1}, productIDs(byPrice))

	// unknown key keeps backend order and the input is never mutated
	same := services.SortProducts(products, "whatever")
	assert.Equal(t, []int64{1, 2, 3}, productIDs(same))
	assert.Equal(t, int64(1), products[0].ID)
}

func productIDs(products []domain.Product) []int64 {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestFilterTransactions(t *testing.T) {
	day := time.Now()
	txns := []domain.Transaction{
		{Type: domain.Income, Category: "Penjualan", Description: "kopi susu", Amount: decimal.NewFromInt(150000), TransactionDate: day},
		{Type: domain.Expense, Category: "Operasional", Description: "listrik", Amount: decimal.NewFromInt(75000), TransactionDate: day},
	}

	assert.Len(t, services.FilterTransactions(txns, ""), 2)
	assert.Len(t, services.FilterTransactions(txns, "KOPI"), 1)
	assert.Len(t, services.FilterTransactions(txns, "pemasukan"), 1)
	assert.Len(t, services.FilterTransactions(txns, "pengeluaran"), 1)
	assert.Len(t, services.FilterTransactions(txns, "150.000"), 1)
	assert.Len(t, services.FilterTransactions(txns, "bakso"), 0)
}
