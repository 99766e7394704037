package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	"github.com/shopspring/decimal"
)

var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Number renders an amount in id-ID grouping ("." thousands, "," decimals),
// with no fraction digits for whole amounts. Zero renders as "0".
func Number(d decimal.Decimal) string {
	neg := d.IsNegative()
	abs := d.Abs()

	intPart := abs.Floor()
	frac := abs.Sub(intPart)

	grouped := groupThousands(intPart.String())
	out := grouped
	if !frac.IsZero() {
		// Trim the leading "0." from the fractional rendering.
		fracStr := strings.TrimPrefix(frac.String(), "0.")
		out = grouped + "," + fracStr
	}
	if neg {
		out = "-" + out
	}
	return out
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Amount renders a transaction amount with its sign prefix and currency,
// e.g. "+ Rp 150.000" for income and "- Rp 25.000" for expense.
func Amount(amount decimal.Decimal, t domain.TransactionType) string {
	prefix := "- "
	if t == domain.Income {
		prefix = "+ "
	}
	return fmt.Sprintf("%sRp %s", prefix, Number(amount))
}

// TypeLabel maps a transaction type to its display label.
func TypeLabel(t domain.TransactionType) string {
	if t == domain.Income {
		return "Pemasukan"
	}
	return "Pengeluaran"
}

// StatusLabel maps a transaction status to its display label. Unknown
// statuses pass through unchanged.
func StatusLabel(s domain.TransactionStatus) string {
	switch s {
	case domain.StatusPending:
		return "Pending"
	case domain.StatusComplete:
		return "Sukses"
	case domain.StatusCancel:
		return "Dibatalkan"
	}
	return string(s)
}

// DateLong renders a date as "2 Januari 2006".
func DateLong(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// DateShort renders a date as "02/01/2006".
func DateShort(t time.Time) string {
	return t.Format("02/01/2006")
}
