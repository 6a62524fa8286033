package policy

import (
	"github.com/shopspring/decimal"

	"github.com/courtside/booking-engine/internal/domain"
)

// AggregateDebt sums a client's outstanding charges into a PendingDebt.
// The sum is order-independent; the slice keeps the input order because the
// payment page lists debts in the order the source returned them.
//
// Callers with an unavailable debt source must pass nil and get the
// zero-debt aggregate back; the core never retries or guesses.
func AggregateDebt(debts []domain.Debt) domain.PendingDebt {
	total := decimal.Zero
	for _, debt := range debts {
		total = total.Add(debt.Amount)
	}

	return domain.PendingDebt{
		HasDebt:   len(debts) > 0,
		TotalDebt: total,
		Debts:     debts,
	}
}
