package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/booking-engine/internal/domain"
	customError "github.com/courtside/booking-engine/pkg/errors"
)

func TestAvailableOptions(t *testing.T) {
	tests := []struct {
		name             string
		requireDeposit   bool
		allowFullPayment bool
		expected         []string
	}{
		{
			name:             "both enabled",
			requireDeposit:   true,
			allowFullPayment: true,
			expected:         []string{domain.PaymentTypeDeposit, domain.PaymentTypeFull},
		},
		{
			name:           "deposit only",
			requireDeposit: true,
			expected:       []string{domain.PaymentTypeDeposit},
		},
		{
			name:             "full only",
			allowFullPayment: true,
			expected:         []string{domain.PaymentTypeFull},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := &domain.EstablishmentPolicy{
				EstablishmentID:  "est-1",
				RequireDeposit:   tt.requireDeposit,
				AllowFullPayment: tt.allowFullPayment,
			}

			options, err := AvailableOptions(policy)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, options)
		})
	}
}

func TestAvailableOptions_NoneConfigured(t *testing.T) {
	policy := &domain.EstablishmentPolicy{EstablishmentID: "est-1"}

	options, err := AvailableOptions(policy)

	assert.Nil(t, options)
	assert.True(t, customError.IsCode(err, customError.ErrCodeNoPaymentOption))
}

func TestSelectFinalAmount_Additive(t *testing.T) {
	breakdown := &domain.PaymentBreakdown{
		PaymentType: domain.PaymentTypeDeposit,
		BaseAmount:  decimal.NewFromInt(5000),
		Fee:         decimal.NewFromInt(500),
		TotalAmount: decimal.NewFromInt(5500),
	}
	debt := AggregateDebt([]domain.Debt{
		{ID: uuid.New(), Amount: decimal.NewFromInt(1500), Reason: domain.DebtReasonLateCancellation},
		{ID: uuid.New(), Amount: decimal.NewFromInt(2000), Reason: domain.DebtReasonNoShow},
	})

	final := SelectFinalAmount(breakdown, debt)

	assert.True(t, final.Equal(decimal.NewFromInt(9000)))
	assert.True(t, final.Equal(breakdown.TotalAmount.Add(debt.TotalDebt)),
		"final amount must be exactly total + debt, no hidden rounding")
}

func TestSelectFinalAmount_NoDebt(t *testing.T) {
	breakdown := &domain.PaymentBreakdown{TotalAmount: decimal.NewFromInt(5500)}

	final := SelectFinalAmount(breakdown, AggregateDebt(nil))

	assert.True(t, final.Equal(decimal.NewFromInt(5500)))
}
