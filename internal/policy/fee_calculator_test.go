package policy

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/booking-engine/internal/domain"
	customError "github.com/courtside/booking-engine/pkg/errors"
)

func percentageDepositPolicy(percent int64) *domain.EstablishmentPolicy {
	p := &domain.EstablishmentPolicy{
		EstablishmentID:   "est-1",
		RequireDeposit:    true,
		DepositType:       domain.DepositTypePercentage,
		DepositPercentage: decimal.NewFromInt(percent),
		AllowFullPayment:  true,
	}
	p.Resolve()
	return p
}

func fixedDepositPolicy(amount int64) *domain.EstablishmentPolicy {
	p := &domain.EstablishmentPolicy{
		EstablishmentID:    "est-1",
		RequireDeposit:     true,
		DepositType:        domain.DepositTypeFixed,
		DepositFixedAmount: decimal.NewFromInt(amount),
		AllowFullPayment:   true,
	}
	p.Resolve()
	return p
}

func TestComputeBreakdown_PercentageDeposit(t *testing.T) {
	policy := percentageDepositPolicy(50)

	breakdown, err := ComputeBreakdown(
		decimal.NewFromInt(10000), policy, domain.FeeDiscount{}, domain.PaymentTypeDeposit)

	require.NoError(t, err)
	assert.True(t, breakdown.BaseAmount.Equal(decimal.NewFromInt(5000)))
	assert.True(t, breakdown.Fee.Equal(decimal.NewFromInt(500)))
	assert.True(t, breakdown.GeneralFee.Equal(decimal.NewFromInt(500)))
	assert.True(t, breakdown.TotalAmount.Equal(decimal.NewFromInt(5500)))
	assert.True(t, breakdown.RemainingAmount.Equal(decimal.NewFromInt(5000)))
}

func TestComputeBreakdown_FullDiscountZeroesFee(t *testing.T) {
	policy := percentageDepositPolicy(50)
	discount := domain.FeeDiscount{
		HasDiscount:     true,
		DiscountPercent: decimal.NewFromInt(100),
	}

	breakdown, err := ComputeBreakdown(
		decimal.NewFromInt(10000), policy, discount, domain.PaymentTypeDeposit)

	require.NoError(t, err)
	assert.True(t, breakdown.Fee.IsZero())
	assert.True(t, breakdown.GeneralFee.Equal(decimal.NewFromInt(500)),
		"crossed-out fee keeps the pre-discount value")
	assert.True(t, breakdown.TotalAmount.Equal(decimal.NewFromInt(5000)))
}

func TestComputeBreakdown_FullPayment(t *testing.T) {
	policy := fixedDepositPolicy(3000)

	breakdown, err := ComputeBreakdown(
		decimal.NewFromInt(8000), policy, domain.FeeDiscount{}, domain.PaymentTypeFull)

	require.NoError(t, err)
	assert.True(t, breakdown.BaseAmount.Equal(decimal.NewFromInt(8000)))
	assert.True(t, breakdown.RemainingAmount.IsZero())
}

func TestComputeBreakdown_FixedDepositNeverExceedsFullPrice(t *testing.T) {
	policy := fixedDepositPolicy(5000)

	breakdown, err := ComputeBreakdown(
		decimal.NewFromInt(3500), policy, domain.FeeDiscount{}, domain.PaymentTypeDeposit)

	require.NoError(t, err)
	assert.True(t, breakdown.BaseAmount.Equal(decimal.NewFromInt(3500)))
	assert.True(t, breakdown.RemainingAmount.IsZero())
}

func TestComputeBreakdown_RemainingPlusBaseEqualsFullPrice(t *testing.T) {
	fullPrices := []int64{1, 99, 3333, 10000, 12345}

	for _, price := range fullPrices {
		fullPrice := decimal.NewFromInt(price)
		breakdown, err := ComputeBreakdown(
			fullPrice, percentageDepositPolicy(30), domain.FeeDiscount{}, domain.PaymentTypeDeposit)

		require.NoError(t, err)
		sum := breakdown.BaseAmount.Add(breakdown.RemainingAmount)
		assert.True(t, sum.Equal(fullPrice),
			"base %v + remaining %v should equal full price %v",
			breakdown.BaseAmount, breakdown.RemainingAmount, fullPrice)
	}
}

func TestComputeBreakdown_HalfUpRounding(t *testing.T) {
	// 25% of 10 = 2.5, which rounds up to 3
	breakdown, err := ComputeBreakdown(
		decimal.NewFromInt(10), percentageDepositPolicy(25), domain.FeeDiscount{}, domain.PaymentTypeDeposit)

	require.NoError(t, err)
	assert.True(t, breakdown.BaseAmount.Equal(decimal.NewFromInt(3)))
}

func TestComputeBreakdown_DiscountFeePercentSnapshotWins(t *testing.T) {
	policy := percentageDepositPolicy(50) // platform fee resolved to 10
	discount := domain.FeeDiscount{
		HasDiscount:       true,
		GeneralFeePercent: decimal.NewFromInt(20),
		DiscountPercent:   decimal.NewFromInt(50),
	}

	breakdown, err := ComputeBreakdown(
		decimal.NewFromInt(10000), policy, discount, domain.PaymentTypeDeposit)

	require.NoError(t, err)
	assert.True(t, breakdown.GeneralFee.Equal(decimal.NewFromInt(1000)))
	assert.True(t, breakdown.Fee.Equal(decimal.NewFromInt(500)))
}

func TestComputeBreakdown_Idempotent(t *testing.T) {
	policy := percentageDepositPolicy(50)
	discount := domain.FeeDiscount{HasDiscount: true, DiscountPercent: decimal.NewFromInt(25)}
	fullPrice := decimal.NewFromInt(7777)

	first, err := ComputeBreakdown(fullPrice, policy, discount, domain.PaymentTypeDeposit)
	require.NoError(t, err)
	second, err := ComputeBreakdown(fullPrice, policy, discount, domain.PaymentTypeDeposit)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeBreakdown_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		fullPrice   decimal.Decimal
		policy      *domain.EstablishmentPolicy
		paymentType string
		wantCode    string
	}{
		{
			name:      "full payment disallowed by policy",
			fullPrice: decimal.NewFromInt(10000),
			policy: &domain.EstablishmentPolicy{
				RequireDeposit:    true,
				DepositType:       domain.DepositTypePercentage,
				DepositPercentage: decimal.NewFromInt(50),
				AllowFullPayment:  false,
			},
			paymentType: domain.PaymentTypeFull,
			wantCode:    customError.ErrCodePolicyViolation,
		},
		{
			name:        "deposit requested but not required",
			fullPrice:   decimal.NewFromInt(10000),
			policy:      &domain.EstablishmentPolicy{AllowFullPayment: true},
			paymentType: domain.PaymentTypeDeposit,
			wantCode:    customError.ErrCodePolicyViolation,
		},
		{
			name:        "zero full price",
			fullPrice:   decimal.Zero,
			policy:      percentageDepositPolicy(50),
			paymentType: domain.PaymentTypeDeposit,
			wantCode:    customError.ErrCodeInvalidArgument,
		},
		{
			name:        "negative full price",
			fullPrice:   decimal.NewFromInt(-100),
			policy:      percentageDepositPolicy(50),
			paymentType: domain.PaymentTypeDeposit,
			wantCode:    customError.ErrCodeInvalidArgument,
		},
		{
			name:        "unknown payment type",
			fullPrice:   decimal.NewFromInt(100),
			policy:      percentageDepositPolicy(50),
			paymentType: "installments",
			wantCode:    customError.ErrCodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown, err := ComputeBreakdown(tt.fullPrice, tt.policy, domain.FeeDiscount{}, tt.paymentType)

			assert.Nil(t, breakdown)
			assert.True(t, customError.IsCode(err, tt.wantCode),
				"expected code %s, got %v", tt.wantCode, err)
		})
	}
}
