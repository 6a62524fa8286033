package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	customError "github.com/courtside/booking-engine/pkg/errors"
)

func validPolicy() *EstablishmentPolicy {
	p := &EstablishmentPolicy{
		EstablishmentID:   "est-1",
		RequireDeposit:    true,
		DepositType:       DepositTypePercentage,
		DepositPercentage: decimal.NewFromInt(50),
		AllowFullPayment:  true,
	}
	p.Resolve()
	return p
}

func TestResolve_Defaults(t *testing.T) {
	p := &EstablishmentPolicy{EstablishmentID: "est-1", NoShowPenalty: true}
	p.Resolve()

	assert.True(t, p.PlatformFeePercent.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, CancellationFullRefund, p.CancellationPolicy)
	assert.Equal(t, NoShowPenaltyFullCharge, p.NoShowPenaltyType)
}

func TestResolve_KeepsExplicitValues(t *testing.T) {
	p := &EstablishmentPolicy{
		PlatformFeePercent: decimal.NewFromInt(7),
		CancellationPolicy: CancellationCredit,
	}
	p.Resolve()

	assert.True(t, p.PlatformFeePercent.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, CancellationCredit, p.CancellationPolicy)
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validPolicy().Validate())
}

func TestValidate_Inconsistencies(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EstablishmentPolicy)
	}{
		{
			name: "percentage deposit without percentage",
			mutate: func(p *EstablishmentPolicy) {
				p.DepositPercentage = decimal.Zero
			},
		},
		{
			name: "deposit percentage above 100",
			mutate: func(p *EstablishmentPolicy) {
				p.DepositPercentage = decimal.NewFromInt(150)
			},
		},
		{
			name: "fixed deposit without amount",
			mutate: func(p *EstablishmentPolicy) {
				p.DepositType = DepositTypeFixed
				p.DepositFixedAmount = decimal.Zero
			},
		},
		{
			name: "deposit required with unknown type",
			mutate: func(p *EstablishmentPolicy) {
				p.DepositType = "half"
			},
		},
		{
			name: "partial refund without percentage outside range",
			mutate: func(p *EstablishmentPolicy) {
				p.CancellationPolicy = CancellationPartialRefund
				p.RefundPercentage = decimal.NewFromInt(120)
			},
		},
		{
			name: "unknown cancellation policy",
			mutate: func(p *EstablishmentPolicy) {
				p.CancellationPolicy = "store_credit"
			},
		},
		{
			name: "percentage penalty without percentage",
			mutate: func(p *EstablishmentPolicy) {
				p.NoShowPenalty = true
				p.NoShowPenaltyType = NoShowPenaltyPercentage
			},
		},
		{
			name: "negative booking window",
			mutate: func(p *EstablishmentPolicy) {
				p.MinAdvanceBookingHours = -1
			},
		},
		{
			name: "platform fee above 100",
			mutate: func(p *EstablishmentPolicy) {
				p.PlatformFeePercent = decimal.NewFromInt(101)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPolicy()
			tt.mutate(p)

			err := p.Validate()
			assert.True(t, customError.IsCode(err, customError.ErrCodeConfiguration),
				"expected configuration error, got %v", err)
		})
	}
}
