// Package policy is the pure computation core of the booking engine: fee and
// deposit breakdowns, debt aggregation, payment-type selection, booking
// window checks and cancellation evaluation. Everything here is a pure
// function over already-fetched inputs; no I/O, no shared state.
package policy

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/courtside/booking-engine/internal/domain"
	customError "github.com/courtside/booking-engine/pkg/errors"
	"github.com/courtside/booking-engine/pkg/utils"
)

// ComputeBreakdown splits a booking's full price into what the customer pays
// now and what stays due at the venue, for one payment-type candidate.
//
// The deposit base is a percentage of the full price or a fixed amount capped
// at the full price, per the policy's deposit type. The platform fee is
// charged on the base, with any fee discount applied on top; a 100% discount
// zeroes the fee exactly.
func ComputeBreakdown(fullPrice decimal.Decimal, policy *domain.EstablishmentPolicy, discount domain.FeeDiscount, paymentType string) (*domain.PaymentBreakdown, error) {
	if fullPrice.LessThanOrEqual(decimal.Zero) {
		return nil, customError.WrapInvalidArgument(
			fmt.Sprintf("full price must be positive, got %s", fullPrice))
	}

	var base decimal.Decimal
	switch paymentType {
	case domain.PaymentTypeDeposit:
		if !policy.RequireDeposit {
			return nil, customError.WrapPaymentTypeNotAllowed(paymentType)
		}
		base = depositBase(fullPrice, policy)
	case domain.PaymentTypeFull:
		if !policy.AllowFullPayment {
			return nil, customError.WrapPaymentTypeNotAllowed(paymentType)
		}
		base = fullPrice
	default:
		return nil, customError.WrapInvalidArgument(
			fmt.Sprintf("unknown payment type %q", paymentType))
	}

	feePercent := policy.PlatformFeePercent
	if discount.GeneralFeePercent.GreaterThan(decimal.Zero) {
		// The discount row carries a fee-percent snapshot taken when the
		// promotion was granted; it wins over the live policy value.
		feePercent = discount.GeneralFeePercent
	}

	generalFee := utils.PercentOf(base, feePercent)
	fee := generalFee
	if discount.HasDiscount {
		fee = utils.ApplyDiscount(generalFee, discount.DiscountPercent)
	}

	remaining := decimal.Zero
	if paymentType == domain.PaymentTypeDeposit {
		remaining = fullPrice.Sub(base)
	}

	return &domain.PaymentBreakdown{
		PaymentType:     paymentType,
		BaseAmount:      base,
		Fee:             fee,
		GeneralFee:      generalFee,
		TotalAmount:     base.Add(fee),
		RemainingAmount: remaining,
	}, nil
}

// depositBase returns the principal owed up front under the policy's deposit
// rules. A fixed deposit never exceeds the full price.
func depositBase(fullPrice decimal.Decimal, policy *domain.EstablishmentPolicy) decimal.Decimal {
	if policy.DepositType == domain.DepositTypeFixed {
		return utils.MinMoney(policy.DepositFixedAmount, fullPrice)
	}
	return utils.PercentOf(fullPrice, policy.DepositPercentage)
}
