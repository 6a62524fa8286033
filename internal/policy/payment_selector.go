package policy

import (
	"github.com/shopspring/decimal"

	"github.com/courtside/booking-engine/internal/domain"
	customError "github.com/courtside/booking-engine/pkg/errors"
)

// AvailableOptions returns the payment types the establishment offers, in
// the order they are shown to the customer: deposit first, then full.
//
// An establishment with neither flag enabled cannot take bookings at all;
// that is a configuration error for its admin, not a transient failure.
func AvailableOptions(policy *domain.EstablishmentPolicy) ([]string, error) {
	var options []string
	if policy.RequireDeposit {
		options = append(options, domain.PaymentTypeDeposit)
	}
	if policy.AllowFullPayment {
		options = append(options, domain.PaymentTypeFull)
	}

	if len(options) == 0 {
		return nil, customError.WrapNoPaymentOption(policy.EstablishmentID)
	}
	return options, nil
}

// SelectFinalAmount is the literal amount handed to the payment gateway:
// the breakdown total plus any outstanding debt, nothing else. It must equal
// the sum shown to the customer with no hidden rounding.
func SelectFinalAmount(breakdown *domain.PaymentBreakdown, debt domain.PendingDebt) decimal.Decimal {
	return breakdown.TotalAmount.Add(debt.TotalDebt)
}
