package policy

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/courtside/booking-engine/internal/domain"
	"github.com/courtside/booking-engine/pkg/utils"
)

var fullRefundPercent = decimal.NewFromInt(100)

// EvaluateCancellation decides the refund for cancelling at `now` a booking
// starting at `bookingStart`.
//
// On-time cancellations (at or before the deadline; the boundary counts as
// on-time) follow the establishment's cancellation policy. Credit refunds
// keep 100% of the value but in a distinct mode so the caller routes them to
// a credit balance instead of a cash settlement.
//
// Late cancellations and no-shows take the penalty path when the policy
// enables it; otherwise they fall back to the regular cancellation policy,
// since the establishment opted out of penalties.
func EvaluateCancellation(bookingStart, now time.Time, policy *domain.EstablishmentPolicy) domain.RefundDecision {
	deadline := bookingStart.Add(-time.Duration(policy.CancellationDeadlineHours) * time.Hour)

	if now.After(deadline) && policy.NoShowPenalty {
		return penaltyDecision(policy)
	}
	return onTimeDecision(policy)
}

func onTimeDecision(policy *domain.EstablishmentPolicy) domain.RefundDecision {
	decision := domain.RefundDecision{Mode: domain.RefundModeCash}

	switch policy.CancellationPolicy {
	case domain.CancellationPartialRefund:
		decision.RefundPercent = policy.RefundPercentage
	case domain.CancellationNoRefund:
		decision.RefundPercent = decimal.Zero
	case domain.CancellationCredit:
		decision.RefundPercent = fullRefundPercent
		decision.Mode = domain.RefundModeCredit
	default:
		decision.RefundPercent = fullRefundPercent
	}

	decision.RetainedScope = domain.RetainedScopeNone
	if decision.RefundPercent.LessThan(fullRefundPercent) {
		decision.RetainedScope = domain.RetainedScopeFullPrice
	}
	return decision
}

func penaltyDecision(policy *domain.EstablishmentPolicy) domain.RefundDecision {
	decision := domain.RefundDecision{
		Mode:                 domain.RefundModeCash,
		NoShowPenaltyApplied: true,
	}

	switch policy.NoShowPenaltyType {
	case domain.NoShowPenaltyDepositOnly:
		// Only the deposit-equivalent amount is retained, even when the
		// customer paid in full; the rest comes back.
		decision.RefundPercent = decimal.Zero
		decision.RetainedScope = domain.RetainedScopeDepositOnly
	case domain.NoShowPenaltyPercentage:
		decision.RefundPercent = fullRefundPercent.Sub(policy.NoShowPenaltyPercentage)
		decision.RetainedScope = domain.RetainedScopeFullPrice
	default: // full_charge
		decision.RefundPercent = decimal.Zero
		decision.RetainedScope = domain.RetainedScopeFullPrice
	}
	return decision
}

// RefundAmount converts a decision into money against the booking's full
// price. Refund and retained amounts always add back up to the full price.
func RefundAmount(fullPrice decimal.Decimal, policy *domain.EstablishmentPolicy, decision domain.RefundDecision) decimal.Decimal {
	return fullPrice.Sub(RetainedAmount(fullPrice, policy, decision))
}

// RetainedAmount is what the establishment keeps under the decision. For a
// deposit_only penalty the retained figure is what the deposit would have
// been under the current policy, recomputed from the full price, so a
// customer who paid in full is not penalised more than one who paid a
// deposit.
func RetainedAmount(fullPrice decimal.Decimal, policy *domain.EstablishmentPolicy, decision domain.RefundDecision) decimal.Decimal {
	switch decision.RetainedScope {
	case domain.RetainedScopeDepositOnly:
		return depositBase(fullPrice, policy)
	case domain.RetainedScopeFullPrice:
		return fullPrice.Sub(utils.PercentOf(fullPrice, decision.RefundPercent))
	default:
		return decimal.Zero
	}
}
