package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	customError "github.com/courtside/booking-engine/pkg/errors"
	"github.com/courtside/booking-engine/pkg/utils"
)

const (
	DepositTypePercentage = "percentage"
	DepositTypeFixed      = "fixed"
)

const (
	CancellationFullRefund    = "full_refund"
	CancellationPartialRefund = "partial_refund"
	CancellationNoRefund      = "no_refund"
	CancellationCredit        = "credit"
)

const (
	NoShowPenaltyFullCharge  = "full_charge"
	NoShowPenaltyDepositOnly = "deposit_only"
	NoShowPenaltyPercentage  = "percentage"
)

// DefaultPlatformFeePercent applies when an establishment has no explicit
// platform fee configured.
var DefaultPlatformFeePercent = decimal.NewFromInt(10)

// EstablishmentPolicy is the per-establishment booking and payment
// configuration. It is written by establishment admins and read-only to the
// payment flow.
type EstablishmentPolicy struct {
	ID                          uuid.UUID       `json:"id" db:"id"`
	EstablishmentID             string          `json:"establishment_id" db:"establishment_id"`
	RequireDeposit              bool            `json:"require_deposit" db:"require_deposit"`
	DepositType                 string          `json:"deposit_type" db:"deposit_type"`
	DepositPercentage           decimal.Decimal `json:"deposit_percentage" db:"deposit_percentage"`
	DepositFixedAmount          decimal.Decimal `json:"deposit_fixed_amount" db:"deposit_fixed_amount"`
	AllowFullPayment            bool            `json:"allow_full_payment" db:"allow_full_payment"`
	PlatformFeePercent          decimal.Decimal `json:"platform_fee_percent" db:"platform_fee_percent"`
	MaxAdvanceBookingDays       int             `json:"max_advance_booking_days" db:"max_advance_booking_days"`
	MinAdvanceBookingHours      int             `json:"min_advance_booking_hours" db:"min_advance_booking_hours"`
	AllowSameDayBooking         bool            `json:"allow_same_day_booking" db:"allow_same_day_booking"`
	CancellationDeadlineHours   int             `json:"cancellation_deadline_hours" db:"cancellation_deadline_hours"`
	CancellationPolicy          string          `json:"cancellation_policy" db:"cancellation_policy"`
	RefundPercentage            decimal.Decimal `json:"refund_percentage" db:"refund_percentage"`
	NoShowPenalty               bool            `json:"no_show_penalty" db:"no_show_penalty"`
	NoShowPenaltyType           string          `json:"no_show_penalty_type" db:"no_show_penalty_type"`
	NoShowPenaltyPercentage     decimal.Decimal `json:"no_show_penalty_percentage" db:"no_show_penalty_percentage"`
	DepositPaymentDeadlineHours int             `json:"deposit_payment_deadline_hours" db:"deposit_payment_deadline_hours"`
	CreatedAt                   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt                   time.Time       `json:"updated_at" db:"updated_at"`
}

// Resolve fills optional fields with their defaults so downstream
// calculations always see a fully-resolved policy. Defaults live here and
// nowhere else.
func (p *EstablishmentPolicy) Resolve() {
	if p.PlatformFeePercent.IsZero() {
		p.PlatformFeePercent = DefaultPlatformFeePercent
	}
	if p.CancellationPolicy == "" {
		p.CancellationPolicy = CancellationFullRefund
	}
	if p.NoShowPenalty && p.NoShowPenaltyType == "" {
		p.NoShowPenaltyType = NoShowPenaltyFullCharge
	}
}

// Validate checks the policy for internal consistency. Any failure here is a
// configuration error owned by the establishment admin.
func (p *EstablishmentPolicy) Validate() error {
	if p.RequireDeposit {
		switch p.DepositType {
		case DepositTypePercentage:
			if p.DepositPercentage.LessThanOrEqual(decimal.Zero) || !utils.InPercentRange(p.DepositPercentage) {
				return customError.WrapConfigurationError(
					fmt.Sprintf("deposit_percentage must be in (0, 100], got %s", p.DepositPercentage))
			}
		case DepositTypeFixed:
			if p.DepositFixedAmount.LessThanOrEqual(decimal.Zero) {
				return customError.WrapConfigurationError(
					fmt.Sprintf("deposit_fixed_amount must be positive, got %s", p.DepositFixedAmount))
			}
		default:
			return customError.WrapConfigurationError(
				fmt.Sprintf("deposit_type must be %q or %q, got %q", DepositTypePercentage, DepositTypeFixed, p.DepositType))
		}
	}

	switch p.CancellationPolicy {
	case CancellationFullRefund, CancellationNoRefund, CancellationCredit:
	case CancellationPartialRefund:
		if !utils.InPercentRange(p.RefundPercentage) {
			return customError.WrapConfigurationError(
				fmt.Sprintf("refund_percentage must be in [0, 100], got %s", p.RefundPercentage))
		}
	default:
		return customError.WrapConfigurationError(
			fmt.Sprintf("unknown cancellation_policy %q", p.CancellationPolicy))
	}

	if p.NoShowPenalty {
		switch p.NoShowPenaltyType {
		case NoShowPenaltyFullCharge, NoShowPenaltyDepositOnly:
		case NoShowPenaltyPercentage:
			if p.NoShowPenaltyPercentage.LessThanOrEqual(decimal.Zero) || !utils.InPercentRange(p.NoShowPenaltyPercentage) {
				return customError.WrapConfigurationError(
					fmt.Sprintf("no_show_penalty_percentage must be in (0, 100], got %s", p.NoShowPenaltyPercentage))
			}
		default:
			return customError.WrapConfigurationError(
				fmt.Sprintf("unknown no_show_penalty_type %q", p.NoShowPenaltyType))
		}
	}

	if !utils.InPercentRange(p.PlatformFeePercent) {
		return customError.WrapConfigurationError(
			fmt.Sprintf("platform_fee_percent must be in [0, 100], got %s", p.PlatformFeePercent))
	}

	if p.MaxAdvanceBookingDays < 0 || p.MinAdvanceBookingHours < 0 ||
		p.CancellationDeadlineHours < 0 || p.DepositPaymentDeadlineHours < 0 {
		return customError.WrapConfigurationError("booking window and deadline hours must not be negative")
	}

	return nil
}

// DTOs for requests and responses

type UpdatePolicyRequest struct {
	RequireDeposit              bool            `json:"require_deposit"`
	DepositType                 string          `json:"deposit_type" validate:"omitempty,oneof=percentage fixed"`
	DepositPercentage           decimal.Decimal `json:"deposit_percentage"`
	DepositFixedAmount          decimal.Decimal `json:"deposit_fixed_amount"`
	AllowFullPayment            bool            `json:"allow_full_payment"`
	PlatformFeePercent          decimal.Decimal `json:"platform_fee_percent"`
	MaxAdvanceBookingDays       int             `json:"max_advance_booking_days" validate:"gte=0"`
	MinAdvanceBookingHours      int             `json:"min_advance_booking_hours" validate:"gte=0"`
	AllowSameDayBooking         bool            `json:"allow_same_day_booking"`
	CancellationDeadlineHours   int             `json:"cancellation_deadline_hours" validate:"gte=0"`
	CancellationPolicy          string          `json:"cancellation_policy" validate:"omitempty,oneof=full_refund partial_refund no_refund credit"`
	RefundPercentage            decimal.Decimal `json:"refund_percentage"`
	NoShowPenalty               bool            `json:"no_show_penalty"`
	NoShowPenaltyType           string          `json:"no_show_penalty_type" validate:"omitempty,oneof=full_charge deposit_only percentage"`
	NoShowPenaltyPercentage     decimal.Decimal `json:"no_show_penalty_percentage"`
	DepositPaymentDeadlineHours int             `json:"deposit_payment_deadline_hours" validate:"gte=0"`
}

// ToPolicy builds an EstablishmentPolicy from the request for the given
// establishment. The result is resolved but not yet validated.
func (r *UpdatePolicyRequest) ToPolicy(establishmentID string) *EstablishmentPolicy {
	policy := &EstablishmentPolicy{
		EstablishmentID:             establishmentID,
		RequireDeposit:              r.RequireDeposit,
		DepositType:                 r.DepositType,
		DepositPercentage:           r.DepositPercentage,
		DepositFixedAmount:          r.DepositFixedAmount,
		AllowFullPayment:            r.AllowFullPayment,
		PlatformFeePercent:          r.PlatformFeePercent,
		MaxAdvanceBookingDays:       r.MaxAdvanceBookingDays,
		MinAdvanceBookingHours:      r.MinAdvanceBookingHours,
		AllowSameDayBooking:         r.AllowSameDayBooking,
		CancellationDeadlineHours:   r.CancellationDeadlineHours,
		CancellationPolicy:          r.CancellationPolicy,
		RefundPercentage:            r.RefundPercentage,
		NoShowPenalty:               r.NoShowPenalty,
		NoShowPenaltyType:           r.NoShowPenaltyType,
		NoShowPenaltyPercentage:     r.NoShowPenaltyPercentage,
		DepositPaymentDeadlineHours: r.DepositPaymentDeadlineHours,
	}
	policy.Resolve()
	return policy
}

type PolicyResponse struct {
	Policy *EstablishmentPolicy `json:"policy"`
}
