package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentTypeDeposit = "deposit"
	PaymentTypeFull    = "full"
)

const (
	RefundModeCash   = "cash"
	RefundModeCredit = "credit"
)

// Retained scope says which base the establishment keeps when a refund is
// below 100%.
const (
	RetainedScopeNone        = "none"
	RetainedScopeFullPrice   = "full_price"
	RetainedScopeDepositOnly = "deposit_only"
)

// FeeDiscount is a promotional reduction on the platform service fee,
// computed per (client, establishment) pair. Transient, never persisted by
// the payment flow itself.
type FeeDiscount struct {
	HasDiscount       bool            `json:"has_discount" db:"has_discount"`
	GeneralFeePercent decimal.Decimal `json:"general_fee_percent" db:"general_fee_percent"`
	DiscountPercent   decimal.Decimal `json:"discount_percent" db:"discount_percent"`
}

// PaymentBreakdown is the derived cost split for one payment-type candidate.
// Immutable once computed.
type PaymentBreakdown struct {
	PaymentType     string          `json:"payment_type"`
	BaseAmount      decimal.Decimal `json:"base_amount"`
	Fee             decimal.Decimal `json:"fee"`
	GeneralFee      decimal.Decimal `json:"general_fee"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}

// RefundDecision is the outcome of evaluating a cancellation or no-show
// against the establishment policy. Settlement of the refund is external.
type RefundDecision struct {
	RefundPercent        decimal.Decimal `json:"refund_percent"`
	Mode                 string          `json:"mode"`
	NoShowPenaltyApplied bool            `json:"no_show_penalty_applied"`
	RetainedScope        string          `json:"retained_scope"`
}

// DTOs for requests and responses

type QuoteRequest struct {
	EstablishmentID string          `json:"establishment_id" validate:"required"`
	ClientID        string          `json:"client_id" validate:"required"`
	FullPrice       decimal.Decimal `json:"full_price"`
}

// PaymentOption is one payment-choice card: the breakdown plus the final
// amount the gateway will charge (breakdown total + outstanding debt).
type PaymentOption struct {
	PaymentType string           `json:"payment_type"`
	Breakdown   PaymentBreakdown `json:"breakdown"`
	FinalAmount decimal.Decimal  `json:"final_amount"`
}

type QuoteResponse struct {
	EstablishmentID string          `json:"establishment_id"`
	FullPrice       decimal.Decimal `json:"full_price"`
	Options         []PaymentOption `json:"options"`
	Debt            PendingDebt     `json:"debt"`
	Discount        FeeDiscount     `json:"discount"`
}

type CancellationPreviewRequest struct {
	EstablishmentID string          `json:"establishment_id" validate:"required"`
	BookingStart    time.Time       `json:"booking_start" validate:"required"`
	FullPrice       decimal.Decimal `json:"full_price"`
}

type CancellationPreviewResponse struct {
	Decision       RefundDecision  `json:"decision"`
	RefundAmount   decimal.Decimal `json:"refund_amount"`
	RetainedAmount decimal.Decimal `json:"retained_amount"`
}
