package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DebtReasonLateCancellation = "late_cancellation"
	DebtReasonNoShow           = "no_show"
	DebtReasonOther            = "other"
)

// Debt is one outstanding charge a client owes an establishment, typically
// from a no-show or late cancellation.
type Debt struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	ClientID        string          `json:"client_id" db:"client_id"`
	EstablishmentID string          `json:"establishment_id" db:"establishment_id"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	Reason          string          `json:"reason" db:"reason"`
	Description     string          `json:"description" db:"description"`
	Settled         bool            `json:"settled" db:"settled"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}

// PendingDebt aggregates a client's outstanding charges at one
// establishment. Debts keeps the source order for display.
type PendingDebt struct {
	HasDebt   bool            `json:"has_debt"`
	TotalDebt decimal.Decimal `json:"total_debt"`
	Debts     []Debt          `json:"debts"`
}

// DebtorSummary is one row of the outstanding-debt report consumed by the
// reminder scheduler.
type DebtorSummary struct {
	ClientID        string          `json:"client_id" db:"client_id"`
	EstablishmentID string          `json:"establishment_id" db:"establishment_id"`
	TotalDebt       decimal.Decimal `json:"total_debt" db:"total_debt"`
}

// DTOs for requests and responses

type NoShowRequest struct {
	EstablishmentID string          `json:"establishment_id" validate:"required"`
	ClientID        string          `json:"client_id" validate:"required"`
	BookingStart    time.Time       `json:"booking_start" validate:"required"`
	FullPrice       decimal.Decimal `json:"full_price"`
	Description     string          `json:"description"`
}

type NoShowResponse struct {
	PenaltyApplied bool  `json:"penalty_applied"`
	Debt           *Debt `json:"debt,omitempty"`
}

type SettleDebtsRequest struct {
	DebtIDs []uuid.UUID `json:"debt_ids" validate:"required,min=1"`
}

type DebtsResponse struct {
	ClientID        string      `json:"client_id"`
	EstablishmentID string      `json:"establishment_id"`
	Debt            PendingDebt `json:"debt"`
}
