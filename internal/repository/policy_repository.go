package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/courtside/booking-engine/internal/domain"
)

type policyRepository struct {
	db *sqlx.DB
}

func NewPolicyRepository(db *sqlx.DB) PolicyRepository {
	return &policyRepository{db: db}
}

func (r *policyRepository) GetByEstablishmentID(ctx context.Context, establishmentID string) (*domain.EstablishmentPolicy, error) {
	query := `
		SELECT id, establishment_id, require_deposit, deposit_type, deposit_percentage,
		       deposit_fixed_amount, allow_full_payment, platform_fee_percent,
		       max_advance_booking_days, min_advance_booking_hours, allow_same_day_booking,
		       cancellation_deadline_hours, cancellation_policy, refund_percentage,
		       no_show_penalty, no_show_penalty_type, no_show_penalty_percentage,
		       deposit_payment_deadline_hours, created_at, updated_at
		FROM establishment_policies
		WHERE establishment_id = $1
	`

	var policy domain.EstablishmentPolicy
	err := r.db.GetContext(ctx, &policy, query, establishmentID)
	if err != nil {
		return nil, err
	}

	return &policy, nil
}

func (r *policyRepository) Upsert(ctx context.Context, policy *domain.EstablishmentPolicy) error {
	if policy.ID == uuid.Nil {
		policy.ID = uuid.New()
	}
	now := time.Now()
	policy.UpdatedAt = now
	if policy.CreatedAt.IsZero() {
		policy.CreatedAt = now
	}

	query := `
		INSERT INTO establishment_policies (
			id, establishment_id, require_deposit, deposit_type, deposit_percentage,
			deposit_fixed_amount, allow_full_payment, platform_fee_percent,
			max_advance_booking_days, min_advance_booking_hours, allow_same_day_booking,
			cancellation_deadline_hours, cancellation_policy, refund_percentage,
			no_show_penalty, no_show_penalty_type, no_show_penalty_percentage,
			deposit_payment_deadline_hours, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (establishment_id) DO UPDATE SET
			require_deposit = EXCLUDED.require_deposit,
			deposit_type = EXCLUDED.deposit_type,
			deposit_percentage = EXCLUDED.deposit_percentage,
			deposit_fixed_amount = EXCLUDED.deposit_fixed_amount,
			allow_full_payment = EXCLUDED.allow_full_payment,
			platform_fee_percent = EXCLUDED.platform_fee_percent,
			max_advance_booking_days = EXCLUDED.max_advance_booking_days,
			min_advance_booking_hours = EXCLUDED.min_advance_booking_hours,
			allow_same_day_booking = EXCLUDED.allow_same_day_booking,
			cancellation_deadline_hours = EXCLUDED.cancellation_deadline_hours,
			cancellation_policy = EXCLUDED.cancellation_policy,
			refund_percentage = EXCLUDED.refund_percentage,
			no_show_penalty = EXCLUDED.no_show_penalty,
			no_show_penalty_type = EXCLUDED.no_show_penalty_type,
			no_show_penalty_percentage = EXCLUDED.no_show_penalty_percentage,
			deposit_payment_deadline_hours = EXCLUDED.deposit_payment_deadline_hours,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		policy.ID,
		policy.EstablishmentID,
		policy.RequireDeposit,
		policy.DepositType,
		policy.DepositPercentage,
		policy.DepositFixedAmount,
		policy.AllowFullPayment,
		policy.PlatformFeePercent,
		policy.MaxAdvanceBookingDays,
		policy.MinAdvanceBookingHours,
		policy.AllowSameDayBooking,
		policy.CancellationDeadlineHours,
		policy.CancellationPolicy,
		policy.RefundPercentage,
		policy.NoShowPenalty,
		policy.NoShowPenaltyType,
		policy.NoShowPenaltyPercentage,
		policy.DepositPaymentDeadlineHours,
		policy.CreatedAt,
		policy.UpdatedAt,
	)

	return err
}

func (r *policyRepository) ListEstablishmentIDs(ctx context.Context) ([]string, error) {
	query := `SELECT establishment_id FROM establishment_policies ORDER BY establishment_id`

	var ids []string
	err := r.db.SelectContext(ctx, &ids, query)
	if err != nil {
		return nil, err
	}

	return ids, nil
}
