package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/courtside/booking-engine/internal/config"
	"github.com/courtside/booking-engine/internal/domain"
	"github.com/courtside/booking-engine/internal/policy"
	"github.com/courtside/booking-engine/internal/repository"
	customError "github.com/courtside/booking-engine/pkg/errors"
)

// PaymentService wires the pure policy core to storage and cache. The core
// itself never fetches anything; this service owns fetching, caching and the
// documented degradations.
type PaymentService struct {
	policyRepo   repository.PolicyRepository
	debtRepo     repository.DebtRepository
	discountRepo repository.DiscountRepository
	redis        *redis.Client
	config       *config.Config
}

func NewPaymentService(
	policyRepo repository.PolicyRepository,
	debtRepo repository.DebtRepository,
	discountRepo repository.DiscountRepository,
	redisClient *redis.Client,
	cfg *config.Config,
) *PaymentService {
	return &PaymentService{
		policyRepo:   policyRepo,
		debtRepo:     debtRepo,
		discountRepo: discountRepo,
		redis:        redisClient,
		config:       cfg,
	}
}

func policyCacheKey(establishmentID string) string {
	return fmt.Sprintf("policy:%s", establishmentID)
}

// GetPolicy returns the resolved policy for an establishment, going through
// the Redis cache first. Cache failures degrade to the database; a missing
// policy row is a not-found business error.
func (s *PaymentService) GetPolicy(ctx context.Context, establishmentID string) (*domain.EstablishmentPolicy, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, policyCacheKey(establishmentID)).Bytes()
		if err == nil {
			var policy domain.EstablishmentPolicy
			if err := json.Unmarshal(cached, &policy); err == nil {
				return &policy, nil
			}
			// corrupt cache entry, fall through to the database
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("policy cache read failed for %s: %v", establishmentID, err)
		}
	}

	policy, err := s.policyRepo.GetByEstablishmentID(ctx, establishmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapPolicyNotFound(establishmentID)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	policy.Resolve()
	s.cachePolicy(ctx, policy)

	return policy, nil
}

func (s *PaymentService) cachePolicy(ctx context.Context, policy *domain.EstablishmentPolicy) {
	if s.redis == nil {
		return
	}
	payload, err := json.Marshal(policy)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, policyCacheKey(policy.EstablishmentID), payload, s.config.GetPolicyCacheTTL()).Err(); err != nil {
		log.Printf("policy cache write failed for %s: %v", policy.EstablishmentID, err)
	}
}

// UpdatePolicy validates and persists an establishment's policy, then drops
// the cached copy so the next read sees the new rules.
func (s *PaymentService) UpdatePolicy(ctx context.Context, policy *domain.EstablishmentPolicy) error {
	policy.Resolve()
	if err := policy.Validate(); err != nil {
		return err
	}

	if err := s.policyRepo.Upsert(ctx, policy); err != nil {
		return customError.WrapDatabaseError(err)
	}

	if s.redis != nil {
		if err := s.redis.Del(ctx, policyCacheKey(policy.EstablishmentID)).Err(); err != nil {
			log.Printf("policy cache invalidation failed for %s: %v", policy.EstablishmentID, err)
		}
	}

	return nil
}

// GetQuote builds the payment-choice cards for a booking: one breakdown per
// payment type the establishment offers, each with the final gateway amount
// including outstanding debt.
//
// A failed debt or discount lookup never blocks an otherwise-valid payment:
// both degrade to their zero values and the quote proceeds.
func (s *PaymentService) GetQuote(ctx context.Context, establishmentID, clientID string, fullPrice decimal.Decimal) (*domain.QuoteResponse, error) {
	establishmentPolicy, err := s.GetPolicy(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	options, err := policy.AvailableOptions(establishmentPolicy)
	if err != nil {
		return nil, err
	}

	discount, err := s.discountRepo.GetForClient(ctx, clientID, establishmentID)
	if err != nil {
		log.Printf("fee discount lookup failed for client %s at %s, quoting without discount: %v", clientID, establishmentID, err)
		discount = domain.FeeDiscount{}
	}

	debts, err := s.debtRepo.ListOutstanding(ctx, clientID, establishmentID)
	if err != nil {
		log.Printf("debt lookup failed for client %s at %s, quoting without debt: %v", clientID, establishmentID, err)
		debts = nil
	}
	pendingDebt := policy.AggregateDebt(debts)

	quote := &domain.QuoteResponse{
		EstablishmentID: establishmentID,
		FullPrice:       fullPrice,
		Debt:            pendingDebt,
		Discount:        discount,
	}

	for _, paymentType := range options {
		breakdown, err := policy.ComputeBreakdown(fullPrice, establishmentPolicy, discount, paymentType)
		if err != nil {
			return nil, err
		}
		quote.Options = append(quote.Options, domain.PaymentOption{
			PaymentType: paymentType,
			Breakdown:   *breakdown,
			FinalAmount: policy.SelectFinalAmount(breakdown, pendingDebt),
		})
	}

	return quote, nil
}

// ValidateBooking gates a reservation attempt against the establishment's
// scheduling window.
func (s *PaymentService) ValidateBooking(ctx context.Context, establishmentID string, attempt domain.BookingAttempt, now time.Time) error {
	establishmentPolicy, err := s.GetPolicy(ctx, establishmentID)
	if err != nil {
		return err
	}

	return policy.ValidateWindow(attempt, now, establishmentPolicy)
}

// PreviewCancellation computes what cancelling now would refund and what the
// establishment would keep.
func (s *PaymentService) PreviewCancellation(ctx context.Context, establishmentID string, bookingStart, now time.Time, fullPrice decimal.Decimal) (*domain.CancellationPreviewResponse, error) {
	if fullPrice.LessThanOrEqual(decimal.Zero) {
		return nil, customError.WrapInvalidArgument(fmt.Sprintf("full price must be positive, got %s", fullPrice))
	}

	establishmentPolicy, err := s.GetPolicy(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	decision := policy.EvaluateCancellation(bookingStart, now, establishmentPolicy)

	return &domain.CancellationPreviewResponse{
		Decision:       decision,
		RefundAmount:   policy.RefundAmount(fullPrice, establishmentPolicy, decision),
		RetainedAmount: policy.RetainedAmount(fullPrice, establishmentPolicy, decision),
	}, nil
}

// RecordNoShow writes the no-show penalty for a missed booking into the
// client's debt ledger. When the policy carries no penalty, or the penalty
// retains nothing, no debt is created.
func (s *PaymentService) RecordNoShow(ctx context.Context, req *domain.NoShowRequest) (*domain.NoShowResponse, error) {
	if req.FullPrice.LessThanOrEqual(decimal.Zero) {
		return nil, customError.WrapInvalidArgument(fmt.Sprintf("full price must be positive, got %s", req.FullPrice))
	}

	establishmentPolicy, err := s.GetPolicy(ctx, req.EstablishmentID)
	if err != nil {
		return nil, err
	}

	if !establishmentPolicy.NoShowPenalty {
		return &domain.NoShowResponse{PenaltyApplied: false}, nil
	}

	// a no-show is a cancellation that never happened: evaluate against the
	// booking start, which is in the past by the time a no-show is reported
	decision := policy.EvaluateCancellation(req.BookingStart, time.Now(), establishmentPolicy)
	penalty := policy.RetainedAmount(req.FullPrice, establishmentPolicy, decision)
	if penalty.LessThanOrEqual(decimal.Zero) {
		return &domain.NoShowResponse{PenaltyApplied: false}, nil
	}

	debt := &domain.Debt{
		ClientID:        req.ClientID,
		EstablishmentID: req.EstablishmentID,
		Amount:          penalty,
		Reason:          domain.DebtReasonNoShow,
		Description:     req.Description,
	}
	if err := s.debtRepo.Create(ctx, debt); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return &domain.NoShowResponse{PenaltyApplied: true, Debt: debt}, nil
}

// GetDebts returns a client's aggregated outstanding debt at an
// establishment. Unlike the quote path this endpoint is about the debts
// themselves, so lookup failures propagate.
func (s *PaymentService) GetDebts(ctx context.Context, clientID, establishmentID string) (*domain.DebtsResponse, error) {
	debts, err := s.debtRepo.ListOutstanding(ctx, clientID, establishmentID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return &domain.DebtsResponse{
		ClientID:        clientID,
		EstablishmentID: establishmentID,
		Debt:            policy.AggregateDebt(debts),
	}, nil
}

// SettleDebts marks debts as paid once the payment gateway confirms the
// charge that included them.
func (s *PaymentService) SettleDebts(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return customError.WrapInvalidArgument("at least one debt id is required")
	}

	if err := s.debtRepo.MarkSettled(ctx, ids); err != nil {
		return customError.WrapDatabaseError(err)
	}
	return nil
}

// RefreshPolicyCache re-warms the Redis cache for every configured
// establishment. Called by the scheduler so quote latency stays flat after
// cache expiry.
func (s *PaymentService) RefreshPolicyCache(ctx context.Context) error {
	ids, err := s.policyRepo.ListEstablishmentIDs(ctx)
	if err != nil {
		return customError.WrapDatabaseError(err)
	}

	for _, id := range ids {
		establishmentPolicy, err := s.policyRepo.GetByEstablishmentID(ctx, id)
		if err != nil {
			log.Printf("cache refresh: skipping establishment %s: %v", id, err)
			continue
		}
		establishmentPolicy.Resolve()
		s.cachePolicy(ctx, establishmentPolicy)
	}

	return nil
}

// OutstandingDebtors lists clients with unsettled debt for the reminder job.
func (s *PaymentService) OutstandingDebtors(ctx context.Context) ([]domain.DebtorSummary, error) {
	debtors, err := s.debtRepo.ListClientsWithDebt(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return debtors, nil
}
