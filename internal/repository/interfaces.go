package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/courtside/booking-engine/internal/domain"
)

type PolicyRepository interface {
	GetByEstablishmentID(ctx context.Context, establishmentID string) (*domain.EstablishmentPolicy, error)
	Upsert(ctx context.Context, policy *domain.EstablishmentPolicy) error
	ListEstablishmentIDs(ctx context.Context) ([]string, error)
}

type DebtRepository interface {
	ListOutstanding(ctx context.Context, clientID, establishmentID string) ([]domain.Debt, error)
	Create(ctx context.Context, debt *domain.Debt) error
	MarkSettled(ctx context.Context, ids []uuid.UUID) error
	ListClientsWithDebt(ctx context.Context) ([]domain.DebtorSummary, error)
}

type DiscountRepository interface {
	GetForClient(ctx context.Context, clientID, establishmentID string) (domain.FeeDiscount, error)
}
