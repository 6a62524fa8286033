package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/courtside/booking-engine/internal/domain"
)

type MockPolicyRepository struct {
	mock.Mock
}

func (m *MockPolicyRepository) GetByEstablishmentID(ctx context.Context, establishmentID string) (*domain.EstablishmentPolicy, error) {
	args := m.Called(ctx, establishmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EstablishmentPolicy), args.Error(1)
}

func (m *MockPolicyRepository) Upsert(ctx context.Context, policy *domain.EstablishmentPolicy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

func (m *MockPolicyRepository) ListEstablishmentIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) ListOutstanding(ctx context.Context, clientID, establishmentID string) ([]domain.Debt, error) {
	args := m.Called(ctx, clientID, establishmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) Create(ctx context.Context, debt *domain.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) MarkSettled(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockDebtRepository) ListClientsWithDebt(ctx context.Context) ([]domain.DebtorSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DebtorSummary), args.Error(1)
}

type MockDiscountRepository struct {
	mock.Mock
}

func (m *MockDiscountRepository) GetForClient(ctx context.Context, clientID, establishmentID string) (domain.FeeDiscount, error) {
	args := m.Called(ctx, clientID, establishmentID)
	return args.Get(0).(domain.FeeDiscount), args.Error(1)
}
