package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/courtside/booking-engine/internal/domain"
)

type debtRepository struct {
	db *sqlx.DB
}

func NewDebtRepository(db *sqlx.DB) DebtRepository {
	return &debtRepository{db: db}
}

func (r *debtRepository) ListOutstanding(ctx context.Context, clientID, establishmentID string) ([]domain.Debt, error) {
	query := `
		SELECT id, client_id, establishment_id, amount, reason, description, settled, created_at
		FROM client_debts
		WHERE client_id = $1 AND establishment_id = $2 AND settled = false
		ORDER BY created_at
	`

	var debts []domain.Debt
	err := r.db.SelectContext(ctx, &debts, query, clientID, establishmentID)
	if err != nil {
		return nil, err
	}

	return debts, nil
}

func (r *debtRepository) Create(ctx context.Context, debt *domain.Debt) error {
	if debt.ID == uuid.Nil {
		debt.ID = uuid.New()
	}
	if debt.CreatedAt.IsZero() {
		debt.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO client_debts (id, client_id, establishment_id, amount, reason, description, settled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		debt.ID,
		debt.ClientID,
		debt.EstablishmentID,
		debt.Amount,
		debt.Reason,
		debt.Description,
		debt.Settled,
		debt.CreatedAt,
	)

	return err
}

// MarkSettled settles all given debts in one transaction; settling half a
// payment's debts would desync the ledger from the gateway charge.
func (r *debtRepository) MarkSettled(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE client_debts SET settled = true WHERE id = $1`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, id := range ids {
		if _, err = tx.ExecContext(ctx, query, id); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *debtRepository) ListClientsWithDebt(ctx context.Context) ([]domain.DebtorSummary, error) {
	query := `
		SELECT client_id, establishment_id, SUM(amount) AS total_debt
		FROM client_debts
		WHERE settled = false
		GROUP BY client_id, establishment_id
		ORDER BY total_debt DESC
	`

	var debtors []domain.DebtorSummary
	err := r.db.SelectContext(ctx, &debtors, query)
	if err != nil {
		return nil, err
	}

	return debtors, nil
}
