package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/courtside/booking-engine/internal/domain"
)

type discountRepository struct {
	db *sqlx.DB
}

func NewDiscountRepository(db *sqlx.DB) DiscountRepository {
	return &discountRepository{db: db}
}

// GetForClient returns the active fee discount for a client at an
// establishment. No row means no discount, not an error.
func (r *discountRepository) GetForClient(ctx context.Context, clientID, establishmentID string) (domain.FeeDiscount, error) {
	query := `
		SELECT has_discount, general_fee_percent, discount_percent
		FROM fee_discounts
		WHERE client_id = $1 AND establishment_id = $2 AND active = true
	`

	var discount domain.FeeDiscount
	err := r.db.GetContext(ctx, &discount, query, clientID, establishmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.FeeDiscount{}, nil
		}
		return domain.FeeDiscount{}, err
	}

	return discount, nil
}
