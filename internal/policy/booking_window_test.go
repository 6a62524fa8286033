package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/booking-engine/internal/domain"
	customError "github.com/courtside/booking-engine/pkg/errors"
)

func windowPolicy(maxDays, minHours int, sameDay bool) *domain.EstablishmentPolicy {
	return &domain.EstablishmentPolicy{
		EstablishmentID:        "est-1",
		MaxAdvanceBookingDays:  maxDays,
		MinAdvanceBookingHours: minHours,
		AllowSameDayBooking:    sameDay,
	}
}

func assertWindowViolation(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, customError.IsCode(err, customError.ErrCodeBookingWindowViolation),
		"expected booking window violation, got %v", err)
	assert.Contains(t, err.Error(), reason)
}

func TestValidateWindow_Accepted(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	attempt := domain.BookingAttempt{Start: now.AddDate(0, 0, 5).Add(2 * time.Hour)}

	err := ValidateWindow(attempt, now, windowPolicy(30, 2, true))
	assert.NoError(t, err)
}

func TestValidateWindow_TooFarInAdvance(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	attempt := domain.BookingAttempt{Start: now.AddDate(0, 0, 31)}

	err := ValidateWindow(attempt, now, windowPolicy(30, 0, true))
	assertWindowViolation(t, err, domain.WindowTooFarInAdvance)
}

func TestValidateWindow_MaxAdvanceBoundaryInclusive(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	// exactly 30 calendar days ahead is still inside the window
	attempt := domain.BookingAttempt{Start: now.AddDate(0, 0, 30).Add(5 * time.Hour)}

	err := ValidateWindow(attempt, now, windowPolicy(30, 0, true))
	assert.NoError(t, err)
}

func TestValidateWindow_ZeroMaxDaysMeansUnlimited(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	attempt := domain.BookingAttempt{Start: now.AddDate(1, 0, 0)}

	err := ValidateWindow(attempt, now, windowPolicy(0, 0, true))
	assert.NoError(t, err)
}

func TestValidateWindow_MinNoticeBoundary(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	policy := windowPolicy(0, 24, true)

	// exactly 24 hours ahead is accepted
	exact := domain.BookingAttempt{Start: now.Add(24 * time.Hour)}
	assert.NoError(t, ValidateWindow(exact, now, policy))

	// one second less is rejected
	short := domain.BookingAttempt{Start: now.Add(24*time.Hour - time.Second)}
	assertWindowViolation(t, ValidateWindow(short, now, policy), domain.WindowTooSoon)
}

func TestValidateWindow_StartInThePast(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	attempt := domain.BookingAttempt{Start: now.Add(-time.Hour)}

	err := ValidateWindow(attempt, now, windowPolicy(0, 0, true))
	assertWindowViolation(t, err, domain.WindowTooSoon)
}

func TestValidateWindow_SameDayDisallowed(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	attempt := domain.BookingAttempt{Start: now.Add(10 * time.Hour)} // 19:00 same day

	err := ValidateWindow(attempt, now, windowPolicy(0, 0, false))
	assertWindowViolation(t, err, domain.WindowSameDayDisallowed)

	// tomorrow passes under the same policy
	tomorrow := domain.BookingAttempt{Start: now.AddDate(0, 0, 1)}
	assert.NoError(t, ValidateWindow(tomorrow, now, windowPolicy(0, 0, false)))
}

func TestValidateWindow_FirstViolationWins(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)

	// 45 days out violates the advance window; the reported reason must be
	// the advance-window one, not any later check
	attempt := domain.BookingAttempt{Start: now.AddDate(0, 0, 45)}

	err := ValidateWindow(attempt, now, windowPolicy(30, 2160, false))
	assertWindowViolation(t, err, domain.WindowTooFarInAdvance)
}

func TestValidateWindow_ZeroStart(t *testing.T) {
	err := ValidateWindow(domain.BookingAttempt{}, time.Now(), windowPolicy(0, 0, true))
	assert.True(t, customError.IsCode(err, customError.ErrCodeInvalidArgument))
}
