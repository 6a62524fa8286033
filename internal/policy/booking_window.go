package policy

import (
	"fmt"
	"time"

	"github.com/courtside/booking-engine/internal/domain"
	customError "github.com/courtside/booking-engine/pkg/errors"
)

// ValidateWindow checks a booking attempt against the establishment's
// scheduling rules. It returns the first violation found, checking in a
// fixed order (too far in advance, too soon, same day disallowed) so error
// messages are deterministic.
//
// Boundaries are inclusive toward the customer: a booking exactly
// MaxAdvanceBookingDays ahead or exactly MinAdvanceBookingHours before start
// is accepted. MaxAdvanceBookingDays of 0 means no advance limit.
func ValidateWindow(attempt domain.BookingAttempt, now time.Time, policy *domain.EstablishmentPolicy) error {
	if attempt.Start.IsZero() {
		return customError.WrapInvalidArgument("booking start time is required")
	}

	if policy.MaxAdvanceBookingDays > 0 {
		daysAhead := calendarDaysBetween(now, attempt.Start)
		if daysAhead > policy.MaxAdvanceBookingDays {
			return customError.WrapBookingWindowViolation(
				domain.WindowTooFarInAdvance,
				fmt.Sprintf("bookings open %d days ahead, requested date is %d days away",
					policy.MaxAdvanceBookingDays, daysAhead))
		}
	}

	lead := attempt.Start.Sub(now)
	minLead := time.Duration(policy.MinAdvanceBookingHours) * time.Hour
	if lead < minLead {
		return customError.WrapBookingWindowViolation(
			domain.WindowTooSoon,
			fmt.Sprintf("bookings require %d hours notice", policy.MinAdvanceBookingHours))
	}

	if !policy.AllowSameDayBooking && sameCalendarDay(attempt.Start, now) {
		return customError.WrapBookingWindowViolation(
			domain.WindowSameDayDisallowed,
			"same-day bookings are not accepted here")
	}

	return nil
}

// calendarDaysBetween counts whole calendar days from a to b, in a's
// location. Hours within the day do not matter for the advance-days rule.
func calendarDaysBetween(a, b time.Time) int {
	aDay := startOfDay(a)
	bDay := startOfDay(b.In(a.Location()))
	return int(bDay.Sub(aDay).Hours() / 24)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
