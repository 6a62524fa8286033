package domain

import "time"

// Wire formats for booking dates and times
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// Booking window violation reasons
const (
	WindowTooFarInAdvance   = "too_far_in_advance"
	WindowTooSoon           = "too_soon"
	WindowSameDayDisallowed = "same_day_disallowed"
)

// BookingAttempt is a reservation request as seen by the window validator.
// Start carries both the target date and the slot time.
type BookingAttempt struct {
	Start time.Time `json:"start"`
}

// DTOs for requests and responses

type ValidateWindowRequest struct {
	EstablishmentID string `json:"establishment_id" validate:"required"`
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required"`
}

type ValidateWindowResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}
