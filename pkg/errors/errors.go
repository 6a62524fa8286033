package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrPolicyInconsistent    = errors.New("establishment policy is inconsistent")
	ErrNoPaymentOption       = errors.New("no payment option configured")
	ErrPaymentTypeNotAllowed = errors.New("payment type not allowed by policy")
	ErrBookingOutsideWindow  = errors.New("booking outside allowed window")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrPolicyNotFound        = errors.New("establishment policy not found")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeConfiguration          = "CONFIGURATION_ERROR"
	ErrCodeNoPaymentOption        = "NO_PAYMENT_OPTION_CONFIGURED"
	ErrCodePolicyViolation        = "POLICY_VIOLATION"
	ErrCodeBookingWindowViolation = "BOOKING_WINDOW_VIOLATION"
	ErrCodeInvalidArgument        = "INVALID_ARGUMENT"
	ErrCodePolicyNotFound         = "POLICY_NOT_FOUND"
	ErrCodeDatabaseError          = "DATABASE_ERROR"
	ErrCodeCacheError             = "CACHE_ERROR"
)

// Wrap common errors with business context

// WrapConfigurationError flags an internally inconsistent establishment
// policy. These must reach the establishment admin, not the end customer.
func WrapConfigurationError(detail string) *BusinessError {
	return NewBusinessError(
		ErrCodeConfiguration,
		detail,
		ErrPolicyInconsistent,
	)
}

func WrapNoPaymentOption(establishmentID string) *BusinessError {
	return NewBusinessError(
		ErrCodeNoPaymentOption,
		fmt.Sprintf("Establishment %s has neither deposits nor full payment enabled", establishmentID),
		ErrNoPaymentOption,
	)
}

func WrapPaymentTypeNotAllowed(paymentType string) *BusinessError {
	return NewBusinessError(
		ErrCodePolicyViolation,
		fmt.Sprintf("Payment type %q is not allowed by the establishment policy", paymentType),
		ErrPaymentTypeNotAllowed,
	)
}

// WrapBookingWindowViolation carries the specific window rule that failed
// (too_far_in_advance, too_soon, same_day_disallowed).
func WrapBookingWindowViolation(reason, detail string) *BusinessError {
	return NewBusinessError(
		ErrCodeBookingWindowViolation,
		fmt.Sprintf("%s: %s", reason, detail),
		ErrBookingOutsideWindow,
	)
}

func WrapInvalidArgument(detail string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidArgument,
		detail,
		ErrInvalidArgument,
	)
}

func WrapPolicyNotFound(establishmentID string) *BusinessError {
	return NewBusinessError(
		ErrCodePolicyNotFound,
		fmt.Sprintf("No policy configured for establishment %s", establishmentID),
		ErrPolicyNotFound,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"cache operation failed",
		err,
	)
}

// IsCode reports whether err is a BusinessError carrying the given code.
func IsCode(err error, code string) bool {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
