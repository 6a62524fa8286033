package handler

import (
	"errors"
	"net/http"

	customError "github.com/courtside/booking-engine/pkg/errors"
	"github.com/courtside/booking-engine/pkg/response"
)

// writeBusinessError maps the error taxonomy onto HTTP statuses.
// Configuration errors are the establishment admin's problem (422), policy
// and window violations are rejected customer actions (409), invalid
// arguments are caller bugs (400).
func writeBusinessError(w http.ResponseWriter, err error) {
	var be *customError.BusinessError
	if !errors.As(err, &be) {
		response.InternalServerError(w, "unexpected error", err)
		return
	}

	status := http.StatusInternalServerError
	switch be.Code {
	case customError.ErrCodeConfiguration, customError.ErrCodeNoPaymentOption:
		status = http.StatusUnprocessableEntity
	case customError.ErrCodePolicyViolation, customError.ErrCodeBookingWindowViolation:
		status = http.StatusConflict
	case customError.ErrCodeInvalidArgument:
		status = http.StatusBadRequest
	case customError.ErrCodePolicyNotFound:
		status = http.StatusNotFound
	}

	response.Error(w, status, be.Code, be.Message, be.Err)
}
