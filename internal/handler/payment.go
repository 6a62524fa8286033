package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/courtside/booking-engine/internal/domain"
	"github.com/courtside/booking-engine/internal/service"
	"github.com/courtside/booking-engine/pkg/response"
)

type PaymentHandler struct {
	service   *service.PaymentService
	validator *validator.Validate
}

func NewPaymentHandler(service *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Quote returns the payment-choice cards for a booking: a breakdown per
// offered payment type plus the final gateway amount including debt.
func (h *PaymentHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req domain.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "missing required fields", err)
		return
	}

	quote, err := h.service.GetQuote(r.Context(), req.EstablishmentID, req.ClientID, req.FullPrice)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, quote)
}

// ValidateWindow checks a booking attempt against the establishment's
// scheduling rules before the booking flow accepts it.
func (h *PaymentHandler) ValidateWindow(w http.ResponseWriter, r *http.Request) {
	var req domain.ValidateWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "missing required fields", err)
		return
	}

	start, err := time.ParseInLocation(
		domain.DateFormat+" "+domain.TimeFormat,
		fmt.Sprintf("%s %s", req.Date, req.Time),
		time.Local,
	)
	if err != nil {
		response.BadRequest(w, "date must be YYYY-MM-DD and time must be HH:MM", err)
		return
	}

	err = h.service.ValidateBooking(r.Context(), req.EstablishmentID, domain.BookingAttempt{Start: start}, time.Now())
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, domain.ValidateWindowResponse{Allowed: true})
}

// CancellationPreview reports what cancelling now would refund.
func (h *PaymentHandler) CancellationPreview(w http.ResponseWriter, r *http.Request) {
	var req domain.CancellationPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "missing required fields", err)
		return
	}

	preview, err := h.service.PreviewCancellation(
		r.Context(), req.EstablishmentID, req.BookingStart, time.Now(), req.FullPrice)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, preview)
}

// NoShow records the penalty debt for a missed booking.
func (h *PaymentHandler) NoShow(w http.ResponseWriter, r *http.Request) {
	var req domain.NoShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "missing required fields", err)
		return
	}

	resp, err := h.service.RecordNoShow(r.Context(), &req)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Created(w, resp)
}

// SettleDebts marks a set of debts as paid after the gateway confirmed the
// charge that included them.
func (h *PaymentHandler) SettleDebts(w http.ResponseWriter, r *http.Request) {
	var req domain.SettleDebtsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "at least one debt id is required", err)
		return
	}

	if err := h.service.SettleDebts(r.Context(), req.DebtIDs); err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, map[string]int{"settled": len(req.DebtIDs)})
}

// Debts lists a client's outstanding debts at an establishment.
func (h *PaymentHandler) Debts(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientID := vars["clientId"]
	establishmentID := vars["establishmentId"]

	resp, err := h.service.GetDebts(r.Context(), clientID, establishmentID)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, resp)
}
