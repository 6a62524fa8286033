package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/courtside/booking-engine/internal/domain"
	"github.com/courtside/booking-engine/internal/service"
	"github.com/courtside/booking-engine/pkg/response"
)

type PolicyHandler struct {
	service   *service.PaymentService
	validator *validator.Validate
}

func NewPolicyHandler(service *service.PaymentService) *PolicyHandler {
	return &PolicyHandler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *PolicyHandler) Get(w http.ResponseWriter, r *http.Request) {
	establishmentID := mux.Vars(r)["establishmentId"]

	policy, err := h.service.GetPolicy(r.Context(), establishmentID)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, domain.PolicyResponse{Policy: policy})
}

func (h *PolicyHandler) Update(w http.ResponseWriter, r *http.Request) {
	establishmentID := mux.Vars(r)["establishmentId"]

	var req domain.UpdatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "invalid policy fields", err)
		return
	}

	policy := req.ToPolicy(establishmentID)
	if err := h.service.UpdatePolicy(r.Context(), policy); err != nil {
		writeBusinessError(w, err)
		return
	}

	response.Success(w, domain.PolicyResponse{Policy: policy})
}
