package handlers

import (
	"net/http"

	"github.com/operman-code/brojgar-worker/internal/models"
	"github.com/operman-code/brojgar-worker/internal/services"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

type paymentResponse struct {
	Payment models.Payment `json:"payment"`
	Message string         `json:"message"`
}

func (h *PaymentHandler) UnlockJob(w http.ResponseWriter, r *http.Request) {
	var req models.UnlockJobRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	payment, err := h.Service.UnlockJob(r.Context(), req.UserID, req.JobID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paymentResponse{Payment: payment, Message: "Job unlocked successfully"})
}

func (h *PaymentHandler) BoostJob(w http.ResponseWriter, r *http.Request) {
	var req models.BoostJobRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	payment, err := h.Service.BoostJob(r.Context(), req.UserID, req.JobID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paymentResponse{Payment: payment, Message: "Job boosted successfully"})
}

func (h *PaymentHandler) TopUpWallet(w http.ResponseWriter, r *http.Request) {
	var req models.TopUpRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	payment, err := h.Service.TopUpWallet(r.Context(), req.UserID, req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paymentResponse{Payment: payment, Message: "Wallet topped up successfully"})
}

func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "Missing user ID")
		return
	}

	payments, err := h.Service.History(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}
