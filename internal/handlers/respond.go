package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/operman-code/brojgar-worker/internal/models"
)

var validate = validator.New()

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeServiceError maps the model sentinels onto HTTP statuses. Anything
// unrecognized is a 500; nothing here is fatal to the process.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrWorkerNotFound),
		errors.Is(err, models.ErrBusinessNotFound),
		errors.Is(err, models.ErrJobNotFound),
		errors.Is(err, models.ErrNoRecord):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, models.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, "User already exists with this email")
	case errors.Is(err, models.ErrJobAlreadyUnlocked):
		writeError(w, http.StatusConflict, "Job already unlocked")
	case errors.Is(err, models.ErrInsufficientFunds):
		writeError(w, http.StatusBadRequest, "Insufficient wallet balance")
	case errors.Is(err, models.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeAndValidate unmarshals the body into dst and runs struct validation.
// Returns false after writing the error response when the payload is bad.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
