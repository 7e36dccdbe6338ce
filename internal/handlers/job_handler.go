package handlers

import (
	"net/http"

	"github.com/operman-code/brojgar-worker/internal/models"
	"github.com/operman-code/brojgar-worker/internal/services"
)

type JobHandler struct {
	Service *services.JobService
	Workers *services.WorkerService
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateJobRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	job, err := h.Service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

func (h *JobHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing job ID")
		return
	}

	job, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing job ID")
		return
	}

	var update models.JobUpdate
	if !decodeAndValidate(w, r, &update) {
		return
	}

	job, err := h.Service.Update(r.Context(), id, update)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

type applyRequest struct {
	UserID string `json:"userId" validate:"required"`
}

func (h *JobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	jobID := r.URL.Query().Get(":id")
	if jobID == "" {
		writeError(w, http.StatusBadRequest, "Missing job ID")
		return
	}

	var req applyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	application, err := h.Workers.Apply(r.Context(), jobID, req.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, application)
}
