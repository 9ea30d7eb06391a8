package httpx

import (
	"net/http"
	"strconv"

	"github.com/jobdesk/jobdesk-api/internal/domain/model"
	apperrors "github.com/jobdesk/jobdesk-api/internal/errors"
	"github.com/jobdesk/jobdesk-api/internal/service"
)

// JobHandlers provides HTTP handlers for job operations.
type JobHandlers struct {
	Svc *service.JobService
}

// Create handles POST /jobs.
// Decodes a strict JSON body, validates it, and returns the created job.
func (h *JobHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]*model.Job{"job": job})
}

// List handles GET /jobs with optional minSalary, hasEquity, and nameLike filters.
// Unknown query parameters are rejected rather than ignored.
func (h *JobHandlers) List(w http.ResponseWriter, r *http.Request) {
	query := ParseJobListQuery(r.URL.Query())

	jobs, err := h.Svc.List(r.Context(), query)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if jobs == nil {
		jobs = []*model.Job{}
	}

	WriteJSON(w, http.StatusOK, map[string][]*model.Job{"jobs": jobs})
}

// GetByID handles GET /jobs/{id}.
func (h *JobHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseJobID(w, r)
	if !ok {
		return
	}

	job, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]*model.Job{"job": job})
}

// Update handles PATCH /jobs/{id}.
// The body is a partial update; at least one known field must be present.
func (h *JobHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseJobID(w, r)
	if !ok {
		return
	}

	var req model.UpdateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]*model.Job{"job": job})
}

// Delete handles DELETE /jobs/{id}.
func (h *JobHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseJobID(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]int64{"deleted": id})
}

// parseJobID extracts and parses the {id} path value. A non-numeric id is a
// client error, reported before any store access; returns ok=false after
// writing the error response.
func parseJobID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		WriteAppError(w, apperrors.Validationf("job id must be an integer, got %q.", raw))
		return 0, false
	}
	return id, true
}
