// Package httpx provides HTTP handlers and utilities for the fixnest marketplace API.
package httpx

import (
	"net/http"

	"github.com/fixnest/marketplace-api/internal/domain/model"
	"github.com/fixnest/marketplace-api/internal/service"
)

// JobRequestHandlers provides HTTP handlers for job request operations.
type JobRequestHandlers struct {
	Svc *service.JobRequestService
}

// Create handles POST /api/job-requests.
func (h *JobRequestHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var input model.CreateJobRequestInput
	if !DecodeJSON(w, r, &input) {
		return
	}

	req, err := h.Svc.Create(r.Context(), session, input)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, req)
}

// List handles GET /api/job-requests: the principal's own requests with
// offer counts.
func (h *JobRequestHandlers) List(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	limit, offset := pageParams(r)
	requests, err := h.Svc.ListOwn(r.Context(), session, limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"job_requests": requests})
}

// Board handles GET /api/job-requests/open: the provider-facing job board
// in the masked card projection.
func (h *JobRequestHandlers) Board(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	limit, offset := pageParams(r)
	opts := model.JobBoardOptions{
		Category: r.URL.Query().Get("category"),
		City:     r.URL.Query().Get("city"),
		Limit:    limit,
		Offset:   offset,
	}

	cards, err := h.Svc.Board(r.Context(), session, opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"job_requests": cards})
}

// Get handles GET /api/job-requests/{id}: the owner's detail view with all
// offers.
func (h *JobRequestHandlers) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	req, offers, err := h.Svc.GetOwn(r.Context(), session, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"job_request": req, "offers": offers})
}

// Close handles POST /api/job-requests/{id}/close.
func (h *JobRequestHandlers) Close(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	req, err := h.Svc.Close(r.Context(), session, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, req)
}
