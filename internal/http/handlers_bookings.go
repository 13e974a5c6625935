package httpx

import (
	"net/http"

	"github.com/fixnest/marketplace-api/internal/core"
	"github.com/fixnest/marketplace-api/internal/domain/model"
	"github.com/fixnest/marketplace-api/internal/service"
)

// BookingHandlers provides HTTP handlers for booking operations.
type BookingHandlers struct {
	Svc *service.BookingService
}

// List handles GET /api/bookings: the principal's bookings in the
// role-appropriate view.
func (h *BookingHandlers) List(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	limit, offset := pageParams(r)
	bookings, err := h.Svc.List(r.Context(), session, limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

// Get handles GET /api/bookings/{id}.
func (h *BookingHandlers) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	view, err := h.Svc.Get(r.Context(), session, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, view)
}

// ConfirmPayment handles POST /api/bookings/{id}/confirm-payment for the
// simulated payment flow.
func (h *BookingHandlers) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	booking, err := h.Svc.ConfirmSimulatedPayment(r.Context(), session, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, booking)
}

// updateBookingStatusRequest is the body of POST /api/bookings/{id}/status.
type updateBookingStatusRequest struct {
	Status model.BookingStatus `json:"status"`
}

// UpdateStatus handles POST /api/bookings/{id}/status: lifecycle moves like
// scheduling, starting, and completing work.
func (h *BookingHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req updateBookingStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	booking, err := h.Svc.UpdateStatus(r.Context(), session, core.UpdateBookingStatusParams{
		ID: r.PathValue("id"),
		To: req.Status,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, booking)
}
