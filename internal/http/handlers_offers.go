package httpx

import (
	"net/http"

	"github.com/fixnest/marketplace-api/internal/domain/model"
	"github.com/fixnest/marketplace-api/internal/service"
)

// OfferHandlers provides HTTP handlers for offer operations. Acceptance is
// routed to the booking service because it creates the booking.
type OfferHandlers struct {
	Svc      *service.OfferService
	Bookings *service.BookingService
}

// Create handles POST /api/offers.
func (h *OfferHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var input model.CreateOfferInput
	if !DecodeJSON(w, r, &input) {
		return
	}

	offer, err := h.Svc.Create(r.Context(), session, input)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, offer)
}

// List handles GET /api/offers: the principal's own offers.
func (h *OfferHandlers) List(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	limit, offset := pageParams(r)
	offers, err := h.Svc.ListOwn(r.Context(), session, limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"offers": offers})
}

// ListForJobRequest handles GET /api/job-requests/{id}/offers.
func (h *OfferHandlers) ListForJobRequest(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	offers, err := h.Svc.ListForJobRequest(r.Context(), session, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"offers": offers})
}

// Withdraw handles POST /api/offers/{id}/withdraw.
func (h *OfferHandlers) Withdraw(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	offer, err := h.Svc.Withdraw(r.Context(), session, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, offer)
}

// Accept handles POST /api/offers/{id}/accept: the request owner accepts
// the offer and a booking awaiting payment comes back.
func (h *OfferHandlers) Accept(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	booking, err := h.Bookings.AcceptOffer(r.Context(), session, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, booking)
}
