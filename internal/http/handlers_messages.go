package httpx

import (
	"net/http"

	"github.com/fixnest/marketplace-api/internal/domain/model"
	"github.com/fixnest/marketplace-api/internal/service"
)

// MessageHandlers provides HTTP handlers for threads and messages.
type MessageHandlers struct {
	Svc *service.MessagingService
}

// Send handles POST /api/messages. The body carries either a thread_id or,
// for a provider's first contact, a job_request_id.
func (h *MessageHandlers) Send(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var input model.SendMessageInput
	if !DecodeJSON(w, r, &input) {
		return
	}

	msg, err := h.Svc.SendMessage(r.Context(), session, input)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, msg)
}

// ListThreads handles GET /api/threads.
func (h *MessageHandlers) ListThreads(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	limit, offset := pageParams(r)
	threads, err := h.Svc.ListThreads(r.Context(), session, limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"threads": threads})
}

// ListMessages handles GET /api/threads/{id}/messages.
func (h *MessageHandlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	limit, offset := pageParams(r)
	messages, err := h.Svc.ListMessages(r.Context(), session, r.PathValue("id"), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"messages": messages})
}
