package model

import (
	"strings"
	"time"

	apperrors "github.com/fixnest/marketplace-api/internal/errors"
)

// MessageThread is the unique negotiation channel for a (job request,
// provider) pair. At most one thread exists per pair; the storage layer
// enforces this with a unique constraint, and the upsert protocol treats a
// lost insert race as a successful no-op. Once an offer is accepted the
// thread is additionally bound to the resulting booking.
type MessageThread struct {
	ID           string    `json:"id"                       db:"id"`
	JobRequestID *string   `json:"job_request_id,omitempty" db:"job_request_id"`
	BookingID    *string   `json:"booking_id,omitempty"     db:"booking_id"`
	CustomerID   string    `json:"customer_id"              db:"customer_id"`
	ProviderID   string    `json:"provider_id"              db:"provider_id"`
	CreatedAt    time.Time `json:"created_at"               db:"created_at"`
}

// HasParticipant reports whether userID is one of the two thread parties.
func (t *MessageThread) HasParticipant(userID string) bool {
	return t.CustomerID == userID || t.ProviderID == userID
}

// Message is an append-only entry in a thread. Never mutated or deleted.
type Message struct {
	ID          string    `json:"id"                    db:"id"`
	ThreadID    string    `json:"thread_id"             db:"thread_id"`
	SenderID    string    `json:"sender_id"             db:"sender_id"`
	Body        string    `json:"body"                  db:"body"`
	Attachments []string  `json:"attachments,omitempty" db:"attachments"`
	CreatedAt   time.Time `json:"created_at"            db:"created_at"`
}

// SendMessageInput carries a new message. Exactly one of ThreadID or
// JobRequestID must be set: ThreadID appends to an existing conversation,
// JobRequestID is the provider-initiated first contact that lazily creates
// the thread.
type SendMessageInput struct {
	ThreadID     string   `json:"thread_id,omitempty"`
	JobRequestID string   `json:"job_request_id,omitempty"`
	Body         string   `json:"body"`
	Attachments  []string `json:"attachments,omitempty"`
}

// Normalize trims the locators and body. Call before Validate.
func (in *SendMessageInput) Normalize() {
	in.ThreadID = strings.TrimSpace(in.ThreadID)
	in.JobRequestID = strings.TrimSpace(in.JobRequestID)
	in.Body = strings.TrimSpace(in.Body)
}

// Validate validates the SendMessageInput fields.
func (in *SendMessageInput) Validate() error {
	if in.ThreadID == "" && in.JobRequestID == "" {
		return apperrors.Validation("either thread_id or job_request_id is required")
	}
	if in.ThreadID != "" && in.JobRequestID != "" {
		return apperrors.Validation("thread_id and job_request_id are mutually exclusive")
	}
	if in.Body == "" {
		return apperrors.ValidationField("body", "message body is required")
	}
	return nil
}
