package model

import (
	"strings"
	"time"

	apperrors "github.com/fixnest/marketplace-api/internal/errors"
)

// OfferStatus represents the lifecycle status of an offer.
type OfferStatus string

const (
	// OfferStatusSent is the initial status of every offer.
	OfferStatusSent OfferStatus = "sent"
	// OfferStatusAccepted means the customer accepted the offer and a booking was created.
	OfferStatusAccepted OfferStatus = "accepted"
	// OfferStatusDeclined means the customer declined the offer.
	OfferStatusDeclined OfferStatus = "declined"
	// OfferStatusWithdrawn means the provider withdrew the offer.
	OfferStatusWithdrawn OfferStatus = "withdrawn"
)

// Valid returns true if the OfferStatus is valid.
func (s OfferStatus) Valid() bool {
	switch s {
	case OfferStatusSent, OfferStatusAccepted, OfferStatusDeclined, OfferStatusWithdrawn:
		return true
	}
	return false
}

// RequestOffer is a provider's priced bid against a job request. Immutable
// once created except for its status.
type RequestOffer struct {
	ID            string      `json:"id"                       db:"id"`
	JobRequestID  string      `json:"job_request_id"           db:"job_request_id"`
	ProviderID    string      `json:"provider_id"              db:"provider_id"`
	ThreadID      string      `json:"thread_id"                db:"thread_id"`
	Currency      string      `json:"currency"                 db:"currency"`
	AmountCents   int64       `json:"amount_cents"             db:"amount_cents"`
	Message       string      `json:"message"                  db:"message"`
	EarliestStart *time.Time  `json:"earliest_start,omitempty" db:"earliest_start"`
	Status        OfferStatus `json:"status"                   db:"status"`
	CreatedAt     time.Time   `json:"created_at"               db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"               db:"updated_at"`
}

// CreateOfferInput carries the fields a provider submits when bidding on a
// job request. Currency is fixed by configuration, not chosen by the caller.
type CreateOfferInput struct {
	JobRequestID  string     `json:"job_request_id"`
	AmountCents   int64      `json:"amount_cents"`
	Message       string     `json:"message"`
	EarliestStart *time.Time `json:"earliest_start,omitempty"`
}

// Normalize trims the free-text message. Call before Validate.
func (in *CreateOfferInput) Normalize() {
	in.JobRequestID = strings.TrimSpace(in.JobRequestID)
	in.Message = strings.TrimSpace(in.Message)
}

// Validate validates the CreateOfferInput fields.
func (in *CreateOfferInput) Validate() error {
	if in.JobRequestID == "" {
		return apperrors.ValidationField("job_request_id", "job request id is required")
	}
	if in.AmountCents <= 0 {
		return apperrors.ValidationField("amount_cents", "amount must be positive")
	}
	if in.Message == "" {
		return apperrors.ValidationField("message", "message is required")
	}
	return nil
}
