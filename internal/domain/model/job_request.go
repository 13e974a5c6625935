// Package model defines the core data types of the fixnest marketplace:
// job requests, offers, negotiation threads, and bookings.
package model

import (
	"strings"
	"time"

	apperrors "github.com/fixnest/marketplace-api/internal/errors"
)

// JobRequestStatus represents the lifecycle status of a job request.
type JobRequestStatus string

const (
	// JobRequestStatusOpen means the request is visible on the provider job board.
	JobRequestStatusOpen JobRequestStatus = "open"
	// JobRequestStatusInDiscussion means at least one offer has been received.
	JobRequestStatusInDiscussion JobRequestStatus = "in_discussion"
	// JobRequestStatusAssigned means an offer was accepted and a booking exists.
	JobRequestStatusAssigned JobRequestStatus = "assigned"
	// JobRequestStatusClosed means the request is finished or withdrawn.
	JobRequestStatusClosed JobRequestStatus = "closed"
	// JobRequestStatusFlagged means the request was taken down for review.
	JobRequestStatusFlagged JobRequestStatus = "flagged"
)

// Valid returns true if the JobRequestStatus is valid.
func (s JobRequestStatus) Valid() bool {
	switch s {
	case JobRequestStatusOpen, JobRequestStatusInDiscussion, JobRequestStatusAssigned,
		JobRequestStatusClosed, JobRequestStatusFlagged:
		return true
	}
	return false
}

// jobRequestTransitions is the closed transition table for job request
// statuses. Illegal transitions are rejected centrally via CanTransitionTo
// instead of being re-checked ad hoc at each call site.
var jobRequestTransitions = map[JobRequestStatus][]JobRequestStatus{
	JobRequestStatusOpen:         {JobRequestStatusInDiscussion, JobRequestStatusAssigned, JobRequestStatusClosed, JobRequestStatusFlagged},
	JobRequestStatusInDiscussion: {JobRequestStatusAssigned, JobRequestStatusClosed, JobRequestStatusFlagged},
	JobRequestStatusAssigned:     {JobRequestStatusClosed, JobRequestStatusFlagged},
	JobRequestStatusClosed:       {},
	JobRequestStatusFlagged:      {JobRequestStatusClosed},
}

// CanTransitionTo reports whether the status may move to next.
func (s JobRequestStatus) CanTransitionTo(next JobRequestStatus) bool {
	for _, allowed := range jobRequestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Timeframe describes how soon the customer wants the work done.
type Timeframe string

const (
	TimeframeUrgent   Timeframe = "urgent"
	TimeframeThisWeek Timeframe = "this_week"
	TimeframeFlexible Timeframe = "flexible"
)

// Valid returns true if the Timeframe is valid.
func (tf Timeframe) Valid() bool {
	return tf == TimeframeUrgent || tf == TimeframeThisWeek || tf == TimeframeFlexible
}

// JobRequest is a customer's posted need, including the street-level address
// only the owner (and admins) may read. Rows are never deleted, only
// status-transitioned.
type JobRequest struct {
	ID             string           `json:"id"                        db:"id"`
	CustomerID     string           `json:"customer_id"               db:"customer_id"`
	Category       string           `json:"category"                  db:"category"`
	Title          string           `json:"title"                     db:"title"`
	Description    string           `json:"description"               db:"description"`
	AddressLine1   string           `json:"address_line1"             db:"address_line1"`
	AddressLine2   *string          `json:"address_line2,omitempty"   db:"address_line2"`
	City           string           `json:"city"                      db:"city"`
	PostalCode     string           `json:"postal_code"               db:"postal_code"`
	Country        string           `json:"country"                   db:"country"`
	BudgetMinCents *int64           `json:"budget_min_cents,omitempty" db:"budget_min_cents"`
	BudgetMaxCents *int64           `json:"budget_max_cents,omitempty" db:"budget_max_cents"`
	Timeframe      Timeframe        `json:"timeframe"                 db:"timeframe"`
	DesiredDate    *time.Time       `json:"desired_date,omitempty"    db:"desired_date"`
	Status         JobRequestStatus `json:"status"                    db:"status"`
	CreatedAt      time.Time        `json:"created_at"                db:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"                db:"updated_at"`
}

// JobRequestWithOfferCount is the owner's list projection: the full request
// plus how many offers it has attracted.
type JobRequestWithOfferCount struct {
	JobRequest
	OfferCount int `json:"offer_count" db:"offer_count"`
}

// JobRequestCard is the provider-facing job board projection. It carries no
// street-level address fields at all; the repository query never selects
// those columns, so masking cannot be forgotten downstream.
type JobRequestCard struct {
	ID             string           `json:"id"                         db:"id"`
	Category       string           `json:"category"                   db:"category"`
	Title          string           `json:"title"                      db:"title"`
	Description    string           `json:"description"                db:"description"`
	City           string           `json:"city"                       db:"city"`
	PostalCode     string           `json:"postal_code"                db:"postal_code"`
	Country        string           `json:"country"                    db:"country"`
	BudgetMinCents *int64           `json:"budget_min_cents,omitempty" db:"budget_min_cents"`
	BudgetMaxCents *int64           `json:"budget_max_cents,omitempty" db:"budget_max_cents"`
	Timeframe      Timeframe        `json:"timeframe"                  db:"timeframe"`
	DesiredDate    *time.Time       `json:"desired_date,omitempty"     db:"desired_date"`
	Status         JobRequestStatus `json:"status"                     db:"status"`
	CreatedAt      time.Time        `json:"created_at"                 db:"created_at"`
}

// JobBoardOptions filters the provider-facing open-request board.
type JobBoardOptions struct {
	Category string
	City     string
	Limit    int
	Offset   int
}

// CreateJobRequestInput carries the fields a customer submits when posting a
// job request.
type CreateJobRequestInput struct {
	Category       string     `json:"category"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	AddressLine1   string     `json:"address_line1"`
	AddressLine2   *string    `json:"address_line2,omitempty"`
	City           string     `json:"city"`
	PostalCode     string     `json:"postal_code"`
	Country        string     `json:"country,omitempty"`
	BudgetMinCents *int64     `json:"budget_min_cents,omitempty"`
	BudgetMaxCents *int64     `json:"budget_max_cents,omitempty"`
	Timeframe      Timeframe  `json:"timeframe,omitempty"`
	DesiredDate    *time.Time `json:"desired_date,omitempty"`
}

// Normalize trims free-text fields and applies defaults for country and
// timeframe. Call before Validate.
func (in *CreateJobRequestInput) Normalize(defaultCountry string) {
	in.Category = strings.TrimSpace(in.Category)
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.AddressLine1 = strings.TrimSpace(in.AddressLine1)
	in.City = strings.TrimSpace(in.City)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	in.Country = strings.ToUpper(strings.TrimSpace(in.Country))
	if in.Country == "" {
		in.Country = defaultCountry
	}
	if in.Timeframe == "" {
		in.Timeframe = TimeframeFlexible
	}
}

// Validate validates the CreateJobRequestInput fields.
func (in *CreateJobRequestInput) Validate() error {
	if in.Category == "" {
		return apperrors.ValidationField("category", "category is required")
	}
	if in.Title == "" {
		return apperrors.ValidationField("title", "title is required")
	}
	if in.AddressLine1 == "" {
		return apperrors.ValidationField("address_line1", "street address is required")
	}
	if in.City == "" {
		return apperrors.ValidationField("city", "city is required")
	}
	if in.PostalCode == "" {
		return apperrors.ValidationField("postal_code", "postal code is required")
	}
	if !in.Timeframe.Valid() {
		return apperrors.ValidationField("timeframe", "invalid timeframe")
	}
	if in.BudgetMinCents != nil && *in.BudgetMinCents < 0 {
		return apperrors.ValidationField("budget_min_cents", "budget must not be negative")
	}
	if in.BudgetMaxCents != nil && *in.BudgetMaxCents < 0 {
		return apperrors.ValidationField("budget_max_cents", "budget must not be negative")
	}
	if in.BudgetMinCents != nil && in.BudgetMaxCents != nil && *in.BudgetMinCents > *in.BudgetMaxCents {
		return apperrors.ValidationField("budget_min_cents", "minimum budget exceeds maximum")
	}
	return nil
}
