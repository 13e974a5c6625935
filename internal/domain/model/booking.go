package model

import "time"

// BookingStatus represents the lifecycle status of a booking.
type BookingStatus string

const (
	// BookingStatusRequested is the initial status at acceptance time.
	BookingStatusRequested BookingStatus = "requested"
	// BookingStatusAccepted means both parties confirmed the engagement.
	BookingStatusAccepted BookingStatus = "accepted"
	// BookingStatusDeclined means the provider declined the booking request.
	BookingStatusDeclined BookingStatus = "declined"
	// BookingStatusNeedsPayment means the customer must pay before work is scheduled.
	BookingStatusNeedsPayment BookingStatus = "needs_payment"
	// BookingStatusPaid means payment was confirmed.
	BookingStatusPaid BookingStatus = "paid"
	// BookingStatusScheduled means a concrete appointment window is agreed.
	BookingStatusScheduled BookingStatus = "scheduled"
	// BookingStatusInProgress means the provider is executing the work.
	BookingStatusInProgress BookingStatus = "in_progress"
	// BookingStatusCompleted means the work is done.
	BookingStatusCompleted BookingStatus = "completed"
	// BookingStatusCanceled means either party canceled.
	BookingStatusCanceled BookingStatus = "canceled"
	// BookingStatusDisputed means the parties disagree about the outcome.
	BookingStatusDisputed BookingStatus = "disputed"
	// BookingStatusRefunded means a paid booking was refunded.
	BookingStatusRefunded BookingStatus = "refunded"
)

// AllBookingStatuses lists every defined booking status. Used by exhaustive
// policy tests and by validation.
var AllBookingStatuses = []BookingStatus{
	BookingStatusRequested,
	BookingStatusAccepted,
	BookingStatusDeclined,
	BookingStatusNeedsPayment,
	BookingStatusPaid,
	BookingStatusScheduled,
	BookingStatusInProgress,
	BookingStatusCompleted,
	BookingStatusCanceled,
	BookingStatusDisputed,
	BookingStatusRefunded,
}

// Valid returns true if the BookingStatus is valid.
func (s BookingStatus) Valid() bool {
	for _, known := range AllBookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// bookingTransitions is the closed transition table for booking statuses:
// a linear happy path with decline as an early branch and cancel/dispute/
// refund as exception branches from payment-bearing states.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusRequested:    {BookingStatusAccepted, BookingStatusDeclined, BookingStatusCanceled},
	BookingStatusAccepted:     {BookingStatusNeedsPayment, BookingStatusCanceled},
	BookingStatusDeclined:     {},
	BookingStatusNeedsPayment: {BookingStatusPaid, BookingStatusCanceled},
	BookingStatusPaid:         {BookingStatusScheduled, BookingStatusCanceled, BookingStatusDisputed, BookingStatusRefunded},
	BookingStatusScheduled:    {BookingStatusInProgress, BookingStatusCanceled, BookingStatusDisputed, BookingStatusRefunded},
	BookingStatusInProgress:   {BookingStatusCompleted, BookingStatusDisputed, BookingStatusRefunded},
	BookingStatusCompleted:    {BookingStatusDisputed},
	BookingStatusCanceled:     {},
	BookingStatusDisputed:     {BookingStatusRefunded, BookingStatusCompleted},
	BookingStatusRefunded:     {},
}

// CanTransitionTo reports whether the status may move to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ProviderMaySeeFullAddress is the progressive-disclosure predicate: a
// provider may read the customer's street-level address only once the
// booking is paid for (and through execution to completion). Customer and
// admin audiences are exempt and always see the full address.
func ProviderMaySeeFullAddress(status BookingStatus) bool {
	switch status {
	case BookingStatusPaid, BookingStatusScheduled, BookingStatusInProgress, BookingStatusCompleted:
		return true
	default:
		return false
	}
}

// BookingType distinguishes how the booking came about.
type BookingType string

const (
	// BookingTypeJobRequest is a booking created by accepting an offer on a job request.
	BookingTypeJobRequest BookingType = "job_request"
	// BookingTypeDirect is a booking created directly against a provider.
	BookingTypeDirect BookingType = "direct"
)

// Booking is the transactional record created once an offer is accepted.
type Booking struct {
	ID                  string        `json:"id"                         db:"id"`
	Type                BookingType   `json:"type"                       db:"type"`
	Status              BookingStatus `json:"status"                     db:"status"`
	JobTitle            string        `json:"job_title"                  db:"job_title"`
	AddressLine1        string        `json:"address_line1"              db:"address_line1"`
	AddressLine2        *string       `json:"address_line2,omitempty"    db:"address_line2"`
	City                string        `json:"city"                       db:"city"`
	PostalCode          string        `json:"postal_code"                db:"postal_code"`
	Country             string        `json:"country"                    db:"country"`
	CustomerID          string        `json:"customer_id"                db:"customer_id"`
	ProviderID          string        `json:"provider_id"                db:"provider_id"`
	JobRequestID        *string       `json:"job_request_id,omitempty"   db:"job_request_id"`
	OfferID             *string       `json:"offer_id,omitempty"         db:"offer_id"`
	Currency            string        `json:"currency"                   db:"currency"`
	QuotedPriceCents    int64         `json:"quoted_price_cents"         db:"quoted_price_cents"`
	PlatformFeeCents    int64         `json:"platform_fee_cents"         db:"platform_fee_cents"`
	ProviderPayoutCents int64         `json:"provider_payout_cents"      db:"provider_payout_cents"`
	ScheduledStart      *time.Time    `json:"scheduled_start,omitempty"  db:"scheduled_start"`
	ScheduledEnd        *time.Time    `json:"scheduled_end,omitempty"    db:"scheduled_end"`
	PaidAt              *time.Time    `json:"paid_at,omitempty"          db:"paid_at"`
	CreatedAt           time.Time     `json:"created_at"                 db:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"                 db:"updated_at"`
}

// HasParticipant reports whether userID is a party to the booking.
func (b *Booking) HasParticipant(userID string) bool {
	return b.CustomerID == userID || b.ProviderID == userID
}

// PaymentStatus mirrors the payment provider's view of a booking's payment.
type PaymentStatus string

const (
	PaymentStatusRequiresPayment PaymentStatus = "requires_payment"
	PaymentStatusProcessing      PaymentStatus = "processing"
	PaymentStatusSucceeded       PaymentStatus = "succeeded"
	PaymentStatusFailed          PaymentStatus = "failed"
	PaymentStatusCanceled        PaymentStatus = "canceled"
	PaymentStatusRefunded        PaymentStatus = "refunded"
)

// Valid returns true if the PaymentStatus is valid.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusRequiresPayment, PaymentStatusProcessing, PaymentStatusSucceeded,
		PaymentStatusFailed, PaymentStatusCanceled, PaymentStatusRefunded:
		return true
	}
	return false
}

// PaymentTransaction is the 1:1 payment record owned by a booking. Updated
// only by payment confirmation, always in the same transaction as the
// booking status.
type PaymentTransaction struct {
	ID          string        `json:"id"           db:"id"`
	BookingID   string        `json:"booking_id"   db:"booking_id"`
	Status      PaymentStatus `json:"status"       db:"status"`
	Currency    string        `json:"currency"     db:"currency"`
	AmountCents int64         `json:"amount_cents" db:"amount_cents"`
	Reference   string        `json:"reference"    db:"reference"`
	CreatedAt   time.Time     `json:"created_at"   db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"   db:"updated_at"`
}

// BookingView is the serialization shape handed to callers. For provider
// audiences the address fields are cleared unless the visibility policy
// grants access; customers and admins always receive the full shape.
type BookingView struct {
	Booking
	AddressVisible bool `json:"address_visible"`
}

// ViewFor derives the role-appropriate read model for a booking. The
// visibility policy is the single source of truth: call sites never decide
// on their own which fields to omit.
func (b Booking) ViewFor(viewerID string, isAdmin bool) BookingView {
	view := BookingView{Booking: b, AddressVisible: true}
	if isAdmin || viewerID == b.CustomerID {
		return view
	}
	if ProviderMaySeeFullAddress(b.Status) {
		return view
	}
	view.AddressVisible = false
	view.AddressLine1 = ""
	view.AddressLine2 = nil
	return view
}
