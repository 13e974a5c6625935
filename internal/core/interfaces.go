package core

import (
	"context"
	"time"

	"github.com/fixnest/marketplace-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// Upsert inserts the user on first login and refreshes name/email on
	// later logins. The role is applied only on insert.
	Upsert(ctx context.Context, params model.UpsertUserParams) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// CreateJobRequestParams groups parameters for JobRequestRepository.Create (≤3 params rule).
type CreateJobRequestParams struct {
	CustomerID string
	Input      model.CreateJobRequestInput
}

// UpdateJobRequestStatusParams is a compare-and-set status transition: the
// update applies only while the row is still in From.
type UpdateJobRequestStatusParams struct {
	ID   string
	From model.JobRequestStatus
	To   model.JobRequestStatus
}

// JobRequestRepository defines the interface for job request data operations.
type JobRequestRepository interface {
	Create(ctx context.Context, params CreateJobRequestParams) (*model.JobRequest, error)
	GetByID(ctx context.Context, id string) (*model.JobRequest, error)
	// ListByCustomer returns the owner's requests with offer counts, newest first.
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*model.JobRequestWithOfferCount, error)
	// ListOpenCards returns the provider job board. The projection carries no
	// street-level address columns.
	ListOpenCards(ctx context.Context, opts model.JobBoardOptions) ([]*model.JobRequestCard, error)
	// UpdateStatus performs a guarded transition and reports via not_found
	// when the row is missing or no longer in the expected status.
	UpdateStatus(ctx context.Context, params UpdateJobRequestStatusParams) (*model.JobRequest, error)
}

// SubmitOfferParams groups parameters for OfferRepository.Submit.
type SubmitOfferParams struct {
	JobRequest *model.JobRequest
	ProviderID string
	Currency   string
	Input      model.CreateOfferInput
}

// UpdateOfferStatusParams is a compare-and-set offer status transition.
type UpdateOfferStatusParams struct {
	ID   string
	From model.OfferStatus
	To   model.OfferStatus
}

// OfferRepository defines the interface for offer data operations.
type OfferRepository interface {
	// Submit runs the whole offer-creation unit in one transaction: upsert
	// the (job request, provider) thread, insert the offer against it, and
	// bump the request open→in_discussion if still open.
	Submit(ctx context.Context, params SubmitOfferParams) (*model.RequestOffer, error)
	GetByID(ctx context.Context, id string) (*model.RequestOffer, error)
	ListByJobRequest(ctx context.Context, jobRequestID string) ([]*model.RequestOffer, error)
	ListByProvider(ctx context.Context, providerID string, limit, offset int) ([]*model.RequestOffer, error)
	UpdateStatus(ctx context.Context, params UpdateOfferStatusParams) (*model.RequestOffer, error)
}

// UpsertThreadParams groups parameters for ThreadRepository.UpsertForJobRequest.
type UpsertThreadParams struct {
	JobRequestID string
	CustomerID   string
	ProviderID   string
}

// AppendMessageParams groups parameters for ThreadRepository.AppendMessage.
type AppendMessageParams struct {
	ThreadID    string
	SenderID    string
	Body        string
	Attachments []string
}

// ThreadRepository defines the interface for message thread data operations.
type ThreadRepository interface {
	// UpsertForJobRequest returns the unique thread for the (job request,
	// provider) pair, creating it if needed. Safe under concurrent first
	// contacts; callers cannot tell whether the row was created.
	UpsertForJobRequest(ctx context.Context, params UpsertThreadParams) (*model.MessageThread, error)
	GetByID(ctx context.Context, id string) (*model.MessageThread, error)
	ListByParticipant(ctx context.Context, userID string, limit, offset int) ([]*model.MessageThread, error)
	AppendMessage(ctx context.Context, params AppendMessageParams) (*model.Message, error)
	ListMessages(ctx context.Context, threadID string, limit, offset int) ([]*model.Message, error)
}

// AcceptOfferParams groups the rows BookingRepository.AcceptOffer writes in
// one transaction. Fee amounts are computed by the service layer.
type AcceptOfferParams struct {
	Offer               *model.RequestOffer
	JobRequest          *model.JobRequest
	PlatformFeeCents    int64
	ProviderPayoutCents int64
}

// UpdateBookingStatusParams is a compare-and-set booking status transition.
type UpdateBookingStatusParams struct {
	ID   string
	From model.BookingStatus
	To   model.BookingStatus
}

// ConfirmPaymentParams groups parameters for BookingRepository.ConfirmSimulatedPayment.
type ConfirmPaymentParams struct {
	BookingID string
	Reference string
	PaidAt    time.Time
}

// BookingRepository defines the interface for booking data operations.
type BookingRepository interface {
	// AcceptOffer runs the acceptance unit in one transaction: create the
	// booking in needs_payment with a requires_payment payment transaction,
	// mark the offer accepted, bind the thread to the booking, and move the
	// job request to assigned.
	AcceptOffer(ctx context.Context, params AcceptOfferParams) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	ListByParticipant(ctx context.Context, userID string, limit, offset int) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, params UpdateBookingStatusParams) (*model.Booking, error)
	// ConfirmSimulatedPayment atomically sets the booking paid and its
	// payment transaction succeeded. Partial application is impossible.
	ConfirmSimulatedPayment(ctx context.Context, params ConfirmPaymentParams) (*model.Booking, error)
	GetPaymentByBookingID(ctx context.Context, bookingID string) (*model.PaymentTransaction, error)
}
