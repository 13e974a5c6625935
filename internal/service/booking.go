package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/fixnest/marketplace-api/internal/core"
	"github.com/fixnest/marketplace-api/internal/domain/auth"
	"github.com/fixnest/marketplace-api/internal/domain/model"
	apperrors "github.com/fixnest/marketplace-api/internal/errors"
)

// BookingServiceConfig carries marketplace settings the service needs.
type BookingServiceConfig struct {
	PlatformFeePercent float64
	SimulatedPayments  bool
}

// BookingServiceOptions groups dependencies for BookingService.
type BookingServiceOptions struct {
	Bookings core.BookingRepository
	Deps     BookingServiceDeps
	Config   BookingServiceConfig
}

// BookingServiceDeps groups the secondary repositories of BookingService.
type BookingServiceDeps struct {
	Offers   core.OfferRepository
	Requests core.JobRequestRepository
}

// BookingService owns offer acceptance, payment confirmation, and the
// visibility-masked booking reads.
type BookingService struct {
	bookings core.BookingRepository
	offers   core.OfferRepository
	requests core.JobRequestRepository
	cfg      BookingServiceConfig
}

// NewBookingService constructs a new BookingService.
func NewBookingService(opts BookingServiceOptions) *BookingService {
	return &BookingService{
		bookings: opts.Bookings,
		offers:   opts.Deps.Offers,
		requests: opts.Deps.Requests,
		cfg:      opts.Config,
	}
}

// AcceptOffer accepts an offer on behalf of the request owner. One
// transaction creates the booking awaiting payment with its payment
// transaction, marks the offer accepted, binds the thread to the booking,
// and assigns the job request.
func (s *BookingService) AcceptOffer(ctx context.Context, principal *auth.Session, offerID string) (*model.Booking, error) {
	offer, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}

	req, err := s.requests.GetByID(ctx, offer.JobRequestID)
	if err != nil {
		return nil, err
	}
	if req.CustomerID != principal.UserID && !principal.Role.IsAdmin() {
		return nil, apperrors.Unauthorized("only the job request owner can accept offers")
	}
	if offer.Status != model.OfferStatusSent {
		return nil, apperrors.InvalidStatef("offer in status %q cannot be accepted", offer.Status)
	}
	switch req.Status {
	case model.JobRequestStatusOpen, model.JobRequestStatusInDiscussion:
	default:
		return nil, apperrors.InvalidStatef("job request in status %q cannot be assigned", req.Status)
	}

	fee := platformFeeCents(offer.AmountCents, s.cfg.PlatformFeePercent)
	booking, err := s.bookings.AcceptOffer(ctx, core.AcceptOfferParams{
		Offer:               offer,
		JobRequest:          req,
		PlatformFeeCents:    fee,
		ProviderPayoutCents: offer.AmountCents - fee,
	})
	if err != nil {
		return nil, fmt.Errorf("accept offer: %w", err)
	}
	return booking, nil
}

// ConfirmSimulatedPayment marks a booking as paid through the simulated
// payment flow. Disabled deployments reject the call outright; otherwise the
// booking's customer confirms, and the booking plus its payment transaction
// move in a single transaction.
func (s *BookingService) ConfirmSimulatedPayment(ctx context.Context, principal *auth.Session, bookingID string) (*model.Booking, error) {
	if !s.cfg.SimulatedPayments {
		return nil, apperrors.Forbidden("simulated payments are disabled")
	}

	if !principal.Role.CanPayBookings() {
		return nil, apperrors.Unauthorized("only customers can confirm payment")
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.CustomerID != principal.UserID && !principal.Role.IsAdmin() {
		return nil, apperrors.Unauthorized("only the booking customer can confirm payment")
	}
	if booking.Status != model.BookingStatusNeedsPayment {
		return nil, apperrors.InvalidStatef("booking in status %q is not awaiting payment", booking.Status)
	}

	paid, err := s.bookings.ConfirmSimulatedPayment(ctx, core.ConfirmPaymentParams{
		BookingID: bookingID,
		Reference: "sim-" + uuid.New().String(),
	})
	if err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}
	return paid, nil
}

// Get returns the role-appropriate view of a booking. Participants only;
// the provider view carries the street address only once the visibility
// policy grants it.
func (s *BookingService) Get(ctx context.Context, principal *auth.Session, bookingID string) (*model.BookingView, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.HasParticipant(principal.UserID) && !principal.Role.IsAdmin() {
		return nil, apperrors.Unauthorized("not a party to this booking")
	}

	view := booking.ViewFor(principal.UserID, principal.Role.IsAdmin())
	return &view, nil
}

// List returns the principal's bookings as role-appropriate views.
func (s *BookingService) List(ctx context.Context, principal *auth.Session, limit, offset int) ([]model.BookingView, error) {
	bookings, err := s.bookings.ListByParticipant(ctx, principal.UserID, limit, offset)
	if err != nil {
		return nil, err
	}

	views := make([]model.BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = b.ViewFor(principal.UserID, principal.Role.IsAdmin())
	}
	return views, nil
}

// UpdateStatus moves a booking along its lifecycle on behalf of a
// participant, validating the transition table centrally.
func (s *BookingService) UpdateStatus(ctx context.Context, principal *auth.Session, params core.UpdateBookingStatusParams) (*model.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	if !booking.HasParticipant(principal.UserID) && !principal.Role.IsAdmin() {
		return nil, apperrors.Unauthorized("not a party to this booking")
	}
	if !params.To.Valid() {
		return nil, apperrors.ValidationField("status", "unknown booking status")
	}
	if !booking.Status.CanTransitionTo(params.To) {
		return nil, apperrors.InvalidStatef("booking cannot move from %q to %q", booking.Status, params.To)
	}

	params.From = booking.Status
	return s.bookings.UpdateStatus(ctx, params)
}

// platformFeeCents computes the marketplace cut, rounded half up.
func platformFeeCents(amountCents int64, percent float64) int64 {
	if percent <= 0 {
		return 0
	}
	return int64(math.Round(float64(amountCents) * percent / 100))
}
