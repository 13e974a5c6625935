package service

import (
	"context"
	"fmt"

	"github.com/fixnest/marketplace-api/internal/core"
	"github.com/fixnest/marketplace-api/internal/domain/auth"
	"github.com/fixnest/marketplace-api/internal/domain/model"
	apperrors "github.com/fixnest/marketplace-api/internal/errors"
)

// OfferServiceConfig carries marketplace settings the service needs.
type OfferServiceConfig struct {
	Currency string
}

// OfferServiceOptions groups dependencies for OfferService.
type OfferServiceOptions struct {
	Offers   core.OfferRepository
	Requests core.JobRequestRepository
	Config   OfferServiceConfig
}

// OfferService owns the provider side of bidding: submitting offers against
// open job requests and reading them back.
type OfferService struct {
	offers   core.OfferRepository
	requests core.JobRequestRepository
	cfg      OfferServiceConfig
}

// NewOfferService constructs a new OfferService.
func NewOfferService(opts OfferServiceOptions) *OfferService {
	return &OfferService{
		offers:   opts.Offers,
		requests: opts.Requests,
		cfg:      opts.Config,
	}
}

// Create submits an offer from the principal against a job request. The
// whole unit runs in one transaction: the (request, provider) thread is
// upserted, the offer inserted against it, and the request bumped
// open→in_discussion if still open. The currency is fixed by configuration.
func (s *OfferService) Create(ctx context.Context, principal *auth.Session, input model.CreateOfferInput) (*model.RequestOffer, error) {
	if !principal.Role.CanSubmitOffers() {
		return nil, apperrors.Unauthorized("only providers can submit offers")
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.requests.GetByID(ctx, input.JobRequestID)
	if err != nil {
		return nil, err
	}
	if req.CustomerID == principal.UserID {
		return nil, apperrors.Validation("cannot submit an offer on your own job request")
	}
	switch req.Status {
	case model.JobRequestStatusOpen, model.JobRequestStatusInDiscussion:
	default:
		return nil, apperrors.InvalidStatef("job request in status %q does not accept offers", req.Status)
	}

	offer, err := s.offers.Submit(ctx, core.SubmitOfferParams{
		JobRequest: req,
		ProviderID: principal.UserID,
		Currency:   s.cfg.Currency,
		Input:      input,
	})
	if err != nil {
		return nil, fmt.Errorf("submit offer: %w", err)
	}
	return offer, nil
}

// ListForJobRequest returns the offers on a request. The owner (and admins)
// see all of them; a provider sees only their own.
func (s *OfferService) ListForJobRequest(ctx context.Context, principal *auth.Session, jobRequestID string) ([]*model.RequestOffer, error) {
	req, err := s.requests.GetByID(ctx, jobRequestID)
	if err != nil {
		return nil, err
	}

	offers, err := s.offers.ListByJobRequest(ctx, jobRequestID)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}

	if req.CustomerID == principal.UserID || principal.Role.IsAdmin() {
		return offers, nil
	}

	own := offers[:0:0]
	for _, o := range offers {
		if o.ProviderID == principal.UserID {
			own = append(own, o)
		}
	}
	if len(own) == 0 {
		return nil, apperrors.Unauthorized("no offers of yours on this job request")
	}
	return own, nil
}

// ListOwn returns the principal's own offers, newest first.
func (s *OfferService) ListOwn(ctx context.Context, principal *auth.Session, limit, offset int) ([]*model.RequestOffer, error) {
	if !principal.Role.CanSubmitOffers() {
		return nil, apperrors.Unauthorized("only providers have offers")
	}
	return s.offers.ListByProvider(ctx, principal.UserID, limit, offset)
}

// Withdraw retracts a sent offer belonging to the principal.
func (s *OfferService) Withdraw(ctx context.Context, principal *auth.Session, offerID string) (*model.RequestOffer, error) {
	offer, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.ProviderID != principal.UserID && !principal.Role.IsAdmin() {
		return nil, apperrors.Unauthorized("not the owner of this offer")
	}
	if offer.Status != model.OfferStatusSent {
		return nil, apperrors.InvalidStatef("offer in status %q cannot be withdrawn", offer.Status)
	}

	return s.offers.UpdateStatus(ctx, core.UpdateOfferStatusParams{
		ID:   offerID,
		From: model.OfferStatusSent,
		To:   model.OfferStatusWithdrawn,
	})
}
