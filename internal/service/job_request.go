package service

import (
	"context"
	"fmt"

	"github.com/fixnest/marketplace-api/internal/core"
	"github.com/fixnest/marketplace-api/internal/domain/auth"
	"github.com/fixnest/marketplace-api/internal/domain/model"
	apperrors "github.com/fixnest/marketplace-api/internal/errors"
)

// JobRequestServiceConfig carries marketplace settings the service needs.
type JobRequestServiceConfig struct {
	DefaultCountry string
}

// JobRequestServiceOptions groups dependencies for JobRequestService.
type JobRequestServiceOptions struct {
	Requests core.JobRequestRepository
	Offers   core.OfferRepository
	Config   JobRequestServiceConfig
}

// JobRequestService owns the customer side of the job request lifecycle and
// the provider-facing job board. Every operation takes the authenticated
// session as its explicit principal.
type JobRequestService struct {
	requests core.JobRequestRepository
	offers   core.OfferRepository
	cfg      JobRequestServiceConfig
}

// NewJobRequestService constructs a new JobRequestService.
func NewJobRequestService(opts JobRequestServiceOptions) *JobRequestService {
	return &JobRequestService{
		requests: opts.Requests,
		offers:   opts.Offers,
		cfg:      opts.Config,
	}
}

// Create posts a new job request for the principal. Provider-only callers
// are rejected; the request starts in status open.
func (s *JobRequestService) Create(ctx context.Context, principal *auth.Session, input model.CreateJobRequestInput) (*model.JobRequest, error) {
	if !principal.Role.CanPostJobRequests() {
		return nil, apperrors.Unauthorized("only customers can post job requests")
	}

	input.Normalize(s.cfg.DefaultCountry)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.requests.Create(ctx, core.CreateJobRequestParams{
		CustomerID: principal.UserID,
		Input:      input,
	})
	if err != nil {
		return nil, fmt.Errorf("create job request: %w", err)
	}
	return req, nil
}

// ListOwn returns the principal's own requests with offer counts, full
// address included, newest first.
func (s *JobRequestService) ListOwn(ctx context.Context, principal *auth.Session, limit, offset int) ([]*model.JobRequestWithOfferCount, error) {
	return s.requests.ListByCustomer(ctx, principal.UserID, limit, offset)
}

// Board returns the provider-facing job board: open requests in the masked
// card projection. Customer-only callers are rejected.
func (s *JobRequestService) Board(ctx context.Context, principal *auth.Session, opts model.JobBoardOptions) ([]*model.JobRequestCard, error) {
	if !principal.Role.CanSubmitOffers() {
		return nil, apperrors.Unauthorized("only providers can browse the job board")
	}
	return s.requests.ListOpenCards(ctx, opts)
}

// GetOwn returns the owner's detail view of a request, offers included.
func (s *JobRequestService) GetOwn(ctx context.Context, principal *auth.Session, id string) (*model.JobRequest, []*model.RequestOffer, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if req.CustomerID != principal.UserID && !principal.Role.IsAdmin() {
		return nil, nil, apperrors.Unauthorized("not the owner of this job request")
	}

	offers, err := s.offers.ListByJobRequest(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list offers: %w", err)
	}
	return req, offers, nil
}

// Close moves the principal's request to closed. Closing is allowed from
// every non-terminal status.
func (s *JobRequestService) Close(ctx context.Context, principal *auth.Session, id string) (*model.JobRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.CustomerID != principal.UserID && !principal.Role.IsAdmin() {
		return nil, apperrors.Unauthorized("not the owner of this job request")
	}
	if !req.Status.CanTransitionTo(model.JobRequestStatusClosed) {
		return nil, apperrors.InvalidStatef("job request in status %q cannot be closed", req.Status)
	}

	return s.requests.UpdateStatus(ctx, core.UpdateJobRequestStatusParams{
		ID:   id,
		From: req.Status,
		To:   model.JobRequestStatusClosed,
	})
}
