package service

import (
	"context"
	"fmt"

	"github.com/fixnest/marketplace-api/internal/core"
	"github.com/fixnest/marketplace-api/internal/domain/auth"
	"github.com/fixnest/marketplace-api/internal/domain/model"
	apperrors "github.com/fixnest/marketplace-api/internal/errors"
)

// MessagingServiceOptions groups dependencies for MessagingService.
type MessagingServiceOptions struct {
	Threads  core.ThreadRepository
	Requests core.JobRequestRepository
}

// MessagingService owns negotiation threads and their append-only messages.
type MessagingService struct {
	threads  core.ThreadRepository
	requests core.JobRequestRepository
}

// NewMessagingService constructs a new MessagingService.
func NewMessagingService(opts MessagingServiceOptions) *MessagingService {
	return &MessagingService{
		threads:  opts.Threads,
		requests: opts.Requests,
	}
}

// SendMessage appends a message. With a thread locator the principal must be
// a participant; with a job request locator the principal must be a provider
// making first contact, and the thread is created lazily. Sending into the
// same (request, provider) pair twice never creates a second thread.
func (s *MessagingService) SendMessage(ctx context.Context, principal *auth.Session, input model.SendMessageInput) (*model.Message, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	threadID := input.ThreadID
	if threadID == "" {
		thread, err := s.threadForFirstContact(ctx, principal, input.JobRequestID)
		if err != nil {
			return nil, err
		}
		threadID = thread.ID
	} else {
		thread, err := s.threads.GetByID(ctx, threadID)
		if err != nil {
			return nil, err
		}
		if !thread.HasParticipant(principal.UserID) && !principal.Role.IsAdmin() {
			return nil, apperrors.Unauthorized("not a participant of this thread")
		}
	}

	msg, err := s.threads.AppendMessage(ctx, core.AppendMessageParams{
		ThreadID:    threadID,
		SenderID:    principal.UserID,
		Body:        input.Body,
		Attachments: input.Attachments,
	})
	if err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}
	return msg, nil
}

// threadForFirstContact resolves the thread for a provider's first contact
// on a job request, creating it when needed.
func (s *MessagingService) threadForFirstContact(ctx context.Context, principal *auth.Session, jobRequestID string) (*model.MessageThread, error) {
	if !principal.Role.CanSubmitOffers() {
		return nil, apperrors.Unauthorized("only providers can contact a job request")
	}

	req, err := s.requests.GetByID(ctx, jobRequestID)
	if err != nil {
		return nil, err
	}
	if req.CustomerID == principal.UserID {
		return nil, apperrors.Validation("cannot open a thread on your own job request")
	}

	return s.threads.UpsertForJobRequest(ctx, core.UpsertThreadParams{
		JobRequestID: req.ID,
		CustomerID:   req.CustomerID,
		ProviderID:   principal.UserID,
	})
}

// ListThreads returns the threads the principal takes part in.
func (s *MessagingService) ListThreads(ctx context.Context, principal *auth.Session, limit, offset int) ([]*model.MessageThread, error) {
	return s.threads.ListByParticipant(ctx, principal.UserID, limit, offset)
}

// ListMessages returns a thread's messages in order. Participants only.
func (s *MessagingService) ListMessages(ctx context.Context, principal *auth.Session, threadID string, limit, offset int) ([]*model.Message, error) {
	thread, err := s.threads.GetByID(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if !thread.HasParticipant(principal.UserID) && !principal.Role.IsAdmin() {
		return nil, apperrors.Unauthorized("not a participant of this thread")
	}

	return s.threads.ListMessages(ctx, threadID, limit, offset)
}
