package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fixnest/marketplace-api/internal/core"
	"github.com/fixnest/marketplace-api/internal/domain/model"
	apperrors "github.com/fixnest/marketplace-api/internal/errors"
	"github.com/fixnest/marketplace-api/internal/mocks"
)

const testThreadID = "thread-123"

// newMessagingService creates mock repositories and the service under test.
func newMessagingService(t *testing.T) (*mocks.MockThreadRepository, *mocks.MockJobRequestRepository, *MessagingService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	threads := mocks.NewMockThreadRepository(ctrl)
	requests := mocks.NewMockJobRequestRepository(ctrl)

	service := NewMessagingService(MessagingServiceOptions{
		Threads:  threads,
		Requests: requests,
	})
	return threads, requests, service
}

func testThread() *model.MessageThread {
	reqID := testJobRequestID
	return &model.MessageThread{
		ID:           testThreadID,
		JobRequestID: &reqID,
		CustomerID:   testCustomerID,
		ProviderID:   testProviderID,
	}
}

func TestMessagingService_SendMessage_ToThread(t *testing.T) {
	t.Parallel()
	threads, _, service := newMessagingService(t)

	ctx := context.Background()
	expected := &model.Message{ID: "msg-1", ThreadID: testThreadID, SenderID: testCustomerID, Body: "hello"}

	threads.EXPECT().GetByID(ctx, testThreadID).Return(testThread(), nil).Times(1)
	threads.EXPECT().
		AppendMessage(ctx, core.AppendMessageParams{
			ThreadID: testThreadID,
			SenderID: testCustomerID,
			Body:     "hello",
		}).
		Return(expected, nil).
		Times(1)

	result, err := service.SendMessage(ctx, customerSession(), model.SendMessageInput{
		ThreadID: testThreadID,
		Body:     "hello",
	})

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestMessagingService_SendMessage_NonParticipantRejected(t *testing.T) {
	t.Parallel()
	threads, _, service := newMessagingService(t)

	ctx := context.Background()
	thread := testThread()
	thread.CustomerID = "someone-else"
	thread.ProviderID = "someone-else-too"

	threads.EXPECT().GetByID(ctx, testThreadID).Return(thread, nil).Times(1)

	_, err := service.SendMessage(ctx, customerSession(), model.SendMessageInput{
		ThreadID: testThreadID,
		Body:     "let me in",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestMessagingService_SendMessage_FirstContactCreatesThread(t *testing.T) {
	t.Parallel()
	threads, requests, service := newMessagingService(t)

	ctx := context.Background()
	req := &model.JobRequest{ID: testJobRequestID, CustomerID: testCustomerID, Status: model.JobRequestStatusOpen}
	expected := &model.Message{ID: "msg-1", ThreadID: testThreadID, SenderID: testProviderID, Body: "I can help"}

	requests.EXPECT().GetByID(ctx, testJobRequestID).Return(req, nil).Times(1)
	threads.EXPECT().
		UpsertForJobRequest(ctx, core.UpsertThreadParams{
			JobRequestID: testJobRequestID,
			CustomerID:   testCustomerID,
			ProviderID:   testProviderID,
		}).
		Return(testThread(), nil).
		Times(1)
	threads.EXPECT().
		AppendMessage(ctx, core.AppendMessageParams{
			ThreadID: testThreadID,
			SenderID: testProviderID,
			Body:     "I can help",
		}).
		Return(expected, nil).
		Times(1)

	result, err := service.SendMessage(ctx, providerSession(), model.SendMessageInput{
		JobRequestID: testJobRequestID,
		Body:         "I can help",
	})

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestMessagingService_SendMessage_FirstContactByCustomerRejected(t *testing.T) {
	t.Parallel()
	_, _, service := newMessagingService(t)

	_, err := service.SendMessage(context.Background(), customerSession(), model.SendMessageInput{
		JobRequestID: testJobRequestID,
		Body:         "hello?",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestMessagingService_SendMessage_OwnRequestRejected(t *testing.T) {
	t.Parallel()
	_, requests, service := newMessagingService(t)

	ctx := context.Background()
	principal := providerSession()
	req := &model.JobRequest{ID: testJobRequestID, CustomerID: principal.UserID, Status: model.JobRequestStatusOpen}

	requests.EXPECT().GetByID(ctx, testJobRequestID).Return(req, nil).Times(1)

	_, err := service.SendMessage(ctx, principal, model.SendMessageInput{
		JobRequestID: testJobRequestID,
		Body:         "talking to myself",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestMessagingService_SendMessage_BothLocatorsRejected(t *testing.T) {
	t.Parallel()
	_, _, service := newMessagingService(t)

	_, err := service.SendMessage(context.Background(), customerSession(), model.SendMessageInput{
		ThreadID:     testThreadID,
		JobRequestID: testJobRequestID,
		Body:         "ambiguous",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestMessagingService_SendMessage_BlankBodyRejected(t *testing.T) {
	t.Parallel()
	_, _, service := newMessagingService(t)

	_, err := service.SendMessage(context.Background(), customerSession(), model.SendMessageInput{
		ThreadID: testThreadID,
		Body:     "   ",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestMessagingService_ListMessages_ParticipantOnly(t *testing.T) {
	t.Parallel()
	threads, _, service := newMessagingService(t)

	ctx := context.Background()
	msgs := []*model.Message{
		{ID: "msg-1", ThreadID: testThreadID, SenderID: testProviderID, Body: "first"},
		{ID: "msg-2", ThreadID: testThreadID, SenderID: testCustomerID, Body: "second"},
	}

	threads.EXPECT().GetByID(ctx, testThreadID).Return(testThread(), nil).Times(1)
	threads.EXPECT().ListMessages(ctx, testThreadID, 50, 0).Return(msgs, nil).Times(1)

	result, err := service.ListMessages(ctx, providerSession(), testThreadID, 50, 0)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestMessagingService_ListMessages_StrangerRejected(t *testing.T) {
	t.Parallel()
	threads, _, service := newMessagingService(t)

	ctx := context.Background()
	thread := testThread()
	thread.CustomerID = "someone-else"
	thread.ProviderID = "someone-else-too"

	threads.EXPECT().GetByID(ctx, testThreadID).Return(thread, nil).Times(1)

	_, err := service.ListMessages(ctx, providerSession(), testThreadID, 50, 0)

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestMessagingService_ListThreads(t *testing.T) {
	t.Parallel()
	threads, _, service := newMessagingService(t)

	ctx := context.Background()
	list := []*model.MessageThread{testThread()}

	threads.EXPECT().ListByParticipant(ctx, testProviderID, 50, 0).Return(list, nil).Times(1)

	result, err := service.ListThreads(ctx, providerSession(), 50, 0)

	require.NoError(t, err)
	assert.Equal(t, list, result)
}
