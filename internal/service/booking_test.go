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

const testBookingID = "booking-123"

// newBookingService creates mock repositories and the service under test.
func newBookingService(t *testing.T, cfg BookingServiceConfig) (*mocks.MockBookingRepository, *mocks.MockOfferRepository, *mocks.MockJobRequestRepository, *BookingService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	bookings := mocks.NewMockBookingRepository(ctrl)
	offers := mocks.NewMockOfferRepository(ctrl)
	requests := mocks.NewMockJobRequestRepository(ctrl)

	service := NewBookingService(BookingServiceOptions{
		Bookings: bookings,
		Deps:     BookingServiceDeps{Offers: offers, Requests: requests},
		Config:   cfg,
	})
	return bookings, offers, requests, service
}

func defaultBookingConfig() BookingServiceConfig {
	return BookingServiceConfig{PlatformFeePercent: 10, SimulatedPayments: true}
}

func sentOffer() *model.RequestOffer {
	return &model.RequestOffer{
		ID:           testOfferID,
		JobRequestID: testJobRequestID,
		ProviderID:   testProviderID,
		ThreadID:     testThreadID,
		Currency:     "EUR",
		AmountCents:  20000,
		Status:       model.OfferStatusSent,
	}
}

func discussedRequest() *model.JobRequest {
	return &model.JobRequest{
		ID:           testJobRequestID,
		CustomerID:   testCustomerID,
		Title:        "Fix leaking sink",
		AddressLine1: "Musterstrasse 1",
		City:         "Berlin",
		PostalCode:   "10115",
		Country:      "DE",
		Status:       model.JobRequestStatusInDiscussion,
	}
}

func needsPaymentBooking() *model.Booking {
	offerID := testOfferID
	reqID := testJobRequestID
	return &model.Booking{
		ID:                  testBookingID,
		Type:                model.BookingTypeJobRequest,
		Status:              model.BookingStatusNeedsPayment,
		JobTitle:            "Fix leaking sink",
		AddressLine1:        "Musterstrasse 1",
		City:                "Berlin",
		PostalCode:          "10115",
		Country:             "DE",
		CustomerID:          testCustomerID,
		ProviderID:          testProviderID,
		JobRequestID:        &reqID,
		OfferID:             &offerID,
		Currency:            "EUR",
		QuotedPriceCents:    20000,
		PlatformFeeCents:    2000,
		ProviderPayoutCents: 18000,
	}
}

func TestBookingService_AcceptOffer_Success(t *testing.T) {
	t.Parallel()
	bookings, offers, requests, service := newBookingService(t, defaultBookingConfig())

	ctx := context.Background()
	offer := sentOffer()
	req := discussedRequest()

	offers.EXPECT().GetByID(ctx, testOfferID).Return(offer, nil).Times(1)
	requests.EXPECT().GetByID(ctx, testJobRequestID).Return(req, nil).Times(1)
	bookings.EXPECT().
		AcceptOffer(ctx, core.AcceptOfferParams{
			Offer:               offer,
			JobRequest:          req,
			PlatformFeeCents:    2000,
			ProviderPayoutCents: 18000,
		}).
		Return(needsPaymentBooking(), nil).
		Times(1)

	result, err := service.AcceptOffer(ctx, customerSession(), testOfferID)

	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusNeedsPayment, result.Status)
	assert.Equal(t, int64(2000), result.PlatformFeeCents)
	assert.Equal(t, int64(18000), result.ProviderPayoutCents)
}

func TestBookingService_AcceptOffer_NotOwnerRejected(t *testing.T) {
	t.Parallel()
	_, offers, requests, service := newBookingService(t, defaultBookingConfig())

	ctx := context.Background()
	offers.EXPECT().GetByID(ctx, testOfferID).Return(sentOffer(), nil).Times(1)
	requests.EXPECT().GetByID(ctx, testJobRequestID).Return(discussedRequest(), nil).Times(1)

	_, err := service.AcceptOffer(ctx, providerSession(), testOfferID)

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestBookingService_AcceptOffer_WithdrawnOfferRejected(t *testing.T) {
	t.Parallel()
	_, offers, requests, service := newBookingService(t, defaultBookingConfig())

	ctx := context.Background()
	offer := sentOffer()
	offer.Status = model.OfferStatusWithdrawn

	offers.EXPECT().GetByID(ctx, testOfferID).Return(offer, nil).Times(1)
	requests.EXPECT().GetByID(ctx, testJobRequestID).Return(discussedRequest(), nil).Times(1)

	_, err := service.AcceptOffer(ctx, customerSession(), testOfferID)

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
}

func TestBookingService_AcceptOffer_ClosedRequestRejected(t *testing.T) {
	t.Parallel()
	_, offers, requests, service := newBookingService(t, defaultBookingConfig())

	ctx := context.Background()
	req := discussedRequest()
	req.Status = model.JobRequestStatusClosed

	offers.EXPECT().GetByID(ctx, testOfferID).Return(sentOffer(), nil).Times(1)
	requests.EXPECT().GetByID(ctx, testJobRequestID).Return(req, nil).Times(1)

	_, err := service.AcceptOffer(ctx, customerSession(), testOfferID)

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
}

func TestBookingService_AcceptOffer_ZeroFeePercent(t *testing.T) {
	t.Parallel()
	cfg := defaultBookingConfig()
	cfg.PlatformFeePercent = 0
	bookings, offers, requests, service := newBookingService(t, cfg)

	ctx := context.Background()
	offer := sentOffer()
	req := discussedRequest()

	offers.EXPECT().GetByID(ctx, testOfferID).Return(offer, nil).Times(1)
	requests.EXPECT().GetByID(ctx, testJobRequestID).Return(req, nil).Times(1)
	bookings.EXPECT().
		AcceptOffer(ctx, core.AcceptOfferParams{
			Offer:               offer,
			JobRequest:          req,
			PlatformFeeCents:    0,
			ProviderPayoutCents: 20000,
		}).
		Return(needsPaymentBooking(), nil).
		Times(1)

	_, err := service.AcceptOffer(ctx, customerSession(), testOfferID)
	require.NoError(t, err)
}

func TestBookingService_ConfirmSimulatedPayment_Success(t *testing.T) {
	t.Parallel()
	bookings, _, _, service := newBookingService(t, defaultBookingConfig())

	ctx := context.Background()
	paid := needsPaymentBooking()
	paid.Status = model.BookingStatusPaid

	bookings.EXPECT().GetByID(ctx, testBookingID).Return(needsPaymentBooking(), nil).Times(1)
	bookings.EXPECT().
		ConfirmSimulatedPayment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params core.ConfirmPaymentParams) (*model.Booking, error) {
			assert.Equal(t, testBookingID, params.BookingID)
			assert.NotEmpty(t, params.Reference)
			return paid, nil
		}).
		Times(1)

	result, err := service.ConfirmSimulatedPayment(ctx, customerSession(), testBookingID)

	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusPaid, result.Status)
}

func TestBookingService_ConfirmSimulatedPayment_Disabled(t *testing.T) {
	t.Parallel()
	cfg := defaultBookingConfig()
	cfg.SimulatedPayments = false
	_, _, _, service := newBookingService(t, cfg)

	_, err := service.ConfirmSimulatedPayment(context.Background(), customerSession(), testBookingID)

	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestBookingService_ConfirmSimulatedPayment_ProviderRejected(t *testing.T) {
	t.Parallel()
	_, _, _, service := newBookingService(t, defaultBookingConfig())

	_, err := service.ConfirmSimulatedPayment(context.Background(), providerSession(), testBookingID)

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestBookingService_ConfirmSimulatedPayment_ProviderRoleRejectedEvenAsOwner(t *testing.T) {
	t.Parallel()
	_, _, _, service := newBookingService(t, defaultBookingConfig())

	// Same user ID as the booking customer, but a provider-only role
	// may not pay. The guard fires before the booking is even loaded.
	principal := providerSession()
	principal.UserID = testCustomerID

	_, err := service.ConfirmSimulatedPayment(context.Background(), principal, testBookingID)

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestBookingService_ConfirmSimulatedPayment_AlreadyPaid(t *testing.T) {
	t.Parallel()
	bookings, _, _, service := newBookingService(t, defaultBookingConfig())

	ctx := context.Background()
	paid := needsPaymentBooking()
	paid.Status = model.BookingStatusPaid

	bookings.EXPECT().GetByID(ctx, testBookingID).Return(paid, nil).Times(1)

	_, err := service.ConfirmSimulatedPayment(ctx, customerSession(), testBookingID)

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
}

func TestBookingService_Get_ProviderMaskedBeforePayment(t *testing.T) {
	t.Parallel()
	bookings, _, _, service := newBookingService(t, defaultBookingConfig())

	ctx := context.Background()
	bookings.EXPECT().GetByID(ctx, testBookingID).Return(needsPaymentBooking(), nil).Times(1)

	view, err := service.Get(ctx, providerSession(), testBookingID)

	require.NoError(t, err)
	assert.Empty(t, view.AddressLine1)
	assert.False(t, view.AddressVisible)
	assert.Equal(t, "Berlin", view.City)
	assert.Equal(t, "10115", view.PostalCode)
}

func TestBookingService_Get_ProviderFullAddressAfterPayment(t *testing.T) {
	t.Parallel()
	bookings, _, _, service := newBookingService(t, defaultBookingConfig())

	ctx := context.Background()
	paid := needsPaymentBooking()
	paid.Status = model.BookingStatusPaid

	bookings.EXPECT().GetByID(ctx, testBookingID).Return(paid, nil).Times(1)

	view, err := service.Get(ctx, providerSession(), testBookingID)

	require.NoError(t, err)
	assert.Equal(t, "Musterstrasse 1", view.AddressLine1)
	assert.True(t, view.AddressVisible)
}

func TestBookingService_Get_CustomerAlwaysFullAddress(t *testing.T) {
	t.Parallel()
	bookings, _, _, service := newBookingService(t, defaultBookingConfig())

	ctx := context.Background()
	bookings.EXPECT().GetByID(ctx, testBookingID).Return(needsPaymentBooking(), nil).Times(1)

	view, err := service.Get(ctx, customerSession(), testBookingID)

	require.NoError(t, err)
	assert.Equal(t, "Musterstrasse 1", view.AddressLine1)
	assert.True(t, view.AddressVisible)
}

func TestBookingService_Get_StrangerRejected(t *testing.T) {
	t.Parallel()
	bookings, _, _, service := newBookingService(t, defaultBookingConfig())

	ctx := context.Background()
	stranger := providerSession()
	stranger.UserID = "provider-other"

	bookings.EXPECT().GetByID(ctx, testBookingID).Return(needsPaymentBooking(), nil).Times(1)

	_, err := service.Get(ctx, stranger, testBookingID)

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestBookingService_UpdateStatus_IllegalTransitionRejected(t *testing.T) {
	t.Parallel()
	bookings, _, _, service := newBookingService(t, defaultBookingConfig())

	ctx := context.Background()
	bookings.EXPECT().GetByID(ctx, testBookingID).Return(needsPaymentBooking(), nil).Times(1)

	_, err := service.UpdateStatus(ctx, customerSession(), core.UpdateBookingStatusParams{
		ID: testBookingID,
		To: model.BookingStatusCompleted,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
}

func TestBookingService_UpdateStatus_ScheduleAfterPayment(t *testing.T) {
	t.Parallel()
	bookings, _, _, service := newBookingService(t, defaultBookingConfig())

	ctx := context.Background()
	paid := needsPaymentBooking()
	paid.Status = model.BookingStatusPaid
	scheduled := needsPaymentBooking()
	scheduled.Status = model.BookingStatusScheduled

	bookings.EXPECT().GetByID(ctx, testBookingID).Return(paid, nil).Times(1)
	bookings.EXPECT().
		UpdateStatus(ctx, core.UpdateBookingStatusParams{
			ID:   testBookingID,
			From: model.BookingStatusPaid,
			To:   model.BookingStatusScheduled,
		}).
		Return(scheduled, nil).
		Times(1)

	result, err := service.UpdateStatus(ctx, providerSession(), core.UpdateBookingStatusParams{
		ID: testBookingID,
		To: model.BookingStatusScheduled,
	})

	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusScheduled, result.Status)
}

func TestPlatformFeeCents_Rounding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount  int64
		percent float64
		want    int64
	}{
		{20000, 10, 2000},
		{9999, 10, 1000},
		{101, 12.5, 13},
		{100, 0, 0},
		{100, -5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, platformFeeCents(tt.amount, tt.percent), "amount=%d percent=%v", tt.amount, tt.percent)
	}
}
