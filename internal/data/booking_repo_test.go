package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixnest/marketplace-api/internal/core"
	"github.com/fixnest/marketplace-api/internal/domain/auth"
	"github.com/fixnest/marketplace-api/internal/domain/model"
	apperrors "github.com/fixnest/marketplace-api/internal/errors"
	"github.com/fixnest/marketplace-api/internal/testutil"
)

func acceptTestOffer(t *testing.T, db *sql.DB, req *model.JobRequest, offer *model.RequestOffer) *model.Booking {
	t.Helper()
	br := NewBookingRepo(db)
	booking, err := br.AcceptOffer(context.Background(), core.AcceptOfferParams{
		Offer:               offer,
		JobRequest:          req,
		PlatformFeeCents:    1250,
		ProviderPayoutCents: offer.AmountCents - 1250,
	})
	require.NoError(t, err)
	return booking
}

func TestBookingRepo_AcceptOffer(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		bookings := NewBookingRepo(db)
		offers := NewOfferRepo(db)
		requests := NewJobRequestRepo(db)
		threads := NewThreadRepo(db)

		customer := createTestUser(t, db, auth.RoleCustomer)
		provider := createTestUser(t, db, auth.RoleProvider)
		req := createTestJobRequest(t, db, customer.ID)
		offer := submitTestOffer(t, db, req, provider.ID)

		booking := acceptTestOffer(t, db, req, offer)

		assert.Equal(t, model.BookingStatusNeedsPayment, booking.Status)
		assert.Equal(t, model.BookingTypeJobRequest, booking.Type)
		assert.Equal(t, req.Title, booking.JobTitle)
		assert.Equal(t, req.AddressLine1, booking.AddressLine1)
		assert.Equal(t, offer.AmountCents, booking.QuotedPriceCents)
		assert.Equal(t, int64(1250), booking.PlatformFeeCents)
		require.NotNil(t, booking.JobRequestID)
		assert.Equal(t, req.ID, *booking.JobRequestID)

		// Offer marked accepted.
		gotOffer, err := offers.GetByID(ctx, offer.ID)
		require.NoError(t, err)
		assert.Equal(t, model.OfferStatusAccepted, gotOffer.Status)

		// Job request assigned.
		gotReq, err := requests.GetByID(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, model.JobRequestStatusAssigned, gotReq.Status)

		// Thread bound to the booking.
		gotThread, err := threads.GetByID(ctx, offer.ThreadID)
		require.NoError(t, err)
		require.NotNil(t, gotThread.BookingID)
		assert.Equal(t, booking.ID, *gotThread.BookingID)

		// Payment transaction awaiting payment.
		payment, err := bookings.GetPaymentByBookingID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusRequiresPayment, payment.Status)
		assert.Equal(t, offer.AmountCents, payment.AmountCents)
	})
}

func TestBookingRepo_AcceptOffer_AlreadyAccepted(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		bookings := NewBookingRepo(db)

		customer := createTestUser(t, db, auth.RoleCustomer)
		provider := createTestUser(t, db, auth.RoleProvider)
		req := createTestJobRequest(t, db, customer.ID)
		offer := submitTestOffer(t, db, req, provider.ID)

		acceptTestOffer(t, db, req, offer)

		// Accepting twice fails and must not leave a second booking behind.
		_, err := bookings.AcceptOffer(ctx, core.AcceptOfferParams{
			Offer:               offer,
			JobRequest:          req,
			PlatformFeeCents:    1250,
			ProviderPayoutCents: offer.AmountCents - 1250,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsInvalidState(err))

		var count int
		require.NoError(t, db.QueryRowContext(ctx,
			`SELECT count(*) FROM bookings WHERE offer_id = $1`, offer.ID).Scan(&count))
		assert.Equal(t, 1, count)
	})
}

func TestBookingRepo_ConfirmSimulatedPayment(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		bookings := NewBookingRepo(db)

		customer := createTestUser(t, db, auth.RoleCustomer)
		provider := createTestUser(t, db, auth.RoleProvider)
		req := createTestJobRequest(t, db, customer.ID)
		offer := submitTestOffer(t, db, req, provider.ID)
		booking := acceptTestOffer(t, db, req, offer)

		paid, err := bookings.ConfirmSimulatedPayment(ctx, core.ConfirmPaymentParams{
			BookingID: booking.ID,
			Reference: "sim-123",
		})
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusPaid, paid.Status)
		require.NotNil(t, paid.PaidAt)

		payment, err := bookings.GetPaymentByBookingID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusSucceeded, payment.Status)
		assert.Equal(t, "sim-123", payment.Reference)

		// A second confirmation finds no needs_payment row.
		_, err = bookings.ConfirmSimulatedPayment(ctx, core.ConfirmPaymentParams{
			BookingID: booking.ID,
			Reference: "sim-456",
		})
		assert.True(t, apperrors.IsNotFound(err))

		// The succeeded payment kept its original reference.
		payment, err = bookings.GetPaymentByBookingID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, "sim-123", payment.Reference)
	})
}

func TestBookingRepo_ListByParticipant_And_UpdateStatus(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		bookings := NewBookingRepo(db)

		customer := createTestUser(t, db, auth.RoleCustomer)
		provider := createTestUser(t, db, auth.RoleProvider)
		req := createTestJobRequest(t, db, customer.ID)
		offer := submitTestOffer(t, db, req, provider.ID)
		booking := acceptTestOffer(t, db, req, offer)

		for _, userID := range []string{customer.ID, provider.ID} {
			list, err := bookings.ListByParticipant(ctx, userID, 10, 0)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, booking.ID, list[0].ID)
		}

		other := createTestUser(t, db, auth.RoleCustomer)
		list, err := bookings.ListByParticipant(ctx, other.ID, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, list)

		// Transition guard: the booking still awaits payment, so a
		// paid-guarded update reports the actual status.
		_, err = bookings.UpdateStatus(ctx, core.UpdateBookingStatusParams{
			ID: booking.ID, From: model.BookingStatusPaid, To: model.BookingStatusScheduled,
		})
		assert.True(t, apperrors.IsInvalidState(err))

		_, err = bookings.UpdateStatus(ctx, core.UpdateBookingStatusParams{
			ID:   "00000000-0000-0000-0000-000000000000",
			From: model.BookingStatusPaid, To: model.BookingStatusScheduled,
		})
		assert.True(t, apperrors.IsNotFound(err))

		canceled, err := bookings.UpdateStatus(ctx, core.UpdateBookingStatusParams{
			ID: booking.ID, From: model.BookingStatusNeedsPayment, To: model.BookingStatusCanceled,
		})
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusCanceled, canceled.Status)
	})
}
