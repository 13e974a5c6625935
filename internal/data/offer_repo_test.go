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

func TestOfferRepo_Submit(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		offers := NewOfferRepo(db)
		requests := NewJobRequestRepo(db)
		threads := NewThreadRepo(db)

		customer := createTestUser(t, db, auth.RoleCustomer)
		provider := createTestUser(t, db, auth.RoleProvider)
		req := createTestJobRequest(t, db, customer.ID)

		offer := submitTestOffer(t, db, req, provider.ID)
		require.NotEmpty(t, offer.ID)
		assert.Equal(t, model.OfferStatusSent, offer.Status)
		assert.Equal(t, "EUR", offer.Currency)
		require.NotEmpty(t, offer.ThreadID)

		// The thread was created inside the same transaction.
		th, err := threads.GetByID(ctx, offer.ThreadID)
		require.NoError(t, err)
		assert.Equal(t, provider.ID, th.ProviderID)
		assert.Equal(t, customer.ID, th.CustomerID)

		// The request moved open→in_discussion.
		got, err := requests.GetByID(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, model.JobRequestStatusInDiscussion, got.Status)

		// A second offer from the same provider reuses the thread and leaves
		// the status alone.
		second, err := offers.Submit(ctx, core.SubmitOfferParams{
			JobRequest: req,
			ProviderID: provider.ID,
			Currency:   "EUR",
			Input: model.CreateOfferInput{
				JobRequestID: req.ID,
				AmountCents:  11000,
				Message:      "Revised price after the photos.",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, offer.ThreadID, second.ThreadID)

		got, err = requests.GetByID(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, model.JobRequestStatusInDiscussion, got.Status)

		list, err := offers.ListByJobRequest(ctx, req.ID)
		require.NoError(t, err)
		assert.Len(t, list, 2)

		mine, err := offers.ListByProvider(ctx, provider.ID, 10, 0)
		require.NoError(t, err)
		assert.Len(t, mine, 2)
	})
}

func TestOfferRepo_UpdateStatus(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		offers := NewOfferRepo(db)

		customer := createTestUser(t, db, auth.RoleCustomer)
		provider := createTestUser(t, db, auth.RoleProvider)
		req := createTestJobRequest(t, db, customer.ID)
		offer := submitTestOffer(t, db, req, provider.ID)

		withdrawn, err := offers.UpdateStatus(ctx, core.UpdateOfferStatusParams{
			ID: offer.ID, From: model.OfferStatusSent, To: model.OfferStatusWithdrawn,
		})
		require.NoError(t, err)
		assert.Equal(t, model.OfferStatusWithdrawn, withdrawn.Status)

		// Already withdrawn, so the sent guard reports the moved status.
		_, err = offers.UpdateStatus(ctx, core.UpdateOfferStatusParams{
			ID: offer.ID, From: model.OfferStatusSent, To: model.OfferStatusDeclined,
		})
		assert.True(t, apperrors.IsInvalidState(err))

		_, err = offers.UpdateStatus(ctx, core.UpdateOfferStatusParams{
			ID:   "00000000-0000-0000-0000-000000000000",
			From: model.OfferStatusSent, To: model.OfferStatusDeclined,
		})
		assert.True(t, apperrors.IsNotFound(err))
	})
}
