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

func TestJobRequestRepo_Create_Get_List(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewJobRequestRepo(db)

		customer := createTestUser(t, db, auth.RoleCustomer)
		req := createTestJobRequest(t, db, customer.ID)

		require.NotEmpty(t, req.ID)
		assert.Equal(t, model.JobRequestStatusOpen, req.Status)
		assert.Equal(t, "Musterstrasse 12", req.AddressLine1)
		assert.NotZero(t, req.CreatedAt)

		got, err := repo.GetByID(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, req.Title, got.Title)

		list, err := repo.ListByCustomer(ctx, customer.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, 0, list[0].OfferCount)

		_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestJobRequestRepo_ListOpenCards(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewJobRequestRepo(db)

		customer := createTestUser(t, db, auth.RoleCustomer)
		req := createTestJobRequest(t, db, customer.ID)

		cards, err := repo.ListOpenCards(ctx, model.JobBoardOptions{})
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, req.ID, cards[0].ID)
		// City-level location only.
		assert.Equal(t, "Berlin", cards[0].City)
		assert.Equal(t, "10115", cards[0].PostalCode)

		// Filters narrow the board.
		cards, err = repo.ListOpenCards(ctx, model.JobBoardOptions{Category: "gardening"})
		require.NoError(t, err)
		assert.Empty(t, cards)

		// Non-open requests never appear.
		_, err = repo.UpdateStatus(ctx, core.UpdateJobRequestStatusParams{
			ID: req.ID, From: model.JobRequestStatusOpen, To: model.JobRequestStatusClosed,
		})
		require.NoError(t, err)
		cards, err = repo.ListOpenCards(ctx, model.JobBoardOptions{})
		require.NoError(t, err)
		assert.Empty(t, cards)
	})
}

func TestJobRequestRepo_UpdateStatus_CompareAndSet(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewJobRequestRepo(db)

		customer := createTestUser(t, db, auth.RoleCustomer)
		req := createTestJobRequest(t, db, customer.ID)

		updated, err := repo.UpdateStatus(ctx, core.UpdateJobRequestStatusParams{
			ID: req.ID, From: model.JobRequestStatusOpen, To: model.JobRequestStatusInDiscussion,
		})
		require.NoError(t, err)
		assert.Equal(t, model.JobRequestStatusInDiscussion, updated.Status)

		// Guard on the old status no longer matches: the row exists but
		// has moved on, which is a state problem, not a missing row.
		_, err = repo.UpdateStatus(ctx, core.UpdateJobRequestStatusParams{
			ID: req.ID, From: model.JobRequestStatusOpen, To: model.JobRequestStatusClosed,
		})
		assert.True(t, apperrors.IsInvalidState(err))

		// A genuinely absent row still reads as not found.
		_, err = repo.UpdateStatus(ctx, core.UpdateJobRequestStatusParams{
			ID:   "00000000-0000-0000-0000-000000000000",
			From: model.JobRequestStatusOpen, To: model.JobRequestStatusClosed,
		})
		assert.True(t, apperrors.IsNotFound(err))
	})
}
