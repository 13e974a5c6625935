package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fixnest/marketplace-api/internal/core"
	"github.com/fixnest/marketplace-api/internal/domain/auth"
	"github.com/fixnest/marketplace-api/internal/domain/model"
)

func createTestUser(t *testing.T, db *sql.DB, role auth.Role) *model.User {
	t.Helper()
	ur := NewUserRepo(db)
	u, err := ur.Upsert(context.Background(), model.UpsertUserParams{
		Email:     fmt.Sprintf("%s-%d@example.test", role, time.Now().UnixNano()),
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	})
	require.NoError(t, err)
	return u
}

func createTestJobRequest(t *testing.T, db *sql.DB, customerID string) *model.JobRequest {
	t.Helper()
	jr := NewJobRequestRepo(db)
	in := model.CreateJobRequestInput{
		Category:     "plumbing",
		Title:        "Fix leaky tap",
		Description:  "Kitchen tap drips constantly",
		AddressLine1: "Musterstrasse 12",
		City:         "Berlin",
		PostalCode:   "10115",
		Country:      "DE",
		Timeframe:    model.TimeframeThisWeek,
	}
	req, err := jr.Create(context.Background(), core.CreateJobRequestParams{
		CustomerID: customerID,
		Input:      in,
	})
	require.NoError(t, err)
	return req
}

func submitTestOffer(t *testing.T, db *sql.DB, req *model.JobRequest, providerID string) *model.RequestOffer {
	t.Helper()
	or := NewOfferRepo(db)
	offer, err := or.Submit(context.Background(), core.SubmitOfferParams{
		JobRequest: req,
		ProviderID: providerID,
		Currency:   "EUR",
		Input: model.CreateOfferInput{
			JobRequestID: req.ID,
			AmountCents:  12500,
			Message:      "Can come Thursday morning.",
		},
	})
	require.NoError(t, err)
	return offer
}
