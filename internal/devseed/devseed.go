// Package devseed populates a development database with a small, recognizable
// marketplace data set: a demo customer, a demo provider, open job requests,
// and one offer already in discussion.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/fixnest/marketplace-api/internal/core"
	"github.com/fixnest/marketplace-api/internal/data"
	domainauth "github.com/fixnest/marketplace-api/internal/domain/auth"
	"github.com/fixnest/marketplace-api/internal/domain/model"
)

const (
	seedCustomerEmail = "customer@fixnest.test"
	seedProviderEmail = "provider@fixnest.test"
)

// Services bundles the repositories needed for development seeding.
type Services struct {
	users    *data.UserRepo
	requests *data.JobRequestRepo
	offers   *data.OfferRepo
}

// NewServices constructs the repositories the seeder writes through.
func NewServices(db *sql.DB) Services {
	return Services{
		users:    data.NewUserRepo(db),
		requests: data.NewJobRequestRepo(db),
		offers:   data.NewOfferRepo(db),
	}
}

// Run seeds demo marketplace data. It is idempotent: users are upserted by
// email and job requests are only created when the demo customer has none yet.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	customer, provider, err := seedUsers(ctx, svcs)
	if err != nil {
		return err
	}

	existing, err := svcs.requests.ListByCustomer(ctx, customer.ID, 1, 0)
	if err != nil {
		return fmt.Errorf("check existing seed requests: %w", err)
	}
	if len(existing) > 0 {
		logger.InfoContext(ctx, "dev seed data already present, skipping")
		return nil
	}

	requests, err := seedJobRequests(ctx, svcs, customer.ID)
	if err != nil {
		return err
	}

	if err := seedOffer(ctx, svcs, requests[0], provider.ID); err != nil {
		return err
	}

	logger.InfoContext(ctx, "dev seed data created",
		"customer", customer.Email,
		"provider", provider.Email,
		"job_requests", len(requests))
	return nil
}

func seedUsers(ctx context.Context, svcs Services) (customer, provider *model.User, err error) {
	customer, err = svcs.users.Upsert(ctx, model.UpsertUserParams{
		Email:     seedCustomerEmail,
		FirstName: "Clara",
		LastName:  "Kunde",
		Role:      domainauth.RoleCustomer,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("seed customer: %w", err)
	}

	provider, err = svcs.users.Upsert(ctx, model.UpsertUserParams{
		Email:     seedProviderEmail,
		FirstName: "Paul",
		LastName:  "Handwerker",
		Role:      domainauth.RoleProvider,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("seed provider: %w", err)
	}

	return customer, provider, nil
}

func seedJobRequests(ctx context.Context, svcs Services, customerID string) ([]*model.JobRequest, error) {
	budgetMin := int64(8000)
	budgetMax := int64(15000)

	inputs := []model.CreateJobRequestInput{
		{
			Category:       "plumbing",
			Title:          "Fix leaking kitchen sink",
			Description:    "The sink in the kitchen has been dripping for a week.",
			AddressLine1:   "Hauptstr. 5",
			City:           "Berlin",
			PostalCode:     "10115",
			Country:        "DE",
			BudgetMinCents: &budgetMin,
			BudgetMaxCents: &budgetMax,
			Timeframe:      model.TimeframeThisWeek,
		},
		{
			Category:     "painting",
			Title:        "Paint two bedrooms",
			Description:  "Walls and ceilings, white, roughly 30 square meters.",
			AddressLine1: "Gartenweg 12",
			City:         "Berlin",
			PostalCode:   "10115",
			Country:      "DE",
			Timeframe:    model.TimeframeFlexible,
		},
	}

	requests := make([]*model.JobRequest, 0, len(inputs))
	for _, in := range inputs {
		req, err := svcs.requests.Create(ctx, core.CreateJobRequestParams{
			CustomerID: customerID,
			Input:      in,
		})
		if err != nil {
			return nil, fmt.Errorf("seed job request %q: %w", in.Title, err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func seedOffer(ctx context.Context, svcs Services, req *model.JobRequest, providerID string) error {
	_, err := svcs.offers.Submit(ctx, core.SubmitOfferParams{
		JobRequest: req,
		ProviderID: providerID,
		Currency:   "EUR",
		Input: model.CreateOfferInput{
			JobRequestID: req.ID,
			AmountCents:  12000,
			Message:      "I can take a look on Thursday afternoon.",
		},
	})
	if err != nil {
		return fmt.Errorf("seed offer: %w", err)
	}
	return nil
}
