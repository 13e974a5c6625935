package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixnest/marketplace-api/internal/core"
	"github.com/fixnest/marketplace-api/internal/domain/auth"
	"github.com/fixnest/marketplace-api/internal/testutil"
)

func TestThreadRepo_UpsertForJobRequest_Idempotent(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewThreadRepo(db)

		customer := createTestUser(t, db, auth.RoleCustomer)
		provider := createTestUser(t, db, auth.RoleProvider)
		req := createTestJobRequest(t, db, customer.ID)

		params := core.UpsertThreadParams{
			JobRequestID: req.ID,
			CustomerID:   customer.ID,
			ProviderID:   provider.ID,
		}

		first, err := repo.UpsertForJobRequest(ctx, params)
		require.NoError(t, err)
		require.NotEmpty(t, first.ID)

		second, err := repo.UpsertForJobRequest(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		// A different provider gets a different thread.
		other := createTestUser(t, db, auth.RoleProvider)
		third, err := repo.UpsertForJobRequest(ctx, core.UpsertThreadParams{
			JobRequestID: req.ID,
			CustomerID:   customer.ID,
			ProviderID:   other.ID,
		})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, third.ID)
	})
}

func TestThreadRepo_UpsertForJobRequest_ConcurrentFirstContact(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewThreadRepo(db)

		customer := createTestUser(t, db, auth.RoleCustomer)
		provider := createTestUser(t, db, auth.RoleProvider)
		req := createTestJobRequest(t, db, customer.ID)

		params := core.UpsertThreadParams{
			JobRequestID: req.ID,
			CustomerID:   customer.ID,
			ProviderID:   provider.ID,
		}

		const workers = 8
		ids := make([]string, workers)
		funcs := make([]func() error, workers)
		for i := 0; i < workers; i++ {
			i := i
			funcs[i] = func() error {
				th, err := repo.UpsertForJobRequest(ctx, params)
				if err != nil {
					return err
				}
				ids[i] = th.ID
				return nil
			}
		}

		runner := testutil.NewConcurrentTestRunner(t, db)
		runner.AssertNoErrors(runner.RunConcurrent(funcs...))

		for i := 1; i < workers; i++ {
			assert.Equal(t, ids[0], ids[i], "all racers must land on the same thread")
		}

		var count int
		require.NoError(t, db.QueryRowContext(ctx,
			`SELECT count(*) FROM message_threads WHERE job_request_id = $1 AND provider_id = $2`,
			req.ID, provider.ID).Scan(&count))
		assert.Equal(t, 1, count)
	})
}

func TestThreadRepo_Messages(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewThreadRepo(db)

		customer := createTestUser(t, db, auth.RoleCustomer)
		provider := createTestUser(t, db, auth.RoleProvider)
		req := createTestJobRequest(t, db, customer.ID)

		th, err := repo.UpsertForJobRequest(ctx, core.UpsertThreadParams{
			JobRequestID: req.ID,
			CustomerID:   customer.ID,
			ProviderID:   provider.ID,
		})
		require.NoError(t, err)

		m1, err := repo.AppendMessage(ctx, core.AppendMessageParams{
			ThreadID: th.ID,
			SenderID: provider.ID,
			Body:     "Hi, I can help with this.",
		})
		require.NoError(t, err)
		assert.Empty(t, m1.Attachments)

		m2, err := repo.AppendMessage(ctx, core.AppendMessageParams{
			ThreadID:    th.ID,
			SenderID:    customer.ID,
			Body:        "Great, when could you come by?",
			Attachments: []string{"photos/tap.jpg"},
		})
		require.NoError(t, err)

		msgs, err := repo.ListMessages(ctx, th.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, m1.ID, msgs[0].ID)
		assert.Equal(t, m2.ID, msgs[1].ID)
		assert.Equal(t, []string{"photos/tap.jpg"}, msgs[1].Attachments)

		threads, err := repo.ListByParticipant(ctx, provider.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, threads, 1)
		assert.Equal(t, th.ID, threads[0].ID)
	})
}
