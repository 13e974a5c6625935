package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixnest/marketplace-api/internal/domain/auth"
	"github.com/fixnest/marketplace-api/internal/domain/model"
	apperrors "github.com/fixnest/marketplace-api/internal/errors"
	"github.com/fixnest/marketplace-api/internal/testutil"
)

func TestUserRepo_Upsert_RolePreservedOnRelogin(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		created, err := repo.Upsert(ctx, model.UpsertUserParams{
			Email:     "Anna.Schmidt@Example.test",
			FirstName: "Anna",
			LastName:  "Schmidt",
			Role:      auth.RoleProvider,
		})
		require.NoError(t, err)
		assert.Equal(t, "anna.schmidt@example.test", created.Email)
		assert.Equal(t, auth.RoleProvider, created.Role)

		// A later login refreshes the profile but never the role.
		again, err := repo.Upsert(ctx, model.UpsertUserParams{
			Email:     "anna.schmidt@example.test",
			FirstName: "Anna",
			LastName:  "Schmidt-Meyer",
			Role:      auth.RoleCustomer,
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, again.ID)
		assert.Equal(t, "Schmidt-Meyer", again.LastName)
		assert.Equal(t, auth.RoleProvider, again.Role)

		got, err := repo.GetByEmail(ctx, "ANNA.SCHMIDT@example.test")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)

		_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestUserRepo_Upsert_DefaultsInvalidRole(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)

		u, err := repo.Upsert(context.Background(), model.UpsertUserParams{
			Email: "no-role@example.test",
		})
		require.NoError(t, err)
		assert.Equal(t, auth.RoleCustomer, u.Role)
	})
}
