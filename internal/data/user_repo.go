package data

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/fixnest/marketplace-api/internal/data/pgxutil"
	"github.com/fixnest/marketplace-api/internal/domain/auth"
	"github.com/fixnest/marketplace-api/internal/domain/model"
	apperrors "github.com/fixnest/marketplace-api/internal/errors"
)

const userColumns = `id, email, first_name, last_name, role, created_at, updated_at`

const userUpsertQuery = `
	INSERT INTO users (email, first_name, last_name, role)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (email) DO UPDATE SET
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		updated_at = now()
	RETURNING ` + userColumns

// UserRepo provides database operations for users.
type UserRepo struct {
	DB *sql.DB
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

// Upsert inserts a user on first login or refreshes the profile fields on
// later logins. The role takes effect only on the initial insert; existing
// rows keep whatever role they already carry.
func (r *UserRepo) Upsert(ctx context.Context, params model.UpsertUserParams) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" {
		return nil, apperrors.ValidationField("email", "email is required")
	}
	role := params.Role
	if !role.Valid() {
		role = auth.RoleCustomer
	}

	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, userUpsertQuery, email, params.FirstName, params.LastName, role)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail retrieves a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`,
		strings.ToLower(strings.TrimSpace(email)))
}

func (r *UserRepo) getBy(ctx context.Context, query string, arg any) (*model.User, error) {
	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, arg)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
