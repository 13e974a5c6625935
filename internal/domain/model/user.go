package model

import (
	"time"

	"github.com/fixnest/marketplace-api/internal/domain/auth"
)

// User is the persisted marketplace record behind an authenticated identity.
// The identity provider owns authentication; this row owns the marketplace
// role and profile. Created lazily on first login.
type User struct {
	ID        string    `json:"id"         db:"id"`
	Email     string    `json:"email"      db:"email"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name"  db:"last_name"`
	Role      auth.Role `json:"role"       db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UpsertUserParams carries identity fields persisted at login time. Email is
// the identity anchor; the row ID is database-generated. Role is only applied
// on first insert; an existing row keeps its role.
type UpsertUserParams struct {
	Email     string
	FirstName string
	LastName  string
	Role      auth.Role
}
