package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents a marketplace authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	// RoleCustomer can post job requests and pay for bookings.
	RoleCustomer Role = "customer"
	// RoleProvider can browse the job board, submit offers, and fulfil bookings.
	RoleProvider Role = "provider"
	// RoleBoth combines customer and provider capabilities.
	RoleBoth Role = "both"
	// RoleAdmin can act on either side of the marketplace.
	RoleAdmin Role = "admin"
)

// Valid returns true if the Role is one of the defined marketplace roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleBoth, RoleAdmin:
		return true
	}
	return false
}

// CanPostJobRequests reports whether the role may create job requests.
func (r Role) CanPostJobRequests() bool {
	return r == RoleCustomer || r == RoleBoth || r == RoleAdmin
}

// CanSubmitOffers reports whether the role may browse the open job board and
// submit offers.
func (r Role) CanSubmitOffers() bool {
	return r == RoleProvider || r == RoleBoth || r == RoleAdmin
}

// CanPayBookings reports whether the role may confirm booking payments.
func (r Role) CanPayBookings() bool {
	return r == RoleCustomer || r == RoleBoth || r == RoleAdmin
}

// IsAdmin reports whether the role is the admin role.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// Identity represents the authenticated principal returned by an IdP.
// Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID    string // stable user identifier (e.g., sub claim)
	FirstName string
	LastName  string
	Email     string
	Groups    []string  // provider group claims, mapped to a marketplace role
	ExpiresAt time.Time // absolute expiry from IdP token
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (e.g., random URL-safe string).
// Sessions are the explicit principal value passed into every core operation;
// services never consult ambient state for the current user.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}
