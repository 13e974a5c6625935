package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/fixnest/marketplace-api/internal/domain/auth"
	"github.com/fixnest/marketplace-api/internal/ports"
)

func TestMockAuthProvider_Begin_Defaults(t *testing.T) {
	provider := NewMockAuthProvider()
	ctx := context.Background()

	input := ports.BeginInput{RedirectURL: "http://localhost:8080/callback"}
	authURL, state, nonce, err := provider.Begin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", authURL)
	assert.Equal(t, "state-1", state)
	assert.Equal(t, "nonce-1", nonce)

	// Second call should increment counters
	authURL2, state2, nonce2, err2 := provider.Begin(ctx, input)
	require.NoError(t, err2)
	assert.Equal(t, "https://mock-idp/auth", authURL2)
	assert.Equal(t, "state-2", state2)
	assert.Equal(t, "nonce-2", nonce2)
}

func TestMockAuthProvider_Begin_CustomFunc(t *testing.T) {
	provider := &MockAuthProvider{
		BeginFunc: func(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
			return "custom-url", "custom-state", "custom-nonce", nil
		},
	}
	ctx := context.Background()

	input := ports.BeginInput{RedirectURL: "http://localhost:8080/callback"}
	authURL, state, nonce, err := provider.Begin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "custom-url", authURL)
	assert.Equal(t, "custom-state", state)
	assert.Equal(t, "custom-nonce", nonce)
}

func TestMockAuthProvider_Exchange_Defaults(t *testing.T) {
	provider := NewMockAuthProvider()
	ctx := context.Background()

	input := ports.ExchangeInput{
		Code:  "auth-code",
		State: "state-1",
		Nonce: "nonce-1",
	}
	identity, err := provider.Exchange(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "mock-user-1", identity.UserID)
	assert.Equal(t, "Mock", identity.FirstName)
	assert.Equal(t, "User", identity.LastName)
	assert.Equal(t, "mock.user@example.com", identity.Email)
	assert.Equal(t, []string{"fixnest-customers"}, identity.Groups)
	assert.True(t, identity.ExpiresAt.After(time.Now()))
}

func TestMockAuthProvider_Exchange_CustomUser(t *testing.T) {
	customUser := domainauth.Identity{
		UserID:    "custom-user",
		FirstName: "Custom",
		LastName:  "Person",
		Email:     "custom@example.com",
		Groups:    []string{"fixnest-providers"},
	}
	provider := &MockAuthProvider{DefaultUser: customUser}
	ctx := context.Background()

	input := ports.ExchangeInput{
		Code:  "auth-code",
		State: "state-1",
		Nonce: "nonce-1",
	}
	identity, err := provider.Exchange(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "custom-user", identity.UserID)
	assert.Equal(t, "Custom", identity.FirstName)
	assert.Equal(t, "Person", identity.LastName)
	assert.Equal(t, "custom@example.com", identity.Email)
	assert.Equal(t, []string{"fixnest-providers"}, identity.Groups)
	assert.True(t, identity.ExpiresAt.After(time.Now()))
}

func TestStaticRoleMapper_Roles(t *testing.T) {
	mapper := StaticRoleMapper{
		AdminGroup:    "fixnest-admins",
		ProviderGroup: "fixnest-providers",
		CustomerGroup: "fixnest-customers",
	}

	tests := []struct {
		name   string
		groups []string
		want   domainauth.Role
	}{
		{"admin wins over everything", []string{"fixnest-customers", "fixnest-admins"}, domainauth.RoleAdmin},
		{"provider group", []string{"fixnest-providers"}, domainauth.RoleProvider},
		{"customer group", []string{"fixnest-customers"}, domainauth.RoleCustomer},
		{"both sides", []string{"fixnest-customers", "fixnest-providers"}, domainauth.RoleBoth},
		{"unknown groups default to customer", []string{"other", "groups"}, domainauth.RoleCustomer},
		{"no groups default to customer", nil, domainauth.RoleCustomer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapper.Map(tt.groups))
		})
	}
}

func TestMemorySessionStore_SaveAndGet(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "test-session-1",
		UserID:    "user-123",
		Email:     "user@example.com",
		Role:      domainauth.RoleCustomer,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	err := store.Save(ctx, session)
	require.NoError(t, err)

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	assert.Equal(t, session.UserID, retrieved.UserID)
	assert.Equal(t, session.Email, retrieved.Email)
	assert.Equal(t, session.Role, retrieved.Role)
	assert.WithinDuration(t, session.ExpiresAt, retrieved.ExpiresAt, time.Second)
}

func TestMemorySessionStore_GetNonExistent(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "non-existent")
	assert.Equal(t, ErrNotFound, err)
}

func TestMemorySessionStore_SaveEmptyID(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := domainauth.Session{
		ID:     "",
		UserID: "user-123",
	}

	err := store.Save(ctx, session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session ID cannot be empty")
}

func TestMemorySessionStore_Delete(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "test-session-1",
		UserID:    "user-123",
		Role:      domainauth.RoleProvider,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, "test-session-1"))

	_, err := store.Get(ctx, "test-session-1")
	assert.Equal(t, ErrNotFound, err)

	// Delete with empty ID should not error
	assert.NoError(t, store.Delete(ctx, ""))
}
