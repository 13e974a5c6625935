package auth

import "testing"

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleCustomer, RoleProvider, RoleBoth, RoleAdmin} {
		if !r.Valid() {
			t.Errorf("Role(%q).Valid() = false, want true", r)
		}
	}
	for _, r := range []Role{"", "guest", "CUSTOMER"} {
		if r.Valid() {
			t.Errorf("Role(%q).Valid() = true, want false", r)
		}
	}
}

func TestRole_Capabilities(t *testing.T) {
	tests := []struct {
		role     Role
		canPost  bool
		canOffer bool
		canPay   bool
	}{
		{RoleCustomer, true, false, true},
		{RoleProvider, false, true, false},
		{RoleBoth, true, true, true},
		{RoleAdmin, true, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.CanPostJobRequests(); got != tt.canPost {
				t.Errorf("CanPostJobRequests() = %v, want %v", got, tt.canPost)
			}
			if got := tt.role.CanSubmitOffers(); got != tt.canOffer {
				t.Errorf("CanSubmitOffers() = %v, want %v", got, tt.canOffer)
			}
			if got := tt.role.CanPayBookings(); got != tt.canPay {
				t.Errorf("CanPayBookings() = %v, want %v", got, tt.canPay)
			}
		})
	}
}
