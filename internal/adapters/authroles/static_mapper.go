package authroles

import (
	domainauth "github.com/fixnest/marketplace-api/internal/domain/auth"
)

// StaticRoleMapper maps IdP group claims to marketplace roles by simple
// string membership. A user in both the customer and provider groups gets
// the combined role. Users with no matching group default to customer, so a
// fresh login can always at least post job requests.
type StaticRoleMapper struct {
	AdminGroup    string
	ProviderGroup string
	CustomerGroup string
}

func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	var customer, provider bool
	for _, g := range groups {
		switch {
		case m.AdminGroup != "" && g == m.AdminGroup:
			return domainauth.RoleAdmin
		case m.ProviderGroup != "" && g == m.ProviderGroup:
			provider = true
		case m.CustomerGroup != "" && g == m.CustomerGroup:
			customer = true
		}
	}
	switch {
	case customer && provider:
		return domainauth.RoleBoth
	case provider:
		return domainauth.RoleProvider
	default:
		return domainauth.RoleCustomer
	}
}
