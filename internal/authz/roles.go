package authz

import "agencyhub/internal/models"

// IsAgency reports whether the role belongs to agency staff. Agency users
// see every record; client users only their own company's.
func IsAgency(role models.Role) bool {
	return role == models.RoleAgencyAdmin || role == models.RoleAgencyMember
}

// CanManageBilling gates invoice creation and status changes.
func CanManageBilling(role models.Role) bool {
	return role == models.RoleAgencyAdmin
}

// CanViewClientRecord checks whether the principal may read records tagged
// with the given client name.
func CanViewClientRecord(p models.Principal, clientName string) bool {
	if IsAgency(p.Role) {
		return true
	}
	return p.CompanyName != "" && p.CompanyName == clientName
}
