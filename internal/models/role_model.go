package models

// UserType identifies which tenant registry a principal belongs to.
type UserType string

const (
	UserTypeAdmin       UserType = "admin"
	UserTypeCompany     UserType = "company"
	UserTypeDistributor UserType = "service-distributer"
)

// Dashboard paths the client is redirected to after sign-in or on a role mismatch.
const (
	AdminDashboardPath       = "/admin-dashboard"
	CompanyDashboardPath     = "/company-dashboard"
	DistributorDashboardPath = "/service-distributer-dashboard"
	LoginPath                = "/"
)

// RoleInfo is the result of resolving a principal's email against the tenant
// registries. It is derived, recomputed on every sign-in, and never persisted.
type RoleInfo struct {
	UserType     UserType `json:"userType"`
	RedirectPath string   `json:"redirectPath"`
	TenantID     string   `json:"tenantId"` // document ID of the matching registry record
}

// DashboardPathFor returns the fixed dashboard path for a user type, or the
// login path for anything unrecognized.
func DashboardPathFor(userType UserType) string {
	switch userType {
	case UserTypeAdmin:
		return AdminDashboardPath
	case UserTypeCompany:
		return CompanyDashboardPath
	case UserTypeDistributor:
		return DistributorDashboardPath
	default:
		return LoginPath
	}
}

// Session is the per-request principal context produced by the auth middleware
// from the verified Firebase token plus role resolution. It is threaded through
// handlers explicitly rather than cached in package state.
type Session struct {
	UID          string   `json:"uid"`
	Email        string   `json:"email"`
	DisplayName  string   `json:"displayName,omitempty"`
	PhotoURL     string   `json:"photoURL,omitempty"`
	UserType     UserType `json:"userType"`
	RedirectPath string   `json:"redirectPath"`
	TenantID     string   `json:"tenantId"`
}
