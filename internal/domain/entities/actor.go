package entities

// Role is the authorization role carried in the verified access token.
type Role string

const (
	RoleSuperAdmin     Role = "Super Admin"
	RoleAdmin          Role = "Admin"
	RoleSalesManager   Role = "Sales Manager"
	RoleSalesExecutive Role = "Sales Executive"
	RoleAccountManager Role = "Account Manager"
	RoleBackendManager Role = "Backend Manager"
	RoleQC             Role = "QC"
)

// Actor is the authenticated user performing an operation. It is passed
// explicitly to every usecase call.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// SystemActor is used by background jobs such as the handover recovery sweep.
var SystemActor = Actor{ID: "system", Name: "system", Role: RoleSuperAdmin}

// SeesAllSales reports whether the actor may read and mutate any sale, not
// only the ones assigned to them.
func (a Actor) SeesAllSales() bool {
	return a.Role != RoleSalesExecutive
}

// ReadsAuditLogs reports whether the actor may read the audit trail.
func (a Actor) ReadsAuditLogs() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}

// DisplayName falls back to the id when the token carried no name.
func (a Actor) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}
