package constants

import "fmt"

// Client-scoped roles carried in the access token.
const (
	RoleClientAdmin = "client_admin"
	RoleManager     = "manager"
	RoleSupervisor  = "supervisor"
)

// ClientUser statuses.
const (
	StatusActive    = "active"
	StatusPending   = "pending"
	StatusInvited   = "invited"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// Error message templates for role guards.
const (
	ErrOnlyAdminsCanAccess   = "Only a client admin may access %s."
	ErrOnlyManagersCanAccess = "Only a manager or client admin may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

// ==========================
// Grouped role slices
// ==========================
var (
	AllRoles = []string{
		RoleClientAdmin,
		RoleManager,
		RoleSupervisor,
	}

	ManagerAndAbove = []string{
		RoleManager,
		RoleClientAdmin,
	}

	AdminOnly = []string{
		RoleClientAdmin,
	}
)

// ValidRole reports whether r is one of the client-scoped roles.
func ValidRole(r string) bool {
	for _, v := range AllRoles {
		if v == r {
			return true
		}
	}
	return false
}

// ValidUserStatus reports whether s is a known ClientUser status.
func ValidUserStatus(s string) bool {
	switch s {
	case StatusActive, StatusPending, StatusInvited, StatusInactive, StatusSuspended:
		return true
	}
	return false
}
