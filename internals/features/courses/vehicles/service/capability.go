// service/capability.go
package service

import "apexdrive_backend/internals/constants"

// CanEditSensitiveField decides whether the acting role may change a
// vehicle's year or lateral-acceleration rating. Free-text (new) vehicles
// are editable by everyone; catalog-sourced vehicles lock those fields to
// client admins. Called uniformly wherever the rule applies instead of
// per-field conditionals.
func CanEditSensitiveField(role string, isNew bool) bool {
	if isNew {
		return true
	}
	return role == constants.RoleClientAdmin
}
