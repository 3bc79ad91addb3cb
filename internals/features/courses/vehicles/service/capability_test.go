package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"apexdrive_backend/internals/constants"
)

func TestCanEditSensitiveField_NewVehicleEditableByAnyRole(t *testing.T) {
	for _, role := range []string{constants.RoleClientAdmin, constants.RoleManager, constants.RoleSupervisor, ""} {
		assert.True(t, CanEditSensitiveField(role, true), "role %q", role)
	}
}

func TestCanEditSensitiveField_CatalogVehicleLockedToAdmin(t *testing.T) {
	assert.True(t, CanEditSensitiveField(constants.RoleClientAdmin, false))
	assert.False(t, CanEditSensitiveField(constants.RoleManager, false))
	assert.False(t, CanEditSensitiveField(constants.RoleSupervisor, false))
	assert.False(t, CanEditSensitiveField("", false))
}
