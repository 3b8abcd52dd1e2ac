package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gatehouse-io/gatehouse/internal/auth"
	"github.com/gatehouse-io/gatehouse/internal/rbac"
	_ "github.com/gatehouse-io/gatehouse/testing"
)

func identity(role string, perms ...string) *auth.Identity {
	return &auth.Identity{Subject: "subject-1", Role: auth.RoleClaim{Name: role, Permissions: perms}}
}

func TestHasRoleMembership(t *testing.T) {
	id := identity("Moderator")

	assert.True(t, rbac.HasRole(id, "Moderator"))
	assert.True(t, rbac.HasRole(id, "Admin", "Moderator"))
	assert.False(t, rbac.HasRole(id, "Admin"))
	assert.False(t, rbac.HasRole(id))
}

func TestHasRoleOrderIndependent(t *testing.T) {
	id := identity("User")

	assert.Equal(t,
		rbac.HasRole(id, "Admin", "Moderator", "User"),
		rbac.HasRole(id, "User", "Admin", "Moderator"))
}

func TestHasRoleNoHierarchy(t *testing.T) {
	// Admin is not implicitly superior; membership is literal.
	assert.False(t, rbac.HasRole(identity("Admin"), "Moderator"))
}

func TestHasRoleNilIdentity(t *testing.T) {
	assert.False(t, rbac.HasRole(nil, "Admin"))
}

func TestHasAllPermissionsContainment(t *testing.T) {
	id := identity("Moderator", "content.view", "content.moderate")

	assert.True(t, rbac.HasAllPermissions(id, "content.view"))
	assert.True(t, rbac.HasAllPermissions(id, "content.view", "content.moderate"))
	assert.False(t, rbac.HasAllPermissions(id, "content.view", "users.view"))
	assert.False(t, rbac.HasAllPermissions(id, "users.view"))
}

func TestHasAllPermissionsEmptyRequirementAllows(t *testing.T) {
	assert.True(t, rbac.HasAllPermissions(identity("User")))
	assert.True(t, rbac.HasAllPermissions(nil))
}

func TestHasAllPermissionsNilIdentity(t *testing.T) {
	assert.False(t, rbac.HasAllPermissions(nil, "content.view"))
}
