package rbac

import "github.com/gatehouse-io/gatehouse/internal/auth"

// HasRole reports whether the identity's role name is a member of allowed.
// Matching is exact and case-sensitive; no partial matches, no hierarchy.
func HasRole(id *auth.Identity, allowed ...string) bool {
	if id == nil {
		return false
	}
	for _, role := range allowed {
		if id.Role.Name == role {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether every required permission is present in
// the identity's role permissions. An empty requirement trivially allows.
func HasAllPermissions(id *auth.Identity, required ...string) bool {
	if len(required) == 0 {
		return true
	}
	if id == nil {
		return false
	}
	granted := make(map[string]struct{}, len(id.Role.Permissions))
	for _, p := range id.Role.Permissions {
		granted[p] = struct{}{}
	}
	for _, p := range required {
		if _, ok := granted[p]; !ok {
			return false
		}
	}
	return true
}
