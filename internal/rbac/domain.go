package rbac

// Role names recognised by the route gates and the seed data. Access is flat
// set membership; nothing here implies Admin outranks Moderator.
const (
	RoleAdmin     = "Admin"
	RoleModerator = "Moderator"
	RoleUser      = "User"
)

// Platform permissions carried in token claims.
const (
	PermContentView     = "content.view"
	PermContentModerate = "content.moderate"
	PermUsersView       = "users.view"
)

// CoreScopes lists all permissions known to the platform.
func CoreScopes() []string {
	return []string{
		PermContentView,
		PermContentModerate,
		PermUsersView,
	}
}
