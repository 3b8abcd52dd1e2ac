package content

import "github.com/google/uuid"

// Item is a role-scoped piece of content returned by filtered retrieval.
// Items are created by the seed process or an external authoring tool; the
// pipeline only ever reads and filters them.
type Item struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	RoleAccess  []string       `json:"roleAccess"`
	Data        map[string]any `json:"data"`
}

// VisibleTo reports whether role appears in the item's access list.
func (i Item) VisibleTo(role string) bool {
	for _, r := range i.RoleAccess {
		if r == role {
			return true
		}
	}
	return false
}
