package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines read access to the content store.
type Repository interface {
	ListByRole(ctx context.Context, role string) ([]Item, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// ListByRole returns every item whose access list contains role. No ordering
// or pagination is guaranteed beyond set membership.
func (r *PGRepository) ListByRole(ctx context.Context, role string) ([]Item, error) {
	if r == nil || r.pool == nil {
		return nil, fmt.Errorf("content repo not initialised")
	}
	const query = `
SELECT id, title, description, role_access, data
FROM content_items
WHERE $1 = ANY(role_access)`
	rows, err := r.pool.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		var data []byte
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &it.RoleAccess, &data); err != nil {
			return nil, err
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &it.Data); err != nil {
				return nil, err
			}
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

var _ Repository = (*PGRepository)(nil)
