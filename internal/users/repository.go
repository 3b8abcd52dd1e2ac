package users

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines read access to the user directory.
type Repository interface {
	ListAll(ctx context.Context) ([]User, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// ListAll returns every user ordered by id.
func (r *PGRepository) ListAll(ctx context.Context) ([]User, error) {
	if r == nil || r.pool == nil {
		return nil, fmt.Errorf("users repo not initialised")
	}
	const query = `SELECT id, email, role_name, created_at FROM users ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []User
	for rows.Next() {
		var u User
		var createdAt pgtype.Timestamptz
		if err := rows.Scan(&u.ID, &u.Email, &u.RoleName, &createdAt); err != nil {
			return nil, err
		}
		if createdAt.Valid {
			u.CreatedAt = createdAt.Time
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

var _ Repository = (*PGRepository)(nil)
