package audit

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists audit entries.
type Repository interface {
	Insert(ctx context.Context, entry Entry) error
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Insert appends the entry to audit_entries.
func (r *PGRepository) Insert(ctx context.Context, entry Entry) error {
	if r == nil || r.pool == nil {
		return errors.New("audit repo not initialised")
	}
	if entry.SubjectID == "" || entry.Action == "" {
		return errors.New("audit entry requires subject/action")
	}
	at := pgtype.Timestamptz{Time: entry.OccurredAt, Valid: !entry.OccurredAt.IsZero()}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_entries (id, subject_id, action, occurred_at) VALUES ($1, $2, $3, COALESCE($4, NOW()))`,
		entry.ID, entry.SubjectID, entry.Action, at)
	return err
}

var _ Repository = (*PGRepository)(nil)
