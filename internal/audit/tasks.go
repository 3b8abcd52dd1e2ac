package audit

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgconn"
)

// TaskTypeRecord is the asynq task type for persisting audit entries.
const TaskTypeRecord = "audit:record"

type recordPayload struct {
	ID         uuid.UUID `json:"id"`
	SubjectID  string    `json:"subject_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewRecordTask constructs an asynq task carrying the entry.
func NewRecordTask(entry Entry) (*asynq.Task, error) {
	data, err := json.Marshal(recordPayload{
		ID:         entry.ID,
		SubjectID:  entry.SubjectID,
		Action:     entry.Action,
		OccurredAt: entry.OccurredAt,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeRecord, data), nil
}

// NewRecordTaskHandler returns the worker-side handler that persists queued
// entries through repo.
func NewRecordTaskHandler(repo Repository, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload recordPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		err := repo.Insert(ctx, Entry{
			ID:         payload.ID,
			SubjectID:  payload.SubjectID,
			Action:     payload.Action,
			OccurredAt: payload.OccurredAt,
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				// Already persisted by the fallback path; retrying cannot help.
				return asynq.SkipRetry
			}
			if logger != nil {
				logger.Error("persist audit entry",
					slog.String("subject", payload.SubjectID),
					slog.String("action", payload.Action),
					slog.Any("error", err))
			}
			return err
		}
		return nil
	}
}
