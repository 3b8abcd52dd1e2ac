package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const fallbackWriteTimeout = 5 * time.Second

// Recorder dispatches audit entries without ever failing the caller. The
// preferred path enqueues a background task; when the queue is unreachable
// the entry is written directly on a detached context. Failures on either
// path only surface in operator logs.
type Recorder struct {
	client *asynq.Client
	repo   Repository
	logger *slog.Logger
}

// NewRecorder constructs a Recorder. Client and repo may each be nil; the
// recorder degrades to whichever path is available.
func NewRecorder(client *asynq.Client, repo Repository, logger *slog.Logger) *Recorder {
	return &Recorder{client: client, repo: repo, logger: logger}
}

// Record captures an action performed by the subject. It never blocks on
// persistence and never reports an error to the request path: audit
// completeness is best effort and callers must not depend on it.
func (r *Recorder) Record(ctx context.Context, subjectID, action string) {
	if r == nil {
		return
	}
	entry := Entry{
		ID:         uuid.New(),
		SubjectID:  subjectID,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}
	if r.client != nil {
		task, err := NewRecordTask(entry)
		if err == nil {
			if _, err = r.client.EnqueueContext(ctx, task); err == nil {
				return
			}
		}
		r.report("enqueue audit entry", entry, err)
	}
	if r.repo == nil {
		r.report("drop audit entry", entry, nil)
		return
	}
	// Detach from the request context so teardown never waits on the write.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fallbackWriteTimeout)
	go func() {
		defer cancel()
		if err := r.repo.Insert(writeCtx, entry); err != nil {
			r.report("write audit entry", entry, err)
		}
	}()
}

func (r *Recorder) report(msg string, entry Entry, err error) {
	if r.logger == nil {
		return
	}
	r.logger.Error(msg,
		slog.String("subject", entry.SubjectID),
		slog.String("action", entry.Action),
		slog.Any("error", err))
}
