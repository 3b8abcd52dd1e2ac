package audit

import (
	"time"

	"github.com/google/uuid"
)

// Entry is an append-only record of a security-relevant action. Entries are
// created once and never updated or deleted by this system.
type Entry struct {
	ID         uuid.UUID
	SubjectID  string
	Action     string
	OccurredAt time.Time
}
