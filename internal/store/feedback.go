package store

import (
	"context"

	"github.com/tasktrack/tasktrack-api/internal/domain"
)

// FeedbackStore defines the interface for the append-only feedback log.
// There is no lookup, update, or delete path; entries live for the
// lifetime of the backing store.
type FeedbackStore interface {
	// Append adds a feedback entry to the log and assigns its ID from a
	// store-owned counter. With appends serialized the ID always equals
	// the entry's 1-based position in the log.
	Append(ctx context.Context, feedback *domain.Feedback) error
}
