package memory

import (
	"context"
	"sync"

	"github.com/tasktrack/tasktrack-api/internal/domain"
)

// FeedbackStore is an in-memory append-only feedback log. The ID comes
// from a store-owned counter rather than the current log length; with no
// delete path the two always agree, but the counter stays correct even if
// a trim operation is ever added.
type FeedbackStore struct {
	mu      sync.Mutex
	entries []*domain.Feedback
	nextID  int64
}

// NewFeedbackStore creates an empty in-memory feedback log.
func NewFeedbackStore() *FeedbackStore {
	return &FeedbackStore{nextID: 1}
}

// Append adds the entry to the log and assigns its ID.
func (s *FeedbackStore) Append(ctx context.Context, feedback *domain.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	feedback.ID = s.nextID
	s.nextID++

	stored := *feedback
	s.entries = append(s.entries, &stored)
	return nil
}

// Len reports the number of entries in the log.
func (s *FeedbackStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
