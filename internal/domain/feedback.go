package domain

import "time"

// DefaultFeedbackRating is applied when a submission omits the rating.
const DefaultFeedbackRating = 5

// Feedback represents a single entry in the append-only feedback log.
// It is unrelated to tasks: nothing validates or interprets the text or
// rating, and there is no update or delete path. The ID is assigned by
// the store at append time.
type Feedback struct {
	ID           int64     `json:"id"`
	FeedbackText string    `json:"feedback_text"`
	Rating       int       `json:"rating"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewFeedback creates a new Feedback entry, defaulting the rating when the
// caller supplied none. A nil rating means the field was absent; any value
// the caller does send is kept as-is, zero and out-of-range ones included.
func NewFeedback(text string, rating *int) *Feedback {
	r := DefaultFeedbackRating
	if rating != nil {
		r = *rating
	}
	return &Feedback{
		FeedbackText: text,
		Rating:       r,
		Timestamp:    time.Now().UTC(),
	}
}
