package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicate is returned by repository inserts that collide with an existing
// row on a unique column, such as a second journal entry for the same day.
var ErrDuplicate = errors.New("duplicate entry")

// JournalEntry is the daily progress log: one entry per calendar day.
type JournalEntry struct {
	ID              uuid.UUID // Unique identifier
	UserID          uuid.UUID // Owning user
	Date            time.Time // Calendar day, unique per user; time-of-day is ignored
	ProblemsSolved  int
	StudyHours      int
	TopicsCovered   string
	Accomplishments string
	Challenges      string
	TomorrowPlan    string
	ConfidenceLevel int // 1-10, 0 when unset
	CreatedAt       time.Time
}

// JournalRepository holds the daily journal repository methods.
type JournalRepository interface {
	// InsertEntry stores a new journal entry. At most one entry may exist per
	// user and calendar day; a second entry for the same day returns an error
	// wrapping ErrDuplicate.
	InsertEntry(entry *JournalEntry) error

	// GetEntries returns the user's entries, most recent day first.
	GetEntries(userID uuid.UUID) ([]*JournalEntry, error)
}
