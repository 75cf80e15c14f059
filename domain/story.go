package domain

import (
	"time"

	"github.com/google/uuid"
)

// Story represents a behavioral interview story in STAR form
// (Situation, Task, Action, Result).
type Story struct {
	ID                  uuid.UUID // Unique identifier
	UserID              uuid.UUID // Owning user
	Title               string
	Category            string // e.g. "Leadership", "Conflict", "General"
	Situation           string
	Task                string
	Action              string
	Result              string
	CompanyRelevance    string // Companies the story targets
	LeadershipPrinciple string // Principle the story maps to
	TimesPracticed      int
	LastPracticed       time.Time // Zero when never practiced
	Ready               bool      // Whether the story is interview-ready
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// StoryUpdate describes a partial update to a story. Nil fields are left untouched.
type StoryUpdate struct {
	Title               *string
	Category            *string
	Situation           *string
	Task                *string
	Action              *string
	Result              *string
	CompanyRelevance    *string
	LeadershipPrinciple *string
	Notes               *string
	// TimesPracticed, when set, also stamps LastPracticed with the current time.
	TimesPracticed *int
	Ready          *bool
}

// StoryRepository holds all behavioral story repository methods.
type StoryRepository interface {
	// InsertStory stores a new story.
	InsertStory(story *Story) error

	// GetStories returns the user's stories, newest first.
	GetStories(userID uuid.UUID) ([]*Story, error)

	// GetStory returns a single story by ID, scoped to the user.
	GetStory(userID uuid.UUID, id uuid.UUID) (*Story, error)

	// UpdateStory applies a partial update and returns the refreshed story.
	UpdateStory(userID uuid.UUID, id uuid.UUID, update StoryUpdate) (*Story, error)
}
