package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DesignStatus tracks confidence on a system design topic.
type DesignStatus string

const (
	DesignNotStarted  DesignStatus = "NOT_STARTED"
	DesignResearching DesignStatus = "RESEARCHING"
	DesignPracticing  DesignStatus = "PRACTICING"
	DesignConfident   DesignStatus = "CONFIDENT"
)

// DesignStatuses lists every valid design topic status.
func DesignStatuses() []DesignStatus {
	return []DesignStatus{DesignNotStarted, DesignResearching, DesignPracticing, DesignConfident}
}

// ParseDesignStatus converts a string into a DesignStatus, rejecting unknown values.
func ParseDesignStatus(value string) (DesignStatus, error) {
	s := DesignStatus(strings.ToUpper(value))
	switch s {
	case DesignNotStarted, DesignResearching, DesignPracticing, DesignConfident:
		return s, nil
	}
	return "", fmt.Errorf("invalid design status %q", value)
}

// DesignTopic represents a system design interview topic being studied.
type DesignTopic struct {
	ID             uuid.UUID    // Unique identifier
	UserID         uuid.UUID    // Owning user
	Title          string       // e.g. "URL Shortener"
	Description    string       // Short prompt for the design exercise
	Status         DesignStatus // Confidence level
	PracticeCount  int          // Number of times the topic was practiced
	LastPracticed  time.Time    // Zero when never practiced
	Notes          string
	KeyConcepts    string   // Concepts to remember for this topic
	CommonPatterns string   // Recurring architectural patterns
	Resources      []string // Links to articles, talks, papers
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TopicUpdate describes a partial update to a design topic. Nil fields are left untouched.
type TopicUpdate struct {
	Status         *DesignStatus
	Notes          *string
	KeyConcepts    *string
	CommonPatterns *string
	// PracticeCount, when set, also stamps LastPracticed with the current time.
	PracticeCount *int
}

// DesignRepository holds all system design topic repository methods.
type DesignRepository interface {
	// InsertTopic stores a new design topic.
	InsertTopic(topic *DesignTopic) error

	// GetTopics returns the user's topics ordered by title.
	GetTopics(userID uuid.UUID) ([]*DesignTopic, error)

	// GetTopic returns a single topic by ID, scoped to the user.
	GetTopic(userID uuid.UUID, id uuid.UUID) (*DesignTopic, error)

	// UpdateTopic applies a partial update and returns the refreshed topic.
	UpdateTopic(userID uuid.UUID, id uuid.UUID, update TopicUpdate) (*DesignTopic, error)
}
