package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Difficulty is the difficulty rating of a coding problem.
type Difficulty string

const (
	Easy   Difficulty = "EASY"
	Medium Difficulty = "MEDIUM"
	Hard   Difficulty = "HARD"
)

// Difficulties lists every valid difficulty, in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty converts a string into a Difficulty, rejecting unknown values.
func ParseDifficulty(value string) (Difficulty, error) {
	d := Difficulty(strings.ToUpper(value))
	switch d {
	case Easy, Medium, Hard:
		return d, nil
	}
	return "", fmt.Errorf("invalid difficulty %q", value)
}

// ProblemStatus tracks where a problem sits in the practice workflow.
type ProblemStatus string

const (
	ProblemNotStarted ProblemStatus = "NOT_STARTED"
	ProblemInProgress ProblemStatus = "IN_PROGRESS"
	ProblemCompleted  ProblemStatus = "COMPLETED"
	ProblemReview     ProblemStatus = "REVIEW"
)

// ProblemStatuses lists every valid problem status.
func ProblemStatuses() []ProblemStatus {
	return []ProblemStatus{ProblemNotStarted, ProblemInProgress, ProblemCompleted, ProblemReview}
}

// ParseProblemStatus converts a string into a ProblemStatus, rejecting unknown values.
func ParseProblemStatus(value string) (ProblemStatus, error) {
	s := ProblemStatus(strings.ToUpper(value))
	switch s {
	case ProblemNotStarted, ProblemInProgress, ProblemCompleted, ProblemReview:
		return s, nil
	}
	return "", fmt.Errorf("invalid problem status %q", value)
}

// Category groups problems by the data structure or technique they exercise.
type Category string

const (
	Arrays             Category = "ARRAYS"
	Trees              Category = "TREES"
	Graphs             Category = "GRAPHS"
	DynamicProgramming Category = "DYNAMIC_PROGRAMMING"
	HashTables         Category = "HASH_TABLES"
	LinkedLists        Category = "LINKED_LISTS"
	Heaps              Category = "HEAPS"
	StacksQueues       Category = "STACKS_QUEUES"
	BinarySearch       Category = "BINARY_SEARCH"
	Matrix             Category = "MATRIX"
	Greedy             Category = "GREEDY"
	BitManipulation    Category = "BIT_MANIPULATION"
)

// Categories lists every valid problem category.
func Categories() []Category {
	return []Category{
		Arrays, Trees, Graphs, DynamicProgramming, HashTables, LinkedLists,
		Heaps, StacksQueues, BinarySearch, Matrix, Greedy, BitManipulation,
	}
}

// ParseCategory converts a string into a Category, rejecting unknown values.
func ParseCategory(value string) (Category, error) {
	c := Category(strings.ToUpper(value))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}

// Problem represents a single coding problem being tracked for interview prep.
type Problem struct {
	ID               uuid.UUID     // Unique identifier
	UserID           uuid.UUID     // Owning user
	Number           int           // Problem number from the source site, unique per user
	Title            string        // Problem title
	Difficulty       Difficulty    // EASY / MEDIUM / HARD
	Category         Category      // Technique grouping
	URL              string        // Link to the problem statement
	Blind75          bool          // Whether the problem is part of the Blind 75 list
	Status           ProblemStatus // Practice workflow status
	Attempts         int           // Number of recorded practice sessions
	TimeTakenMinutes int           // Minutes taken on the last own solve, 0 when unknown
	CompletedAt      time.Time     // When the problem was first completed, zero when not completed
	Notes            string        // Free-form user notes
	SolutionApproach string        // Outline of the working approach
	TimeComplexity   string        // e.g. "O(n log n)"
	SpaceComplexity  string        // e.g. "O(1)"
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PracticeSession records a single attempt at a problem.
type PracticeSession struct {
	ID               uuid.UUID // Unique identifier
	UserID           uuid.UUID // Owning user
	ProblemID        uuid.UUID // Problem the session belongs to
	StartedAt        time.Time
	CompletedAt      time.Time
	TimeTakenMinutes int
	SolvedOnOwn      bool // Whether the problem was solved without looking at a solution
	NeededHints      bool
	Notes            string
	CreatedAt        time.Time
}

// ProblemFilter narrows GetProblems results. Zero values mean "no filter".
type ProblemFilter struct {
	Category    Category
	Difficulty  Difficulty
	Status      ProblemStatus
	Blind75Only bool
}

// ProblemUpdate describes a partial update to a problem. Nil fields are left untouched.
type ProblemUpdate struct {
	Status           *ProblemStatus
	Notes            *string
	SolutionApproach *string
	TimeComplexity   *string
	SpaceComplexity  *string
}

// ProblemRepository holds all problem related repository methods.
type ProblemRepository interface {
	// InsertProblem stores a new problem. The problem number must be unique per user.
	InsertProblem(problem *Problem) error

	// GetProblems returns the user's problems matching the filter, ordered by number.
	GetProblems(userID uuid.UUID, filter ProblemFilter) ([]*Problem, error)

	// GetProblem returns a single problem by ID, scoped to the user.
	// It returns an error when no such problem exists.
	GetProblem(userID uuid.UUID, id uuid.UUID) (*Problem, error)

	// UpdateProblem applies a partial update and returns the refreshed problem.
	// Moving the status to COMPLETED stamps CompletedAt.
	UpdateProblem(userID uuid.UUID, id uuid.UUID, update ProblemUpdate) (*Problem, error)

	// RecordPractice stores a practice session and applies its side effects in one
	// transaction: the problem's attempt counter is bumped, and a session solved on
	// one's own marks the problem COMPLETED with the session's time taken.
	RecordPractice(session *PracticeSession) error

	// GetPracticeSessions returns the sessions for a problem, newest first.
	GetPracticeSessions(userID uuid.UUID, problemID uuid.UUID) ([]*PracticeSession, error)
}
