package domain

import (
	"time"

	"github.com/google/uuid"
)

// WeekPlan represents one week of the 12-week prep curriculum.
type WeekPlan struct {
	ID                   uuid.UUID // Unique identifier
	UserID               uuid.UUID // Owning user
	WeekNumber           int       // 1-12, unique per user
	Title                string    // e.g. "Arrays, Strings, Hash Tables"
	Description          string
	Goals                []string // Week-level goals
	Completed            bool
	CompletionPercentage float64 // 0-100, maintained by the user
	Notes                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// DailyTask represents a single scheduled task inside a week of the curriculum.
type DailyTask struct {
	ID               uuid.UUID // Unique identifier
	UserID           uuid.UUID // Owning user
	WeekPlanID       uuid.UUID // Week the task belongs to
	WeekNumber       int
	DayNumber        int    // 1-7
	DayName          string // "Monday" .. "Sunday"
	TaskOrder        int    // Ordering within the day
	Title            string
	Description      string
	TaskType         string // LEETCODE, BEHAVIORAL, REVIEW, PREPARATION, NETWORKING
	EstimatedMinutes int
	Completed        bool
	CompletedAt      time.Time // Zero when not completed
	ActualMinutes    int
	ProblemID        uuid.UUID // Optional linked problem, uuid.Nil when absent
	TopicID          uuid.UUID // Optional linked design topic, uuid.Nil when absent
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// WeekUpdate describes a partial update to a week plan. Nil fields are left untouched.
type WeekUpdate struct {
	Completed            *bool
	CompletionPercentage *float64
	Notes                *string
}

// TaskUpdate describes a partial update to a daily task. Nil fields are left untouched.
type TaskUpdate struct {
	// Completed, when set to true, stamps CompletedAt; when set to false, clears it.
	Completed     *bool
	Notes         *string
	ActualMinutes *int
}

// PlanRepository holds all curriculum repository methods for week plans and daily tasks.
type PlanRepository interface {
	// InsertWeek stores a new week plan. The week number must be unique per user.
	InsertWeek(week *WeekPlan) error

	// GetWeeks returns the user's week plans ordered by week number.
	GetWeeks(userID uuid.UUID) ([]*WeekPlan, error)

	// UpdateWeek applies a partial update and returns the refreshed week plan.
	UpdateWeek(userID uuid.UUID, id uuid.UUID, update WeekUpdate) (*WeekPlan, error)

	// InsertTask stores a new daily task.
	InsertTask(task *DailyTask) error

	// GetTasks returns the user's tasks for a week, ordered by day then task order.
	// A day of 0 returns the whole week.
	GetTasks(userID uuid.UUID, weekNumber int, dayNumber int) ([]*DailyTask, error)

	// GetTask returns a single task by ID, scoped to the user.
	GetTask(userID uuid.UUID, id uuid.UUID) (*DailyTask, error)

	// UpdateTask applies a partial update and returns the refreshed task.
	UpdateTask(userID uuid.UUID, id uuid.UUID, update TaskUpdate) (*DailyTask, error)
}
