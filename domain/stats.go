package domain

import "github.com/google/uuid"

// StatsRepository defines the interface for retrieving aggregate counts used by
// the dashboard. It keeps the counting in SQL rather than loading full rows.
type StatsRepository interface {
	// CountProblems returns the total number of tracked problems for the user.
	CountProblems(userID uuid.UUID) (int, error)
	// CountProblemsByStatus returns the number of problems in the given status.
	CountProblemsByStatus(userID uuid.UUID, status ProblemStatus) (int, error)
	// CountProblemsByDifficulty returns the number of problems at the given difficulty.
	CountProblemsByDifficulty(userID uuid.UUID, difficulty Difficulty) (int, error)
	// CountBlind75 returns the number of tracked Blind 75 problems.
	CountBlind75(userID uuid.UUID) (int, error)
	// CountTopics returns the total number of design topics for the user.
	CountTopics(userID uuid.UUID) (int, error)
	// CountTopicsByStatus returns the number of design topics in the given status.
	CountTopicsByStatus(userID uuid.UUID, status DesignStatus) (int, error)
	// CountStories returns the total number of behavioral stories for the user.
	CountStories(userID uuid.UUID) (int, error)
	// CountReadyStories returns the number of interview-ready stories.
	CountReadyStories(userID uuid.UUID) (int, error)
}
