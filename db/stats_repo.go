package db

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

var _ domain.StatsRepository = (*Repository)(nil)

// CountProblems returns the total number of tracked problems for the user.
func (repo *Repository) CountProblems(userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM problem WHERE user_id = ?`

	err := repo.dbConn.Get(&count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("getting problem count: %w", err)
	}
	return count, nil
}

// CountProblemsByStatus returns the number of problems in the given status.
func (repo *Repository) CountProblemsByStatus(userID uuid.UUID, status domain.ProblemStatus) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM problem WHERE user_id = ? AND status = ?`

	err := repo.dbConn.Get(&count, query, userID, string(status))
	if err != nil {
		return 0, fmt.Errorf("getting problem count for status %s: %w", status, err)
	}
	return count, nil
}

// CountProblemsByDifficulty returns the number of problems at the given difficulty.
func (repo *Repository) CountProblemsByDifficulty(userID uuid.UUID, difficulty domain.Difficulty) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM problem WHERE user_id = ? AND difficulty = ?`

	err := repo.dbConn.Get(&count, query, userID, string(difficulty))
	if err != nil {
		return 0, fmt.Errorf("getting problem count for difficulty %s: %w", difficulty, err)
	}
	return count, nil
}

// CountBlind75 returns the number of tracked Blind 75 problems.
func (repo *Repository) CountBlind75(userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM problem WHERE user_id = ? AND blind75 = 1`

	err := repo.dbConn.Get(&count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("getting blind75 count: %w", err)
	}
	return count, nil
}

// CountTopics returns the total number of design topics for the user.
func (repo *Repository) CountTopics(userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM design_topic WHERE user_id = ?`

	err := repo.dbConn.Get(&count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("getting topic count: %w", err)
	}
	return count, nil
}

// CountTopicsByStatus returns the number of design topics in the given status.
func (repo *Repository) CountTopicsByStatus(userID uuid.UUID, status domain.DesignStatus) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM design_topic WHERE user_id = ? AND status = ?`

	err := repo.dbConn.Get(&count, query, userID, string(status))
	if err != nil {
		return 0, fmt.Errorf("getting topic count for status %s: %w", status, err)
	}
	return count, nil
}

// CountStories returns the total number of behavioral stories for the user.
func (repo *Repository) CountStories(userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM story WHERE user_id = ?`

	err := repo.dbConn.Get(&count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("getting story count: %w", err)
	}
	return count, nil
}

// CountReadyStories returns the number of interview-ready stories.
func (repo *Repository) CountReadyStories(userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM story WHERE user_id = ? AND ready = 1`

	err := repo.dbConn.Get(&count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("getting ready story count: %w", err)
	}
	return count, nil
}
