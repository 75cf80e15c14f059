package db

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()

	tempFile, err := os.CreateTemp(t.TempDir(), "test_*.db")
	if err != nil {
		t.Fatalf("os.CreateTemp() failed: %v", err)
	}
	tempFile.Close()

	dbConn, err := New(tempFile.Name())
	if err != nil {
		t.Fatalf("db.New() failed: %v", err)
	}

	repo := NewTrackerRepo(dbConn)

	teardown := func() {
		repo.Close()
		os.Remove(tempFile.Name())
	}

	return repo, teardown
}

func testUser(t *testing.T, repo *Repository) uuid.UUID {
	t.Helper()

	user := &domain.User{
		FirstName: "Demo",
		LastName:  "User",
		Email:     "demo@example.com",
	}
	if err := repo.InsertUser(user); err != nil {
		t.Fatalf("inserting user: %v", err)
	}
	return user.ID
}

func testProblem(t *testing.T, repo *Repository, userID uuid.UUID, number int, difficulty domain.Difficulty, category domain.Category, blind75 bool) uuid.UUID {
	t.Helper()

	problem := &domain.Problem{
		UserID:     userID,
		Number:     number,
		Title:      "Test Problem",
		Difficulty: difficulty,
		Category:   category,
		URL:        "https://leetcode.com/problems/two-sum/",
		Blind75:    blind75,
		Status:     domain.ProblemNotStarted,
	}
	if err := repo.InsertProblem(problem); err != nil {
		t.Fatalf("inserting problem %d: %v", number, err)
	}
	return problem.ID
}

func testWeek(t *testing.T, repo *Repository, userID uuid.UUID, number int) uuid.UUID {
	t.Helper()

	week := &domain.WeekPlan{
		UserID:      userID,
		WeekNumber:  number,
		Title:       "Test Week",
		Description: "Test description",
		Goals:       []string{"goal one", "goal two"},
	}
	if err := repo.InsertWeek(week); err != nil {
		t.Fatalf("inserting week %d: %v", number, err)
	}
	return week.ID
}

func testEntry(t *testing.T, repo *Repository, userID uuid.UUID, day time.Time, hours int) {
	t.Helper()

	entry := &domain.JournalEntry{
		UserID:     userID,
		Date:       day,
		StudyHours: hours,
	}
	if err := repo.InsertEntry(entry); err != nil {
		t.Fatalf("inserting journal entry: %v", err)
	}
}
