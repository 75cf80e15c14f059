package db

import (
	"testing"

	"github.com/google/uuid"

	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

func TestProblemRepo_GetProblems(t *testing.T) {
	t.Run("should return 0 problems on an empty database", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()
		userID := testUser(t, repo)

		got, err := repo.GetProblems(userID, domain.ProblemFilter{})
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if len(got) != 0 {
			t.Fatalf("\nwanted:\n0\ngot:\n%d", len(got))
		}
	})
	t.Run("should return problems ordered by number", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()
		userID := testUser(t, repo)

		testProblem(t, repo, userID, 121, domain.Easy, domain.Arrays, true)
		testProblem(t, repo, userID, 1, domain.Easy, domain.Arrays, true)

		got, err := repo.GetProblems(userID, domain.ProblemFilter{})
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if len(got) != 2 {
			t.Fatalf("\nwanted:\n2\ngot:\n%d", len(got))
		}
		if got[0].Number != 1 || got[1].Number != 121 {
			t.Fatalf("\nwanted:\nnumbers [1 121]\ngot:\n[%d %d]", got[0].Number, got[1].Number)
		}
	})
	t.Run("should apply the filter", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()
		userID := testUser(t, repo)

		testProblem(t, repo, userID, 1, domain.Easy, domain.Arrays, true)
		testProblem(t, repo, userID, 76, domain.Hard, domain.Arrays, true)
		testProblem(t, repo, userID, 200, domain.Medium, domain.Graphs, false)

		got, err := repo.GetProblems(userID, domain.ProblemFilter{Category: domain.Arrays, Difficulty: domain.Hard})
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if len(got) != 1 || got[0].Number != 76 {
			t.Fatalf("\nwanted:\n1 problem, number 76\ngot:\n%d problems", len(got))
		}

		got, err = repo.GetProblems(userID, domain.ProblemFilter{Blind75Only: true})
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if len(got) != 2 {
			t.Fatalf("\nwanted:\n2 blind75 problems\ngot:\n%d", len(got))
		}
	})
}

func TestProblemRepo_InsertProblem(t *testing.T) {
	t.Run("should reject a duplicate problem number for the same user", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()
		userID := testUser(t, repo)

		testProblem(t, repo, userID, 1, domain.Easy, domain.Arrays, true)

		dup := &domain.Problem{
			UserID:     userID,
			Number:     1,
			Title:      "Duplicate",
			Difficulty: domain.Easy,
			Category:   domain.Arrays,
			URL:        "https://leetcode.com/problems/two-sum/",
			Status:     domain.ProblemNotStarted,
		}
		if err := repo.InsertProblem(dup); err == nil {
			t.Fatalf("\nwanted:\nunique constraint error\ngot:\nnil")
		}
	})
}

func TestProblemRepo_UpdateProblem(t *testing.T) {
	t.Run("should stamp completed_at when moving to COMPLETED", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()
		userID := testUser(t, repo)
		problemID := testProblem(t, repo, userID, 1, domain.Easy, domain.Arrays, true)

		status := domain.ProblemCompleted
		notes := "solved with a hash map"
		got, err := repo.UpdateProblem(userID, problemID, domain.ProblemUpdate{Status: &status, Notes: &notes})
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if got.Status != domain.ProblemCompleted {
			t.Fatalf("\nwanted:\nCOMPLETED\ngot:\n%s", got.Status)
		}
		if got.CompletedAt.IsZero() {
			t.Fatalf("\nwanted:\nnon-zero completed_at\ngot:\nzero")
		}
		if got.Notes != notes {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", notes, got.Notes)
		}
	})
	t.Run("should error for an unknown problem", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()
		userID := testUser(t, repo)

		status := domain.ProblemCompleted
		_, err := repo.UpdateProblem(userID, uuid.New(), domain.ProblemUpdate{Status: &status})
		if err == nil {
			t.Fatalf("\nwanted:\nerror\ngot:\nnil")
		}
	})
}

func TestProblemRepo_RecordPractice(t *testing.T) {
	t.Run("should bump attempts and complete the problem when solved on own", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()
		userID := testUser(t, repo)
		problemID := testProblem(t, repo, userID, 1, domain.Easy, domain.Arrays, true)

		session := &domain.PracticeSession{
			UserID:           userID,
			ProblemID:        problemID,
			TimeTakenMinutes: 25,
			SolvedOnOwn:      true,
		}
		if err := repo.RecordPractice(session); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		problem, err := repo.GetProblem(userID, problemID)
		if err != nil {
			t.Fatalf("getting problem: %v", err)
		}
		if problem.Attempts != 1 {
			t.Fatalf("\nwanted:\n1 attempt\ngot:\n%d", problem.Attempts)
		}
		if problem.Status != domain.ProblemCompleted {
			t.Fatalf("\nwanted:\nCOMPLETED\ngot:\n%s", problem.Status)
		}
		if problem.TimeTakenMinutes != 25 {
			t.Fatalf("\nwanted:\n25 minutes\ngot:\n%d", problem.TimeTakenMinutes)
		}

		sessions, err := repo.GetPracticeSessions(userID, problemID)
		if err != nil {
			t.Fatalf("getting sessions: %v", err)
		}
		if len(sessions) != 1 {
			t.Fatalf("\nwanted:\n1 session\ngot:\n%d", len(sessions))
		}
	})
	t.Run("should not complete the problem when hints were needed", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()
		userID := testUser(t, repo)
		problemID := testProblem(t, repo, userID, 1, domain.Easy, domain.Arrays, true)

		session := &domain.PracticeSession{
			UserID:      userID,
			ProblemID:   problemID,
			NeededHints: true,
		}
		if err := repo.RecordPractice(session); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		problem, err := repo.GetProblem(userID, problemID)
		if err != nil {
			t.Fatalf("getting problem: %v", err)
		}
		if problem.Status != domain.ProblemNotStarted {
			t.Fatalf("\nwanted:\nNOT_STARTED\ngot:\n%s", problem.Status)
		}
		if problem.Attempts != 1 {
			t.Fatalf("\nwanted:\n1 attempt\ngot:\n%d", problem.Attempts)
		}
	})
	t.Run("should error for an unknown problem and insert nothing", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()
		userID := testUser(t, repo)

		session := &domain.PracticeSession{
			UserID:    userID,
			ProblemID: uuid.New(),
		}
		if err := repo.RecordPractice(session); err == nil {
			t.Fatalf("\nwanted:\nerror\ngot:\nnil")
		}
	})
}
