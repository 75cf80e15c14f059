package seed

import (
	"os"
	"testing"

	"go.uber.org/zap"

	"github.com/harsha-k-cheruku/sde-interview-prep/db"
	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

func setupTestRepo(t *testing.T) (*db.Repository, func()) {
	t.Helper()

	tempFile, err := os.CreateTemp(t.TempDir(), "test_*.db")
	if err != nil {
		t.Fatalf("os.CreateTemp() failed: %v", err)
	}
	tempFile.Close()

	dbConn, err := db.New(tempFile.Name())
	if err != nil {
		t.Fatalf("db.New() failed: %v", err)
	}
	repo := db.NewTrackerRepo(dbConn)

	teardown := func() {
		repo.Close()
		os.Remove(tempFile.Name())
	}
	return repo, teardown
}

func TestRun(t *testing.T) {
	t.Run("should seed every section on a fresh database", func(t *testing.T) {
		repo, teardown := setupTestRepo(t)
		defer teardown()

		result, err := Run(repo, zap.NewNop())
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if result.Problems != len(problemCatalog) {
			t.Fatalf("\nwanted:\n%d problems\ngot:\n%d", len(problemCatalog), result.Problems)
		}
		if result.Topics != len(designTopics) {
			t.Fatalf("\nwanted:\n%d topics\ngot:\n%d", len(designTopics), result.Topics)
		}
		if result.Weeks != 12 {
			t.Fatalf("\nwanted:\n12 weeks\ngot:\n%d", result.Weeks)
		}
		// 14 tasks in each of weeks 1 and 2, 35 in week 3.
		if result.Tasks != 63 {
			t.Fatalf("\nwanted:\n63 tasks\ngot:\n%d", result.Tasks)
		}

		user, err := repo.GetUserByEmail(DemoEmail)
		if err != nil {
			t.Fatalf("looking up demo user: %v", err)
		}
		if user.ID != result.UserID {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", result.UserID, user.ID)
		}
	})

	t.Run("should be idempotent", func(t *testing.T) {
		repo, teardown := setupTestRepo(t)
		defer teardown()

		first, err := Run(repo, zap.NewNop())
		if err != nil {
			t.Fatalf("first run failed: %v", err)
		}

		second, err := Run(repo, zap.NewNop())
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if second.Problems != 0 || second.Topics != 0 || second.Weeks != 0 || second.Tasks != 0 {
			t.Fatalf("\nwanted:\nall zero counts\ngot:\n%+v", second)
		}
		if second.UserID != first.UserID {
			t.Fatalf("\nwanted:\nsame user\ngot:\n%v and %v", first.UserID, second.UserID)
		}
	})

	t.Run("should link scheduled tasks to catalog problems", func(t *testing.T) {
		repo, teardown := setupTestRepo(t)
		defer teardown()

		result, err := Run(repo, zap.NewNop())
		if err != nil {
			t.Fatalf("Run() failed: %v", err)
		}

		tasks, err := repo.GetTasks(result.UserID, 3, 1)
		if err != nil {
			t.Fatalf("listing week 3 Monday tasks: %v", err)
		}
		if len(tasks) != 5 {
			t.Fatalf("\nwanted:\n5 tasks\ngot:\n%d", len(tasks))
		}

		problems, err := repo.GetProblems(result.UserID, domain.ProblemFilter{})
		if err != nil {
			t.Fatalf("listing problems: %v", err)
		}
		byID := make(map[string]int)
		for _, problem := range problems {
			byID[problem.ID.String()] = problem.Number
		}
		if byID[tasks[0].ProblemID.String()] != 1 {
			t.Fatalf("\nwanted:\ntask linked to problem 1\ngot:\n%v", tasks[0].ProblemID)
		}
	})
}
