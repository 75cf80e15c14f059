package analytics

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/harsha-k-cheruku/sde-interview-prep/db"
	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

func setupTestRepo(t *testing.T) (*db.Repository, uuid.UUID, func()) {
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

	user := &domain.User{FirstName: "Demo", LastName: "User", Email: "demo@example.com"}
	if err := repo.InsertUser(user); err != nil {
		t.Fatalf("inserting user: %v", err)
	}

	teardown := func() {
		repo.Close()
		os.Remove(tempFile.Name())
	}
	return repo, user.ID, teardown
}

func day(yearDay int) time.Time {
	return time.Date(2025, time.March, yearDay, 0, 0, 0, 0, time.Local)
}

func TestStreak(t *testing.T) {
	now := time.Date(2025, time.March, 20, 15, 30, 0, 0, time.Local)

	entries := func(days ...int) []*domain.JournalEntry {
		var result []*domain.JournalEntry
		for _, d := range days {
			result = append(result, &domain.JournalEntry{Date: day(d)})
		}
		return result
	}

	tests := []struct {
		name    string
		entries []*domain.JournalEntry
		want    int
	}{
		{"no entries", nil, 0},
		{"entry today only", entries(20), 1},
		{"run ending today", entries(18, 19, 20), 3},
		{"run ending yesterday does not count", entries(18, 19), 0},
		{"run must reach today", entries(16, 17, 19), 0},
		{"gap inside the run stops the count", entries(16, 17, 19, 20), 2},
		{"old entries do not count", entries(1, 2, 3), 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Streak(test.entries, now); got != test.want {
				t.Fatalf("\nwanted:\n%d\ngot:\n%d", test.want, got)
			}
		})
	}
}

func TestStudyHourSeries(t *testing.T) {
	now := time.Date(2025, time.March, 20, 9, 0, 0, 0, time.Local)

	entries := []*domain.JournalEntry{
		{Date: day(20), StudyHours: 2},
		{Date: day(18), StudyHours: 4},
		{Date: day(1), StudyHours: 8}, // outside the window
	}

	series := StudyHourSeries(entries, now, 14)

	if len(series) != 14 {
		t.Fatalf("\nwanted:\n14 days\ngot:\n%d", len(series))
	}
	if !series[0].Date.Equal(day(7)) || !series[13].Date.Equal(day(20)) {
		t.Fatalf("\nwanted:\nMar 7 through Mar 20\ngot:\n%v through %v", series[0].Date, series[13].Date)
	}
	if series[13].Hours != 2 || series[11].Hours != 4 {
		t.Fatalf("\nwanted:\n2 hours today, 4 two days ago\ngot:\n%d, %d", series[13].Hours, series[11].Hours)
	}
	if series[0].Hours != 0 {
		t.Fatalf("\nwanted:\nzero-filled missing days\ngot:\n%d", series[0].Hours)
	}
	if series[13].Label != "Mar 20" {
		t.Fatalf("\nwanted:\nMar 20\ngot:\n%s", series[13].Label)
	}
}

func TestService_Snapshot(t *testing.T) {
	repo, userID, teardown := setupTestRepo(t)
	defer teardown()

	problems := []*domain.Problem{
		{UserID: userID, Number: 1, Title: "Two Sum", Difficulty: domain.Easy, Category: domain.Arrays, Blind75: true, Status: domain.ProblemNotStarted},
		{UserID: userID, Number: 2, Title: "Add Two Numbers", Difficulty: domain.Medium, Category: domain.LinkedLists, Status: domain.ProblemNotStarted},
		{UserID: userID, Number: 23, Title: "Merge k Sorted Lists", Difficulty: domain.Hard, Category: domain.Heaps, Blind75: true, Status: domain.ProblemNotStarted},
	}
	for _, problem := range problems {
		if err := repo.InsertProblem(problem); err != nil {
			t.Fatalf("inserting problem: %v", err)
		}
	}
	completed := domain.ProblemCompleted
	if _, err := repo.UpdateProblem(userID, problems[0].ID, domain.ProblemUpdate{Status: &completed}); err != nil {
		t.Fatalf("updating problem: %v", err)
	}

	if err := repo.InsertTopic(&domain.DesignTopic{UserID: userID, Title: "Caching", Status: domain.DesignConfident}); err != nil {
		t.Fatalf("inserting topic: %v", err)
	}
	if err := repo.InsertStory(&domain.Story{UserID: userID, Title: "Ready story", Category: "Leadership", Ready: true}); err != nil {
		t.Fatalf("inserting story: %v", err)
	}

	weekOne := &domain.WeekPlan{UserID: userID, WeekNumber: 1, Title: "Arrays", Completed: true, CompletionPercentage: 100}
	weekTwo := &domain.WeekPlan{UserID: userID, WeekNumber: 2, Title: "Trees"}
	for _, week := range []*domain.WeekPlan{weekOne, weekTwo} {
		if err := repo.InsertWeek(week); err != nil {
			t.Fatalf("inserting week: %v", err)
		}
	}

	now := time.Now()
	for offset := 0; offset < 3; offset++ {
		entry := &domain.JournalEntry{UserID: userID, Date: now.AddDate(0, 0, -offset), StudyHours: 2}
		if err := repo.InsertEntry(entry); err != nil {
			t.Fatalf("inserting journal entry: %v", err)
		}
	}

	snapshot, err := NewService(repo).Snapshot(userID, now)
	if err != nil {
		t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
	}

	t.Run("should report problem progress", func(t *testing.T) {
		want := TrackProgress{Total: 3, Done: 1, Percent: 33.3}
		if snapshot.Problems != want {
			t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", want, snapshot.Problems)
		}
	})

	t.Run("should report blind 75 progress", func(t *testing.T) {
		want := TrackProgress{Total: 2, Done: 1, Percent: 50}
		if snapshot.Blind75 != want {
			t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", want, snapshot.Blind75)
		}
	})

	t.Run("should report the difficulty histogram", func(t *testing.T) {
		want := DifficultyBreakdown{Easy: 1, Medium: 1, Hard: 1}
		if snapshot.Difficulty != want {
			t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", want, snapshot.Difficulty)
		}
	})

	t.Run("should report design and behavioral tracks", func(t *testing.T) {
		if snapshot.Design.Done != 1 || snapshot.Design.Percent != 100 {
			t.Fatalf("\nwanted:\n1 confident of 1\ngot:\n%+v", snapshot.Design)
		}
		if snapshot.Behavioral.Done != 1 || snapshot.Behavioral.Total != 1 {
			t.Fatalf("\nwanted:\n1 ready of 1\ngot:\n%+v", snapshot.Behavioral)
		}
	})

	t.Run("should find the current week", func(t *testing.T) {
		if snapshot.CurrentWeek != 2 {
			t.Fatalf("\nwanted:\n2\ngot:\n%d", snapshot.CurrentWeek)
		}
		if len(snapshot.Weeks) != 2 || !snapshot.Weeks[0].Completed {
			t.Fatalf("\nwanted:\n2 weeks, first completed\ngot:\n%+v", snapshot.Weeks)
		}
	})

	t.Run("should report streak and study hours", func(t *testing.T) {
		if snapshot.Streak != 3 {
			t.Fatalf("\nwanted:\n3\ngot:\n%d", snapshot.Streak)
		}
		if len(snapshot.StudyHours) != 14 {
			t.Fatalf("\nwanted:\n14 days\ngot:\n%d", len(snapshot.StudyHours))
		}
		today := snapshot.StudyHours[13]
		if today.Hours != 2 {
			t.Fatalf("\nwanted:\n2 hours today\ngot:\n%d", today.Hours)
		}
	})
}
