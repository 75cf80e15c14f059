package db

import (
	"testing"

	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

func TestStatsRepo_ProblemCounts(t *testing.T) {
	repo, teardown := setupTestDB(t)
	defer teardown()
	userID := testUser(t, repo)

	easyID := testProblem(t, repo, userID, 1, domain.Easy, domain.Arrays, true)
	testProblem(t, repo, userID, 2, domain.Medium, domain.Trees, true)
	testProblem(t, repo, userID, 3, domain.Hard, domain.Graphs, false)

	completed := domain.ProblemCompleted
	if _, err := repo.UpdateProblem(userID, easyID, domain.ProblemUpdate{Status: &completed}); err != nil {
		t.Fatalf("updating problem: %v", err)
	}

	t.Run("should count total problems", func(t *testing.T) {
		got, err := repo.CountProblems(userID)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if got != 3 {
			t.Fatalf("\nwanted:\n3\ngot:\n%d", got)
		}
	})

	t.Run("should count by status", func(t *testing.T) {
		got, err := repo.CountProblemsByStatus(userID, domain.ProblemCompleted)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if got != 1 {
			t.Fatalf("\nwanted:\n1\ngot:\n%d", got)
		}
	})

	t.Run("should count by difficulty", func(t *testing.T) {
		got, err := repo.CountProblemsByDifficulty(userID, domain.Medium)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if got != 1 {
			t.Fatalf("\nwanted:\n1\ngot:\n%d", got)
		}
	})

	t.Run("should count blind 75 problems", func(t *testing.T) {
		got, err := repo.CountBlind75(userID)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if got != 2 {
			t.Fatalf("\nwanted:\n2\ngot:\n%d", got)
		}
	})
}

func TestStatsRepo_TopicAndStoryCounts(t *testing.T) {
	repo, teardown := setupTestDB(t)
	defer teardown()
	userID := testUser(t, repo)

	topics := []*domain.DesignTopic{
		{UserID: userID, Title: "Load Balancing", Status: domain.DesignConfident},
		{UserID: userID, Title: "Caching", Status: domain.DesignNotStarted},
	}
	for _, topic := range topics {
		if err := repo.InsertTopic(topic); err != nil {
			t.Fatalf("inserting topic: %v", err)
		}
	}

	stories := []*domain.Story{
		{UserID: userID, Title: "Ready story", Category: "Leadership", Ready: true},
		{UserID: userID, Title: "Draft story", Category: "Conflict"},
	}
	for _, story := range stories {
		if err := repo.InsertStory(story); err != nil {
			t.Fatalf("inserting story: %v", err)
		}
	}

	t.Run("should count topics", func(t *testing.T) {
		total, err := repo.CountTopics(userID)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if total != 2 {
			t.Fatalf("\nwanted:\n2\ngot:\n%d", total)
		}

		confident, err := repo.CountTopicsByStatus(userID, domain.DesignConfident)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if confident != 1 {
			t.Fatalf("\nwanted:\n1\ngot:\n%d", confident)
		}
	})

	t.Run("should count stories", func(t *testing.T) {
		total, err := repo.CountStories(userID)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if total != 2 {
			t.Fatalf("\nwanted:\n2\ngot:\n%d", total)
		}

		ready, err := repo.CountReadyStories(userID)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if ready != 1 {
			t.Fatalf("\nwanted:\n1\ngot:\n%d", ready)
		}
	})
}
