package db

import (
	"testing"

	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

func TestStoryRepo_Stories(t *testing.T) {
	t.Run("should round-trip a story", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()
		userID := testUser(t, repo)

		story := &domain.Story{
			UserID:              userID,
			Title:               "Shipping under a deadline",
			Category:            "Ownership",
			Situation:           "Release was slipping",
			Task:                "Get the launch back on track",
			Action:              "Cut scope and parallelized the work",
			Result:              "Shipped a week early",
			LeadershipPrinciple: "Deliver Results",
		}
		if err := repo.InsertStory(story); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		got, err := repo.GetStory(userID, story.ID)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if got.Title != story.Title || got.Result != story.Result {
			t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", story, got)
		}
		if got.Ready {
			t.Fatalf("\nwanted:\nnot ready\ngot:\nready")
		}
	})
}

func TestStoryRepo_UpdateStory(t *testing.T) {
	t.Run("should mark a story ready and stamp practice time", func(t *testing.T) {
		repo, teardown := setupTestDB(t)
		defer teardown()
		userID := testUser(t, repo)

		story := &domain.Story{UserID: userID, Title: "Conflict story", Category: "Conflict"}
		if err := repo.InsertStory(story); err != nil {
			t.Fatalf("inserting story: %v", err)
		}

		ready := true
		practiced := 2
		got, err := repo.UpdateStory(userID, story.ID, domain.StoryUpdate{Ready: &ready, TimesPracticed: &practiced})
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if !got.Ready {
			t.Fatalf("\nwanted:\nready\ngot:\nnot ready")
		}
		if got.TimesPracticed != 2 || got.LastPracticed.IsZero() {
			t.Fatalf("\nwanted:\n2 practices with timestamp\ngot:\n%d, %v", got.TimesPracticed, got.LastPracticed)
		}
	})
}
