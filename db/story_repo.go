package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

var _ domain.StoryRepository = (*Repository)(nil)

// dbStory represents a behavioral story as stored in the database.
type dbStory struct {
	ID                  uuid.UUID    `db:"id"`
	UserID              uuid.UUID    `db:"user_id"`
	Title               string       `db:"title"`
	Category            string       `db:"category"`
	Situation           string       `db:"situation"`
	Task                string       `db:"task"`
	Action              string       `db:"action"`
	Result              string       `db:"result"`
	CompanyRelevance    string       `db:"company_relevance"`
	LeadershipPrinciple string       `db:"leadership_principle"`
	TimesPracticed      int          `db:"times_practiced"`
	LastPracticed       sql.NullTime `db:"last_practiced"`
	Ready               bool         `db:"ready"`
	Notes               string       `db:"notes"`
	CreatedAt           time.Time    `db:"created_at"`
	UpdatedAt           time.Time    `db:"updated_at"`
}

// fromDomainStory converts a domain.Story into a dbStory.
func fromDomainStory(story *domain.Story) *dbStory {
	return &dbStory{
		ID:                  story.ID,
		UserID:              story.UserID,
		Title:               story.Title,
		Category:            story.Category,
		Situation:           story.Situation,
		Task:                story.Task,
		Action:              story.Action,
		Result:              story.Result,
		CompanyRelevance:    story.CompanyRelevance,
		LeadershipPrinciple: story.LeadershipPrinciple,
		TimesPracticed:      story.TimesPracticed,
		LastPracticed: sql.NullTime{
			Time:  story.LastPracticed,
			Valid: !story.LastPracticed.IsZero(),
		},
		Ready:     story.Ready,
		Notes:     story.Notes,
		CreatedAt: story.CreatedAt,
		UpdatedAt: story.UpdatedAt,
	}
}

// toDomainStory converts a dbStory into a domain.Story.
func toDomainStory(dbStory *dbStory) *domain.Story {
	story := &domain.Story{
		ID:                  dbStory.ID,
		UserID:              dbStory.UserID,
		Title:               dbStory.Title,
		Category:            dbStory.Category,
		Situation:           dbStory.Situation,
		Task:                dbStory.Task,
		Action:              dbStory.Action,
		Result:              dbStory.Result,
		CompanyRelevance:    dbStory.CompanyRelevance,
		LeadershipPrinciple: dbStory.LeadershipPrinciple,
		TimesPracticed:      dbStory.TimesPracticed,
		Ready:               dbStory.Ready,
		Notes:               dbStory.Notes,
		CreatedAt:           dbStory.CreatedAt,
		UpdatedAt:           dbStory.UpdatedAt,
	}

	if dbStory.LastPracticed.Valid {
		story.LastPracticed = dbStory.LastPracticed.Time
	}
	return story
}

// InsertStory stores a new domain.Story in the database.
func (repo *Repository) InsertStory(story *domain.Story) error {
	if story.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating uuid: %w", err)
		}
		story.ID = id
	}
	now := time.Now()
	story.CreatedAt = now
	story.UpdatedAt = now

	dbStory := fromDomainStory(story)
	query := `INSERT INTO story(id, user_id, title, category, situation, task, action, result,
	                            company_relevance, leadership_principle, times_practiced, last_practiced,
	                            ready, notes, created_at, updated_at)
	          VALUES(:id, :user_id, :title, :category, :situation, :task, :action, :result,
	                 :company_relevance, :leadership_principle, :times_practiced, :last_practiced,
	                 :ready, :notes, :created_at, :updated_at)`
	_, err := repo.dbConn.NamedExec(query, dbStory)
	if err != nil {
		return fmt.Errorf("inserting story %s: %w", story.Title, err)
	}
	return nil
}

// GetStories retrieves the user's stories, newest first.
func (repo *Repository) GetStories(userID uuid.UUID) ([]*domain.Story, error) {
	var dbStories []*dbStory
	query := `SELECT * FROM story WHERE user_id = ? ORDER BY created_at DESC`

	err := repo.dbConn.Select(&dbStories, query, userID)
	if err != nil {
		return nil, fmt.Errorf("getting stories: %w", err)
	}

	stories := make([]*domain.Story, len(dbStories))
	for i, s := range dbStories {
		stories[i] = toDomainStory(s)
	}
	return stories, nil
}

// GetStory retrieves a single story by ID, scoped to the user.
func (repo *Repository) GetStory(userID uuid.UUID, id uuid.UUID) (*domain.Story, error) {
	var dbStory dbStory
	query := `SELECT * FROM story WHERE user_id = ? AND id = ?`

	err := repo.dbConn.Get(&dbStory, query, userID, id)
	if err != nil {
		return nil, fmt.Errorf("getting story %s: %w", id, err)
	}
	return toDomainStory(&dbStory), nil
}

// UpdateStory applies a partial update to a story and returns the refreshed row.
// Setting the practice count also stamps the last practiced timestamp.
func (repo *Repository) UpdateStory(userID uuid.UUID, id uuid.UUID, update domain.StoryUpdate) (*domain.Story, error) {
	story, err := repo.GetStory(userID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if update.Title != nil {
		story.Title = *update.Title
	}
	if update.Category != nil {
		story.Category = *update.Category
	}
	if update.Situation != nil {
		story.Situation = *update.Situation
	}
	if update.Task != nil {
		story.Task = *update.Task
	}
	if update.Action != nil {
		story.Action = *update.Action
	}
	if update.Result != nil {
		story.Result = *update.Result
	}
	if update.CompanyRelevance != nil {
		story.CompanyRelevance = *update.CompanyRelevance
	}
	if update.LeadershipPrinciple != nil {
		story.LeadershipPrinciple = *update.LeadershipPrinciple
	}
	if update.Notes != nil {
		story.Notes = *update.Notes
	}
	if update.TimesPracticed != nil {
		story.TimesPracticed = *update.TimesPracticed
		story.LastPracticed = now
	}
	if update.Ready != nil {
		story.Ready = *update.Ready
	}
	story.UpdatedAt = now

	dbStory := fromDomainStory(story)
	query := `UPDATE story
	          SET title = :title, category = :category, situation = :situation, task = :task,
	              action = :action, result = :result, company_relevance = :company_relevance,
	              leadership_principle = :leadership_principle, times_practiced = :times_practiced,
	              last_practiced = :last_practiced, ready = :ready, notes = :notes, updated_at = :updated_at
	          WHERE id = :id AND user_id = :user_id`
	_, err = repo.dbConn.NamedExec(query, dbStory)
	if err != nil {
		return nil, fmt.Errorf("updating story %s: %w", id, err)
	}
	return story, nil
}
