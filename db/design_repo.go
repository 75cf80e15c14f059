package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

var _ domain.DesignRepository = (*Repository)(nil)

// dbDesignTopic represents a system design topic as stored in the database.
type dbDesignTopic struct {
	ID             uuid.UUID    `db:"id"`
	UserID         uuid.UUID    `db:"user_id"`
	Title          string       `db:"title"`
	Description    string       `db:"description"`
	Status         string       `db:"status"`
	PracticeCount  int          `db:"practice_count"`
	LastPracticed  sql.NullTime `db:"last_practiced"`
	Notes          string       `db:"notes"`
	KeyConcepts    string       `db:"key_concepts"`
	CommonPatterns string       `db:"common_patterns"`
	Resources      StringList   `db:"resources"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`
}

// fromDomainTopic converts a domain.DesignTopic into a dbDesignTopic.
func fromDomainTopic(topic *domain.DesignTopic) *dbDesignTopic {
	return &dbDesignTopic{
		ID:            topic.ID,
		UserID:        topic.UserID,
		Title:         topic.Title,
		Description:   topic.Description,
		Status:        string(topic.Status),
		PracticeCount: topic.PracticeCount,
		LastPracticed: sql.NullTime{
			Time:  topic.LastPracticed,
			Valid: !topic.LastPracticed.IsZero(),
		},
		Notes:          topic.Notes,
		KeyConcepts:    topic.KeyConcepts,
		CommonPatterns: topic.CommonPatterns,
		Resources:      StringList(topic.Resources),
		CreatedAt:      topic.CreatedAt,
		UpdatedAt:      topic.UpdatedAt,
	}
}

// toDomainTopic converts a dbDesignTopic into a domain.DesignTopic.
func toDomainTopic(dbTopic *dbDesignTopic) *domain.DesignTopic {
	topic := &domain.DesignTopic{
		ID:             dbTopic.ID,
		UserID:         dbTopic.UserID,
		Title:          dbTopic.Title,
		Description:    dbTopic.Description,
		Status:         domain.DesignStatus(dbTopic.Status),
		PracticeCount:  dbTopic.PracticeCount,
		Notes:          dbTopic.Notes,
		KeyConcepts:    dbTopic.KeyConcepts,
		CommonPatterns: dbTopic.CommonPatterns,
		Resources:      []string(dbTopic.Resources),
		CreatedAt:      dbTopic.CreatedAt,
		UpdatedAt:      dbTopic.UpdatedAt,
	}

	if dbTopic.LastPracticed.Valid {
		topic.LastPracticed = dbTopic.LastPracticed.Time
	}
	return topic
}

// InsertTopic stores a new domain.DesignTopic in the database.
func (repo *Repository) InsertTopic(topic *domain.DesignTopic) error {
	if topic.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating uuid: %w", err)
		}
		topic.ID = id
	}
	now := time.Now()
	topic.CreatedAt = now
	topic.UpdatedAt = now

	dbTopic := fromDomainTopic(topic)
	query := `INSERT INTO design_topic(id, user_id, title, description, status, practice_count, last_practiced,
	                                   notes, key_concepts, common_patterns, resources, created_at, updated_at)
	          VALUES(:id, :user_id, :title, :description, :status, :practice_count, :last_practiced,
	                 :notes, :key_concepts, :common_patterns, :resources, :created_at, :updated_at)`
	_, err := repo.dbConn.NamedExec(query, dbTopic)
	if err != nil {
		return fmt.Errorf("inserting design topic %s: %w", topic.Title, err)
	}
	return nil
}

// GetTopics retrieves the user's design topics ordered by title.
func (repo *Repository) GetTopics(userID uuid.UUID) ([]*domain.DesignTopic, error) {
	var dbTopics []*dbDesignTopic
	query := `SELECT * FROM design_topic WHERE user_id = ? ORDER BY title`

	err := repo.dbConn.Select(&dbTopics, query, userID)
	if err != nil {
		return nil, fmt.Errorf("getting design topics: %w", err)
	}

	topics := make([]*domain.DesignTopic, len(dbTopics))
	for i, dbTopic := range dbTopics {
		topics[i] = toDomainTopic(dbTopic)
	}
	return topics, nil
}

// GetTopic retrieves a single design topic by ID, scoped to the user.
func (repo *Repository) GetTopic(userID uuid.UUID, id uuid.UUID) (*domain.DesignTopic, error) {
	var dbTopic dbDesignTopic
	query := `SELECT * FROM design_topic WHERE user_id = ? AND id = ?`

	err := repo.dbConn.Get(&dbTopic, query, userID, id)
	if err != nil {
		return nil, fmt.Errorf("getting design topic %s: %w", id, err)
	}
	return toDomainTopic(&dbTopic), nil
}

// UpdateTopic applies a partial update to a design topic and returns the refreshed row.
// Setting the practice count also stamps the last practiced timestamp.
func (repo *Repository) UpdateTopic(userID uuid.UUID, id uuid.UUID, update domain.TopicUpdate) (*domain.DesignTopic, error) {
	topic, err := repo.GetTopic(userID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if update.Status != nil {
		topic.Status = *update.Status
	}
	if update.Notes != nil {
		topic.Notes = *update.Notes
	}
	if update.KeyConcepts != nil {
		topic.KeyConcepts = *update.KeyConcepts
	}
	if update.CommonPatterns != nil {
		topic.CommonPatterns = *update.CommonPatterns
	}
	if update.PracticeCount != nil {
		topic.PracticeCount = *update.PracticeCount
		topic.LastPracticed = now
	}
	topic.UpdatedAt = now

	dbTopic := fromDomainTopic(topic)
	query := `UPDATE design_topic
	          SET status = :status, practice_count = :practice_count, last_practiced = :last_practiced,
	              notes = :notes, key_concepts = :key_concepts, common_patterns = :common_patterns,
	              updated_at = :updated_at
	          WHERE id = :id AND user_id = :user_id`
	_, err = repo.dbConn.NamedExec(query, dbTopic)
	if err != nil {
		return nil, fmt.Errorf("updating design topic %s: %w", id, err)
	}
	return topic, nil
}
