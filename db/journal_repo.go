package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

var _ domain.JournalRepository = (*Repository)(nil)

// journalDateLayout is how calendar days are stored; lexicographic order matches
// chronological order, so ORDER BY works on the raw column.
const journalDateLayout = "2006-01-02"

// dbJournalEntry represents a daily journal entry as stored in the database.
// The entry date is persisted as a YYYY-MM-DD string.
type dbJournalEntry struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	EntryDate       string    `db:"entry_date"`
	ProblemsSolved  int       `db:"problems_solved"`
	StudyHours      int       `db:"study_hours"`
	TopicsCovered   string    `db:"topics_covered"`
	Accomplishments string    `db:"accomplishments"`
	Challenges      string    `db:"challenges"`
	TomorrowPlan    string    `db:"tomorrow_plan"`
	ConfidenceLevel int       `db:"confidence_level"`
	CreatedAt       time.Time `db:"created_at"`
}

// toDomainEntry converts a dbJournalEntry into a domain.JournalEntry.
func toDomainEntry(dbEntry *dbJournalEntry) (*domain.JournalEntry, error) {
	day, err := time.ParseInLocation(journalDateLayout, dbEntry.EntryDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("parsing entry date %q: %w", dbEntry.EntryDate, err)
	}

	return &domain.JournalEntry{
		ID:              dbEntry.ID,
		UserID:          dbEntry.UserID,
		Date:            day,
		ProblemsSolved:  dbEntry.ProblemsSolved,
		StudyHours:      dbEntry.StudyHours,
		TopicsCovered:   dbEntry.TopicsCovered,
		Accomplishments: dbEntry.Accomplishments,
		Challenges:      dbEntry.Challenges,
		TomorrowPlan:    dbEntry.TomorrowPlan,
		ConfidenceLevel: dbEntry.ConfidenceLevel,
		CreatedAt:       dbEntry.CreatedAt,
	}, nil
}

// InsertEntry stores a new domain.JournalEntry. At most one entry may exist per
// user and calendar day; the unique constraint enforces this.
func (repo *Repository) InsertEntry(entry *domain.JournalEntry) error {
	if entry.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating uuid: %w", err)
		}
		entry.ID = id
	}
	entry.CreatedAt = time.Now()

	dbEntry := &dbJournalEntry{
		ID:              entry.ID,
		UserID:          entry.UserID,
		EntryDate:       entry.Date.Format(journalDateLayout),
		ProblemsSolved:  entry.ProblemsSolved,
		StudyHours:      entry.StudyHours,
		TopicsCovered:   entry.TopicsCovered,
		Accomplishments: entry.Accomplishments,
		Challenges:      entry.Challenges,
		TomorrowPlan:    entry.TomorrowPlan,
		ConfidenceLevel: entry.ConfidenceLevel,
		CreatedAt:       entry.CreatedAt,
	}
	query := `INSERT INTO journal_entry(id, user_id, entry_date, problems_solved, study_hours, topics_covered,
	                                    accomplishments, challenges, tomorrow_plan, confidence_level, created_at)
	          VALUES(:id, :user_id, :entry_date, :problems_solved, :study_hours, :topics_covered,
	                 :accomplishments, :challenges, :tomorrow_plan, :confidence_level, :created_at)`
	_, err := repo.dbConn.NamedExec(query, dbEntry)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("journal entry for %s: %w", dbEntry.EntryDate, domain.ErrDuplicate)
		}
		return fmt.Errorf("inserting journal entry for %s: %w", dbEntry.EntryDate, err)
	}
	return nil
}

// GetEntries retrieves the user's journal entries, most recent day first.
func (repo *Repository) GetEntries(userID uuid.UUID) ([]*domain.JournalEntry, error) {
	var dbEntries []*dbJournalEntry
	query := `SELECT * FROM journal_entry WHERE user_id = ? ORDER BY entry_date DESC`

	err := repo.dbConn.Select(&dbEntries, query, userID)
	if err != nil {
		return nil, fmt.Errorf("getting journal entries: %w", err)
	}

	entries := make([]*domain.JournalEntry, len(dbEntries))
	for i, dbEntry := range dbEntries {
		entry, err := toDomainEntry(dbEntry)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}
	return entries, nil
}
