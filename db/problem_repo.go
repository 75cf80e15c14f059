package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

var _ domain.ProblemRepository = (*Repository)(nil)

// dbProblem represents a problem as stored in the database. It differs from
// domain.Problem by using sql.Null* types for fields that might be absent,
// such as the completion timestamp of a problem that was never completed.
type dbProblem struct {
	ID               uuid.UUID    `db:"id"`
	UserID           uuid.UUID    `db:"user_id"`
	Number           int          `db:"number"`
	Title            string       `db:"title"`
	Difficulty       string       `db:"difficulty"`
	Category         string       `db:"category"`
	URL              string       `db:"url"`
	Blind75          bool         `db:"blind75"`
	Status           string       `db:"status"`
	Attempts         int          `db:"attempts"`
	TimeTakenMinutes int          `db:"time_taken_minutes"`
	CompletedAt      sql.NullTime `db:"completed_at"`
	Notes            string       `db:"notes"`
	SolutionApproach string       `db:"solution_approach"`
	TimeComplexity   string       `db:"time_complexity"`
	SpaceComplexity  string       `db:"space_complexity"`
	CreatedAt        time.Time    `db:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at"`
}

// dbPracticeSession represents a practice session as stored in the database.
type dbPracticeSession struct {
	ID               uuid.UUID    `db:"id"`
	UserID           uuid.UUID    `db:"user_id"`
	ProblemID        uuid.UUID    `db:"problem_id"`
	StartedAt        sql.NullTime `db:"started_at"`
	CompletedAt      sql.NullTime `db:"completed_at"`
	TimeTakenMinutes int          `db:"time_taken_minutes"`
	SolvedOnOwn      bool         `db:"solved_on_own"`
	NeededHints      bool         `db:"needed_hints"`
	Notes            string       `db:"notes"`
	CreatedAt        time.Time    `db:"created_at"`
}

// fromDomainProblem converts a domain.Problem into a dbProblem for database insertion.
func fromDomainProblem(problem *domain.Problem) *dbProblem {
	return &dbProblem{
		ID:               problem.ID,
		UserID:           problem.UserID,
		Number:           problem.Number,
		Title:            problem.Title,
		Difficulty:       string(problem.Difficulty),
		Category:         string(problem.Category),
		URL:              problem.URL,
		Blind75:          problem.Blind75,
		Status:           string(problem.Status),
		Attempts:         problem.Attempts,
		TimeTakenMinutes: problem.TimeTakenMinutes,
		CompletedAt: sql.NullTime{
			Time:  problem.CompletedAt,
			Valid: !problem.CompletedAt.IsZero(),
		},
		Notes:            problem.Notes,
		SolutionApproach: problem.SolutionApproach,
		TimeComplexity:   problem.TimeComplexity,
		SpaceComplexity:  problem.SpaceComplexity,
		CreatedAt:        problem.CreatedAt,
		UpdatedAt:        problem.UpdatedAt,
	}
}

// toDomainProblem converts a dbProblem into a domain.Problem.
func toDomainProblem(dbProb *dbProblem) *domain.Problem {
	problem := &domain.Problem{
		ID:               dbProb.ID,
		UserID:           dbProb.UserID,
		Number:           dbProb.Number,
		Title:            dbProb.Title,
		Difficulty:       domain.Difficulty(dbProb.Difficulty),
		Category:         domain.Category(dbProb.Category),
		URL:              dbProb.URL,
		Blind75:          dbProb.Blind75,
		Status:           domain.ProblemStatus(dbProb.Status),
		Attempts:         dbProb.Attempts,
		TimeTakenMinutes: dbProb.TimeTakenMinutes,
		Notes:            dbProb.Notes,
		SolutionApproach: dbProb.SolutionApproach,
		TimeComplexity:   dbProb.TimeComplexity,
		SpaceComplexity:  dbProb.SpaceComplexity,
		CreatedAt:        dbProb.CreatedAt,
		UpdatedAt:        dbProb.UpdatedAt,
	}

	if dbProb.CompletedAt.Valid {
		problem.CompletedAt = dbProb.CompletedAt.Time
	}
	return problem
}

// toDomainPracticeSession converts a dbPracticeSession into a domain.PracticeSession.
func toDomainPracticeSession(dbSession *dbPracticeSession) *domain.PracticeSession {
	session := &domain.PracticeSession{
		ID:               dbSession.ID,
		UserID:           dbSession.UserID,
		ProblemID:        dbSession.ProblemID,
		TimeTakenMinutes: dbSession.TimeTakenMinutes,
		SolvedOnOwn:      dbSession.SolvedOnOwn,
		NeededHints:      dbSession.NeededHints,
		Notes:            dbSession.Notes,
		CreatedAt:        dbSession.CreatedAt,
	}

	if dbSession.StartedAt.Valid {
		session.StartedAt = dbSession.StartedAt.Time
	}

	if dbSession.CompletedAt.Valid {
		session.CompletedAt = dbSession.CompletedAt.Time
	}
	return session
}

// InsertProblem stores a new domain.Problem in the database.
func (repo *Repository) InsertProblem(problem *domain.Problem) error {
	if problem.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating uuid: %w", err)
		}
		problem.ID = id
	}
	now := time.Now()
	problem.CreatedAt = now
	problem.UpdatedAt = now

	dbProb := fromDomainProblem(problem)
	query := `INSERT INTO problem(id, user_id, number, title, difficulty, category, url, blind75, status,
	                              attempts, time_taken_minutes, completed_at, notes, solution_approach,
	                              time_complexity, space_complexity, created_at, updated_at)
	          VALUES(:id, :user_id, :number, :title, :difficulty, :category, :url, :blind75, :status,
	                 :attempts, :time_taken_minutes, :completed_at, :notes, :solution_approach,
	                 :time_complexity, :space_complexity, :created_at, :updated_at)`
	_, err := repo.dbConn.NamedExec(query, dbProb)
	if err != nil {
		return fmt.Errorf("inserting problem %d: %w", problem.Number, err)
	}
	return nil
}

// GetProblems retrieves the user's problems matching the filter, ordered by number.
func (repo *Repository) GetProblems(userID uuid.UUID, filter domain.ProblemFilter) ([]*domain.Problem, error) {
	query := `SELECT * FROM problem WHERE user_id = ?`
	args := []any{userID}

	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, string(filter.Category))
	}
	if filter.Difficulty != "" {
		query += ` AND difficulty = ?`
		args = append(args, string(filter.Difficulty))
	}
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(filter.Status))
	}
	if filter.Blind75Only {
		query += ` AND blind75 = 1`
	}
	query += ` ORDER BY number`

	var dbProblems []*dbProblem
	err := repo.dbConn.Select(&dbProblems, query, args...)
	if err != nil {
		return nil, fmt.Errorf("getting problems: %w", err)
	}

	problems := make([]*domain.Problem, len(dbProblems))
	for i, dbProb := range dbProblems {
		problems[i] = toDomainProblem(dbProb)
	}
	return problems, nil
}

// GetProblem retrieves a single problem by ID, scoped to the user.
func (repo *Repository) GetProblem(userID uuid.UUID, id uuid.UUID) (*domain.Problem, error) {
	var dbProb dbProblem
	query := `SELECT * FROM problem WHERE user_id = ? AND id = ?`

	err := repo.dbConn.Get(&dbProb, query, userID, id)
	if err != nil {
		return nil, fmt.Errorf("getting problem %s: %w", id, err)
	}
	return toDomainProblem(&dbProb), nil
}

// UpdateProblem applies a partial update to a problem and returns the refreshed row.
// Moving the status to COMPLETED stamps the completion timestamp.
func (repo *Repository) UpdateProblem(userID uuid.UUID, id uuid.UUID, update domain.ProblemUpdate) (*domain.Problem, error) {
	problem, err := repo.GetProblem(userID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if update.Status != nil {
		problem.Status = *update.Status
		if problem.Status == domain.ProblemCompleted && problem.CompletedAt.IsZero() {
			problem.CompletedAt = now
		}
	}
	if update.Notes != nil {
		problem.Notes = *update.Notes
	}
	if update.SolutionApproach != nil {
		problem.SolutionApproach = *update.SolutionApproach
	}
	if update.TimeComplexity != nil {
		problem.TimeComplexity = *update.TimeComplexity
	}
	if update.SpaceComplexity != nil {
		problem.SpaceComplexity = *update.SpaceComplexity
	}
	problem.UpdatedAt = now

	dbProb := fromDomainProblem(problem)
	query := `UPDATE problem
	          SET status = :status, completed_at = :completed_at, notes = :notes,
	              solution_approach = :solution_approach, time_complexity = :time_complexity,
	              space_complexity = :space_complexity, updated_at = :updated_at
	          WHERE id = :id AND user_id = :user_id`
	_, err = repo.dbConn.NamedExec(query, dbProb)
	if err != nil {
		return nil, fmt.Errorf("updating problem %s: %w", id, err)
	}
	return problem, nil
}

// RecordPractice stores a practice session and applies its side effects in one
// transaction: the problem's attempt counter is bumped, and a session solved on
// one's own marks the problem COMPLETED with the session's time taken.
func (repo *Repository) RecordPractice(session *domain.PracticeSession) error {
	if session.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating uuid: %w", err)
		}
		session.ID = id
	}
	now := time.Now()
	session.CreatedAt = now

	tx, err := repo.dbConn.Beginx()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var problem dbProblem
	err = tx.Get(&problem, `SELECT * FROM problem WHERE user_id = ? AND id = ?`, session.UserID, session.ProblemID)
	if err != nil {
		return fmt.Errorf("getting problem %s: %w", session.ProblemID, err)
	}

	dbSession := &dbPracticeSession{
		ID:        session.ID,
		UserID:    session.UserID,
		ProblemID: session.ProblemID,
		StartedAt: sql.NullTime{
			Time:  session.StartedAt,
			Valid: !session.StartedAt.IsZero(),
		},
		CompletedAt: sql.NullTime{
			Time:  session.CompletedAt,
			Valid: !session.CompletedAt.IsZero(),
		},
		TimeTakenMinutes: session.TimeTakenMinutes,
		SolvedOnOwn:      session.SolvedOnOwn,
		NeededHints:      session.NeededHints,
		Notes:            session.Notes,
		CreatedAt:        session.CreatedAt,
	}
	_, err = tx.NamedExec(`INSERT INTO practice_session(id, user_id, problem_id, started_at, completed_at,
	                                                    time_taken_minutes, solved_on_own, needed_hints, notes, created_at)
	                       VALUES(:id, :user_id, :problem_id, :started_at, :completed_at,
	                              :time_taken_minutes, :solved_on_own, :needed_hints, :notes, :created_at)`, dbSession)
	if err != nil {
		return fmt.Errorf("inserting practice session: %w", err)
	}

	problem.Attempts++
	if session.SolvedOnOwn {
		problem.Status = string(domain.ProblemCompleted)
		problem.TimeTakenMinutes = session.TimeTakenMinutes
		if !problem.CompletedAt.Valid {
			problem.CompletedAt = sql.NullTime{Time: now, Valid: true}
		}
	}
	problem.UpdatedAt = now

	_, err = tx.NamedExec(`UPDATE problem
	                       SET attempts = :attempts, status = :status, time_taken_minutes = :time_taken_minutes,
	                           completed_at = :completed_at, updated_at = :updated_at
	                       WHERE id = :id AND user_id = :user_id`, &problem)
	if err != nil {
		return fmt.Errorf("updating problem after practice: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing practice session: %w", err)
	}
	return nil
}

// GetPracticeSessions retrieves the sessions for a problem, newest first.
func (repo *Repository) GetPracticeSessions(userID uuid.UUID, problemID uuid.UUID) ([]*domain.PracticeSession, error) {
	var dbSessions []*dbPracticeSession
	query := `SELECT * FROM practice_session WHERE user_id = ? AND problem_id = ? ORDER BY created_at DESC`

	err := repo.dbConn.Select(&dbSessions, query, userID, problemID)
	if err != nil {
		return nil, fmt.Errorf("getting practice sessions: %w", err)
	}

	sessions := make([]*domain.PracticeSession, len(dbSessions))
	for i, dbSession := range dbSessions {
		sessions[i] = toDomainPracticeSession(dbSession)
	}
	return sessions, nil
}
