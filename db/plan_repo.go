package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

var _ domain.PlanRepository = (*Repository)(nil)

// dbWeekPlan represents one week of the curriculum as stored in the database.
type dbWeekPlan struct {
	ID                   uuid.UUID  `db:"id"`
	UserID               uuid.UUID  `db:"user_id"`
	WeekNumber           int        `db:"week_number"`
	Title                string     `db:"title"`
	Description          string     `db:"description"`
	Goals                StringList `db:"goals"`
	Completed            bool       `db:"completed"`
	CompletionPercentage float64    `db:"completion_percentage"`
	Notes                string     `db:"notes"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
}

// dbDailyTask represents a daily task as stored in the database. Links to a
// problem or design topic are nullable text uuids.
type dbDailyTask struct {
	ID               uuid.UUID      `db:"id"`
	UserID           uuid.UUID      `db:"user_id"`
	WeekPlanID       uuid.UUID      `db:"week_plan_id"`
	WeekNumber       int            `db:"week_number"`
	DayNumber        int            `db:"day_number"`
	DayName          string         `db:"day_name"`
	TaskOrder        int            `db:"task_order"`
	Title            string         `db:"title"`
	Description      string         `db:"description"`
	TaskType         string         `db:"task_type"`
	EstimatedMinutes int            `db:"estimated_minutes"`
	Completed        bool           `db:"completed"`
	CompletedAt      sql.NullTime   `db:"completed_at"`
	ActualMinutes    int            `db:"actual_minutes"`
	ProblemID        sql.NullString `db:"problem_id"`
	TopicID          sql.NullString `db:"topic_id"`
	Notes            string         `db:"notes"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

// fromDomainWeek converts a domain.WeekPlan into a dbWeekPlan.
func fromDomainWeek(week *domain.WeekPlan) *dbWeekPlan {
	return &dbWeekPlan{
		ID:                   week.ID,
		UserID:               week.UserID,
		WeekNumber:           week.WeekNumber,
		Title:                week.Title,
		Description:          week.Description,
		Goals:                StringList(week.Goals),
		Completed:            week.Completed,
		CompletionPercentage: week.CompletionPercentage,
		Notes:                week.Notes,
		CreatedAt:            week.CreatedAt,
		UpdatedAt:            week.UpdatedAt,
	}
}

// toDomainWeek converts a dbWeekPlan into a domain.WeekPlan.
func toDomainWeek(dbWeek *dbWeekPlan) *domain.WeekPlan {
	return &domain.WeekPlan{
		ID:                   dbWeek.ID,
		UserID:               dbWeek.UserID,
		WeekNumber:           dbWeek.WeekNumber,
		Title:                dbWeek.Title,
		Description:          dbWeek.Description,
		Goals:                []string(dbWeek.Goals),
		Completed:            dbWeek.Completed,
		CompletionPercentage: dbWeek.CompletionPercentage,
		Notes:                dbWeek.Notes,
		CreatedAt:            dbWeek.CreatedAt,
		UpdatedAt:            dbWeek.UpdatedAt,
	}
}

// fromDomainTask converts a domain.DailyTask into a dbDailyTask.
func fromDomainTask(task *domain.DailyTask) *dbDailyTask {
	dbTask := &dbDailyTask{
		ID:               task.ID,
		UserID:           task.UserID,
		WeekPlanID:       task.WeekPlanID,
		WeekNumber:       task.WeekNumber,
		DayNumber:        task.DayNumber,
		DayName:          task.DayName,
		TaskOrder:        task.TaskOrder,
		Title:            task.Title,
		Description:      task.Description,
		TaskType:         task.TaskType,
		EstimatedMinutes: task.EstimatedMinutes,
		Completed:        task.Completed,
		CompletedAt: sql.NullTime{
			Time:  task.CompletedAt,
			Valid: !task.CompletedAt.IsZero(),
		},
		ActualMinutes: task.ActualMinutes,
		Notes:         task.Notes,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}

	if task.ProblemID != uuid.Nil {
		dbTask.ProblemID = sql.NullString{String: task.ProblemID.String(), Valid: true}
	}
	if task.TopicID != uuid.Nil {
		dbTask.TopicID = sql.NullString{String: task.TopicID.String(), Valid: true}
	}
	return dbTask
}

// toDomainTask converts a dbDailyTask into a domain.DailyTask.
func toDomainTask(dbTask *dbDailyTask) *domain.DailyTask {
	task := &domain.DailyTask{
		ID:               dbTask.ID,
		UserID:           dbTask.UserID,
		WeekPlanID:       dbTask.WeekPlanID,
		WeekNumber:       dbTask.WeekNumber,
		DayNumber:        dbTask.DayNumber,
		DayName:          dbTask.DayName,
		TaskOrder:        dbTask.TaskOrder,
		Title:            dbTask.Title,
		Description:      dbTask.Description,
		TaskType:         dbTask.TaskType,
		EstimatedMinutes: dbTask.EstimatedMinutes,
		Completed:        dbTask.Completed,
		ActualMinutes:    dbTask.ActualMinutes,
		Notes:            dbTask.Notes,
		CreatedAt:        dbTask.CreatedAt,
		UpdatedAt:        dbTask.UpdatedAt,
	}

	if dbTask.CompletedAt.Valid {
		task.CompletedAt = dbTask.CompletedAt.Time
	}
	if dbTask.ProblemID.Valid {
		if id, err := uuid.Parse(dbTask.ProblemID.String); err == nil {
			task.ProblemID = id
		}
	}
	if dbTask.TopicID.Valid {
		if id, err := uuid.Parse(dbTask.TopicID.String); err == nil {
			task.TopicID = id
		}
	}
	return task
}

// InsertWeek stores a new domain.WeekPlan in the database.
func (repo *Repository) InsertWeek(week *domain.WeekPlan) error {
	if week.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating uuid: %w", err)
		}
		week.ID = id
	}
	now := time.Now()
	week.CreatedAt = now
	week.UpdatedAt = now

	dbWeek := fromDomainWeek(week)
	query := `INSERT INTO week_plan(id, user_id, week_number, title, description, goals, completed,
	                                completion_percentage, notes, created_at, updated_at)
	          VALUES(:id, :user_id, :week_number, :title, :description, :goals, :completed,
	                 :completion_percentage, :notes, :created_at, :updated_at)`
	_, err := repo.dbConn.NamedExec(query, dbWeek)
	if err != nil {
		return fmt.Errorf("inserting week %d: %w", week.WeekNumber, err)
	}
	return nil
}

// GetWeeks retrieves the user's week plans ordered by week number.
func (repo *Repository) GetWeeks(userID uuid.UUID) ([]*domain.WeekPlan, error) {
	var dbWeeks []*dbWeekPlan
	query := `SELECT * FROM week_plan WHERE user_id = ? ORDER BY week_number`

	err := repo.dbConn.Select(&dbWeeks, query, userID)
	if err != nil {
		return nil, fmt.Errorf("getting weeks: %w", err)
	}

	weeks := make([]*domain.WeekPlan, len(dbWeeks))
	for i, dbWeek := range dbWeeks {
		weeks[i] = toDomainWeek(dbWeek)
	}
	return weeks, nil
}

// UpdateWeek applies a partial update to a week plan and returns the refreshed row.
func (repo *Repository) UpdateWeek(userID uuid.UUID, id uuid.UUID, update domain.WeekUpdate) (*domain.WeekPlan, error) {
	var dbWeek dbWeekPlan
	err := repo.dbConn.Get(&dbWeek, `SELECT * FROM week_plan WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return nil, fmt.Errorf("getting week %s: %w", id, err)
	}

	week := toDomainWeek(&dbWeek)
	if update.Completed != nil {
		week.Completed = *update.Completed
	}
	if update.CompletionPercentage != nil {
		week.CompletionPercentage = *update.CompletionPercentage
	}
	if update.Notes != nil {
		week.Notes = *update.Notes
	}
	week.UpdatedAt = time.Now()

	updated := fromDomainWeek(week)
	query := `UPDATE week_plan
	          SET completed = :completed, completion_percentage = :completion_percentage,
	              notes = :notes, updated_at = :updated_at
	          WHERE id = :id AND user_id = :user_id`
	_, err = repo.dbConn.NamedExec(query, updated)
	if err != nil {
		return nil, fmt.Errorf("updating week %s: %w", id, err)
	}
	return week, nil
}

// InsertTask stores a new domain.DailyTask in the database.
func (repo *Repository) InsertTask(task *domain.DailyTask) error {
	if task.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating uuid: %w", err)
		}
		task.ID = id
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	dbTask := fromDomainTask(task)
	query := `INSERT INTO daily_task(id, user_id, week_plan_id, week_number, day_number, day_name, task_order,
	                                 title, description, task_type, estimated_minutes, completed, completed_at,
	                                 actual_minutes, problem_id, topic_id, notes, created_at, updated_at)
	          VALUES(:id, :user_id, :week_plan_id, :week_number, :day_number, :day_name, :task_order,
	                 :title, :description, :task_type, :estimated_minutes, :completed, :completed_at,
	                 :actual_minutes, :problem_id, :topic_id, :notes, :created_at, :updated_at)`
	_, err := repo.dbConn.NamedExec(query, dbTask)
	if err != nil {
		return fmt.Errorf("inserting task %s: %w", task.Title, err)
	}
	return nil
}

// GetTasks retrieves the user's tasks for a week, ordered by day then task order.
// A dayNumber of 0 returns the whole week.
func (repo *Repository) GetTasks(userID uuid.UUID, weekNumber int, dayNumber int) ([]*domain.DailyTask, error) {
	query := `SELECT * FROM daily_task WHERE user_id = ? AND week_number = ?`
	args := []any{userID, weekNumber}
	if dayNumber != 0 {
		query += ` AND day_number = ?`
		args = append(args, dayNumber)
	}
	query += ` ORDER BY day_number, task_order`

	var dbTasks []*dbDailyTask
	err := repo.dbConn.Select(&dbTasks, query, args...)
	if err != nil {
		return nil, fmt.Errorf("getting tasks for week %d: %w", weekNumber, err)
	}

	tasks := make([]*domain.DailyTask, len(dbTasks))
	for i, dbTask := range dbTasks {
		tasks[i] = toDomainTask(dbTask)
	}
	return tasks, nil
}

// GetTask retrieves a single task by ID, scoped to the user.
func (repo *Repository) GetTask(userID uuid.UUID, id uuid.UUID) (*domain.DailyTask, error) {
	var dbTask dbDailyTask
	query := `SELECT * FROM daily_task WHERE user_id = ? AND id = ?`

	err := repo.dbConn.Get(&dbTask, query, userID, id)
	if err != nil {
		return nil, fmt.Errorf("getting task %s: %w", id, err)
	}
	return toDomainTask(&dbTask), nil
}

// UpdateTask applies a partial update to a daily task and returns the refreshed row.
// Completing a task stamps the completion timestamp; un-completing clears it.
func (repo *Repository) UpdateTask(userID uuid.UUID, id uuid.UUID, update domain.TaskUpdate) (*domain.DailyTask, error) {
	task, err := repo.GetTask(userID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if update.Completed != nil {
		task.Completed = *update.Completed
		if task.Completed {
			task.CompletedAt = now
		} else {
			task.CompletedAt = time.Time{}
		}
	}
	if update.Notes != nil {
		task.Notes = *update.Notes
	}
	if update.ActualMinutes != nil {
		task.ActualMinutes = *update.ActualMinutes
	}
	task.UpdatedAt = now

	dbTask := fromDomainTask(task)
	query := `UPDATE daily_task
	          SET completed = :completed, completed_at = :completed_at, actual_minutes = :actual_minutes,
	              notes = :notes, updated_at = :updated_at
	          WHERE id = :id AND user_id = :user_id`
	_, err = repo.dbConn.NamedExec(query, dbTask)
	if err != nil {
		return nil, fmt.Errorf("updating task %s: %w", id, err)
	}
	return task, nil
}
