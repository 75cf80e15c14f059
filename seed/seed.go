// Package seed provisions the demo data set: the demo user, the problem
// catalog, system design topics, the 12-week plan, and the scheduled tasks
// for the first three weeks. Every section is idempotent; a section with
// existing rows is left alone.
package seed

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

// DemoEmail identifies the seeded demo account.
const DemoEmail = "demo@example.com"

// Repository is the slice of the data layer seeding writes through.
type Repository interface {
	domain.UserRepository
	domain.ProblemRepository
	domain.DesignRepository
	domain.PlanRepository
	domain.StatsRepository
}

// Result reports what each section added. Zeroes mean the section already
// had data.
type Result struct {
	UserID   uuid.UUID
	Problems int
	Topics   int
	Weeks    int
	Tasks    int
}

// Run seeds every section and returns the per-section counts.
func Run(repo Repository, logger *zap.Logger) (*Result, error) {
	userID, err := ensureUser(repo)
	if err != nil {
		return nil, err
	}
	result := &Result{UserID: userID}

	if result.Problems, err = seedProblems(repo, userID); err != nil {
		return nil, err
	}
	if result.Topics, err = seedTopics(repo, userID); err != nil {
		return nil, err
	}
	if result.Weeks, err = seedWeeks(repo, userID); err != nil {
		return nil, err
	}
	if result.Tasks, err = seedTasks(repo, userID); err != nil {
		return nil, err
	}

	logger.Info("seed complete",
		zap.Int("problems", result.Problems),
		zap.Int("topics", result.Topics),
		zap.Int("weeks", result.Weeks),
		zap.Int("tasks", result.Tasks))
	return result, nil
}

func ensureUser(repo Repository) (uuid.UUID, error) {
	user, err := repo.GetUserByEmail(DemoEmail)
	if err == nil {
		return user.ID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("looking up demo user: %w", err)
	}

	user = &domain.User{FirstName: "Demo", LastName: "User", Email: DemoEmail}
	if err := repo.InsertUser(user); err != nil {
		return uuid.Nil, fmt.Errorf("creating demo user: %w", err)
	}
	return user.ID, nil
}

func seedProblems(repo Repository, userID uuid.UUID) (int, error) {
	existing, err := repo.CountProblems(userID)
	if err != nil {
		return 0, fmt.Errorf("counting problems: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	for _, entry := range problemCatalog {
		problem := &domain.Problem{
			UserID:     userID,
			Number:     entry.number,
			Title:      entry.title,
			Difficulty: entry.difficulty,
			Category:   entry.category,
			URL:        "https://leetcode.com/problems/" + entry.slug + "/",
			Blind75:    entry.blind75,
			Status:     domain.ProblemNotStarted,
		}
		if err := repo.InsertProblem(problem); err != nil {
			return 0, fmt.Errorf("seeding problem %d: %w", entry.number, err)
		}
	}
	return len(problemCatalog), nil
}

func seedTopics(repo Repository, userID uuid.UUID) (int, error) {
	existing, err := repo.CountTopics(userID)
	if err != nil {
		return 0, fmt.Errorf("counting design topics: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	for _, title := range designTopics {
		topic := &domain.DesignTopic{
			UserID:      userID,
			Title:       title,
			Description: fmt.Sprintf("Design the %s system with scale, reliability, and cost in mind.", title),
			Status:      domain.DesignNotStarted,
			Resources:   []string{},
		}
		if err := repo.InsertTopic(topic); err != nil {
			return 0, fmt.Errorf("seeding topic %q: %w", title, err)
		}
	}
	return len(designTopics), nil
}

func seedWeeks(repo Repository, userID uuid.UUID) (int, error) {
	existing, err := repo.GetWeeks(userID)
	if err != nil {
		return 0, fmt.Errorf("listing weeks: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for _, entry := range weekPlans {
		week := &domain.WeekPlan{
			UserID:      userID,
			WeekNumber:  entry.number,
			Title:       entry.title,
			Description: entry.description,
			Goals:       entry.goals,
		}
		if err := repo.InsertWeek(week); err != nil {
			return 0, fmt.Errorf("seeding week %d: %w", entry.number, err)
		}
	}
	return len(weekPlans), nil
}

func seedTasks(repo Repository, userID uuid.UUID) (int, error) {
	existing, err := repo.GetTasks(userID, 1, 0)
	if err != nil {
		return 0, fmt.Errorf("listing tasks: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	problems, err := repo.GetProblems(userID, domain.ProblemFilter{})
	if err != nil {
		return 0, fmt.Errorf("listing problems: %w", err)
	}
	problemByNumber := make(map[int]uuid.UUID, len(problems))
	for _, problem := range problems {
		problemByNumber[problem.Number] = problem.ID
	}

	weeks, err := repo.GetWeeks(userID)
	if err != nil {
		return 0, fmt.Errorf("listing weeks: %w", err)
	}
	weekByNumber := make(map[int]uuid.UUID, len(weeks))
	for _, week := range weeks {
		weekByNumber[week.WeekNumber] = week.ID
	}

	count := 0
	for _, schedule := range [][]seedDay{weekOneTasks, weekTwoTasks(), weekThreeTasks} {
		for _, day := range schedule {
			weekID, ok := weekByNumber[day.week]
			if !ok {
				return count, fmt.Errorf("seeding tasks: week %d not found", day.week)
			}
			for order, item := range day.items {
				task := &domain.DailyTask{
					UserID:           userID,
					WeekPlanID:       weekID,
					WeekNumber:       day.week,
					DayNumber:        day.day,
					DayName:          day.name,
					TaskOrder:        order + 1,
					Title:            item.title,
					Description:      item.description,
					TaskType:         item.taskType,
					EstimatedMinutes: item.minutes,
					ProblemID:        problemByNumber[item.problemNumber],
				}
				if err := repo.InsertTask(task); err != nil {
					return count, fmt.Errorf("seeding task %q: %w", item.title, err)
				}
				count++
			}
		}
	}
	return count, nil
}
