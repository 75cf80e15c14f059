// Package analytics aggregates repository data into the dashboard snapshot.
// It holds no state of its own; everything is derived from the repositories
// at request time.
package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

// Repository is the slice of the data layer the dashboard needs.
type Repository interface {
	domain.StatsRepository
	domain.ProblemRepository
	domain.PlanRepository
	domain.JournalRepository
}

// TrackProgress reports done-over-total progress for one preparation track.
type TrackProgress struct {
	Total   int     `json:"total"`
	Done    int     `json:"done"`
	Percent float64 `json:"percent"`
}

// DifficultyBreakdown holds per-difficulty problem counts.
type DifficultyBreakdown struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// WeekProgress is one week of the curriculum as shown on the dashboard.
type WeekProgress struct {
	WeekNumber           int     `json:"weekNumber"`
	Title                string  `json:"title"`
	CompletionPercentage float64 `json:"completionPercentage"`
	Completed            bool    `json:"completed"`
}

// DayHours is one day of the study-hours series.
type DayHours struct {
	Label string    `json:"label"`
	Date  time.Time `json:"-"`
	Hours int       `json:"hours"`
}

// Snapshot is the aggregated dashboard view of a user's preparation state.
type Snapshot struct {
	Problems    TrackProgress       `json:"problems"`
	Blind75     TrackProgress       `json:"blind75"`
	Design      TrackProgress       `json:"design"`
	Behavioral  TrackProgress       `json:"behavioral"`
	Difficulty  DifficultyBreakdown `json:"difficulty"`
	CurrentWeek int                 `json:"currentWeek"`
	Weeks       []WeekProgress      `json:"weeks"`
	Streak      int                 `json:"streak"`
	StudyHours  []DayHours          `json:"studyHours"`
}

// Service builds dashboard snapshots from repository data.
type Service struct {
	repo Repository
}

// NewService returns a Service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// studyHoursDays is the length of the study-hours series on the dashboard.
const studyHoursDays = 14

// Snapshot assembles the full dashboard snapshot for the user as of now.
func (service *Service) Snapshot(userID uuid.UUID, now time.Time) (*Snapshot, error) {
	snapshot := &Snapshot{}

	totalProblems, err := service.repo.CountProblems(userID)
	if err != nil {
		return nil, fmt.Errorf("counting problems: %w", err)
	}
	completedProblems, err := service.repo.CountProblemsByStatus(userID, domain.ProblemCompleted)
	if err != nil {
		return nil, fmt.Errorf("counting completed problems: %w", err)
	}
	snapshot.Problems = track(totalProblems, completedProblems)

	trackedBlind75, err := service.repo.CountBlind75(userID)
	if err != nil {
		return nil, fmt.Errorf("counting blind 75 problems: %w", err)
	}
	solvedBlind75, err := service.repo.GetProblems(userID, domain.ProblemFilter{
		Status:      domain.ProblemCompleted,
		Blind75Only: true,
	})
	if err != nil {
		return nil, fmt.Errorf("listing solved blind 75 problems: %w", err)
	}
	snapshot.Blind75 = track(trackedBlind75, len(solvedBlind75))

	for _, count := range []struct {
		difficulty domain.Difficulty
		target     *int
	}{
		{domain.Easy, &snapshot.Difficulty.Easy},
		{domain.Medium, &snapshot.Difficulty.Medium},
		{domain.Hard, &snapshot.Difficulty.Hard},
	} {
		value, err := service.repo.CountProblemsByDifficulty(userID, count.difficulty)
		if err != nil {
			return nil, fmt.Errorf("counting %s problems: %w", count.difficulty, err)
		}
		*count.target = value
	}

	totalTopics, err := service.repo.CountTopics(userID)
	if err != nil {
		return nil, fmt.Errorf("counting design topics: %w", err)
	}
	confidentTopics, err := service.repo.CountTopicsByStatus(userID, domain.DesignConfident)
	if err != nil {
		return nil, fmt.Errorf("counting confident design topics: %w", err)
	}
	snapshot.Design = track(totalTopics, confidentTopics)

	totalStories, err := service.repo.CountStories(userID)
	if err != nil {
		return nil, fmt.Errorf("counting stories: %w", err)
	}
	readyStories, err := service.repo.CountReadyStories(userID)
	if err != nil {
		return nil, fmt.Errorf("counting ready stories: %w", err)
	}
	snapshot.Behavioral = track(totalStories, readyStories)

	weeks, err := service.repo.GetWeeks(userID)
	if err != nil {
		return nil, fmt.Errorf("listing week plans: %w", err)
	}
	snapshot.Weeks = weekSeries(weeks)
	snapshot.CurrentWeek = currentWeek(weeks)

	entries, err := service.repo.GetEntries(userID)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	snapshot.Streak = Streak(entries, now)
	snapshot.StudyHours = StudyHourSeries(entries, now, studyHoursDays)

	return snapshot, nil
}

// track builds a TrackProgress with its percentage rounded to one decimal.
func track(total int, done int) TrackProgress {
	progress := TrackProgress{Total: total, Done: done}
	if total > 0 {
		progress.Percent = math.Round(float64(done)/float64(total)*1000) / 10
	}
	return progress
}

// weekSeries projects week plans into the dashboard progress series.
func weekSeries(weeks []*domain.WeekPlan) []WeekProgress {
	series := make([]WeekProgress, 0, len(weeks))
	for _, week := range weeks {
		series = append(series, WeekProgress{
			WeekNumber:           week.WeekNumber,
			Title:                week.Title,
			CompletionPercentage: week.CompletionPercentage,
			Completed:            week.Completed,
		})
	}
	return series
}

// currentWeek returns the first incomplete week of the curriculum, the last
// week when everything is done, or 1 when no plan exists yet.
func currentWeek(weeks []*domain.WeekPlan) int {
	if len(weeks) == 0 {
		return 1
	}
	for _, week := range weeks {
		if !week.Completed {
			return week.WeekNumber
		}
	}
	return weeks[len(weeks)-1].WeekNumber
}

// Streak returns the number of consecutive days with a journal entry, counted
// backwards from today. A day without an entry ends the run, so the streak is
// zero until today's entry is logged.
func Streak(entries []*domain.JournalEntry, now time.Time) int {
	days := make(map[time.Time]bool, len(entries))
	for _, entry := range entries {
		days[dayOf(entry.Date)] = true
	}

	day := dayOf(now)
	streak := 0
	for days[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// StudyHourSeries returns the per-day study hours for the trailing window
// ending today, oldest day first. Days without an entry report zero hours.
func StudyHourSeries(entries []*domain.JournalEntry, now time.Time, days int) []DayHours {
	hoursByDay := make(map[time.Time]int, len(entries))
	for _, entry := range entries {
		hoursByDay[dayOf(entry.Date)] += entry.StudyHours
	}

	series := make([]DayHours, 0, days)
	for offset := days - 1; offset >= 0; offset-- {
		day := dayOf(now).AddDate(0, 0, -offset)
		series = append(series, DayHours{
			Label: day.Format("Jan 2"),
			Date:  day,
			Hours: hoursByDay[day],
		})
	}
	return series
}

func dayOf(moment time.Time) time.Time {
	return time.Date(moment.Year(), moment.Month(), moment.Day(), 0, 0, 0, 0, moment.Location())
}
