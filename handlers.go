package sdeprep

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harsha-k-cheruku/sde-interview-prep/analytics"
	"github.com/harsha-k-cheruku/sde-interview-prep/content"
	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
	"github.com/harsha-k-cheruku/sde-interview-prep/seed"
)

const guidesPerPage = 10

type errorResponse struct {
	Error string `json:"error"`
}

func (app *App) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		app.Logger.Error("encoding response", zap.Error(err))
	}
}

func (app *App) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		app.Logger.Error("request failed", zap.Error(err))
	}
	app.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func readJSON(req *http.Request, target any) error {
	decoder := json.NewDecoder(req.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}

// withUser requires a valid session cookie and passes the user id through.
// Unauthenticated calls get a 401.
func (app *App) withUser(next func(http.ResponseWriter, *http.Request, uuid.UUID)) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		userID, err := app.sessions.Verify(req)
		if err != nil {
			app.writeError(w, http.StatusUnauthorized, errors.New("authentication required"))
			return
		}
		next(w, req, userID)
	}
}

// pageUser resolves the user for page rendering: the session when present,
// the seeded demo account otherwise. Pages stay reachable without a session;
// only the mutating API requires one.
func (app *App) pageUser(req *http.Request) (*domain.User, error) {
	if userID, err := app.sessions.Verify(req); err == nil {
		if user, err := app.Repo.GetUser(userID); err == nil {
			return user, nil
		}
	}
	return app.Repo.GetUserByEmail(seed.DemoEmail)
}

func pathID(req *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(req.PathValue("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id: %w", err)
	}
	return id, nil
}

// --- Operational endpoints ---

func (app *App) handleRoot(w http.ResponseWriter, req *http.Request) {
	app.writeJSON(w, http.StatusOK, map[string]string{
		"service": "sde-interview-prep",
		"url":     pagePrefix,
	})
}

func (app *App) handleHealth(w http.ResponseWriter, req *http.Request) {
	app.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCreateSession issues the demo session cookie.
func (app *App) handleCreateSession(w http.ResponseWriter, req *http.Request) {
	user, err := app.Repo.GetUserByEmail(seed.DemoEmail)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, fmt.Errorf("resolving demo user: %w", err))
		return
	}

	cookie, err := app.sessions.Issue(user.ID)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	http.SetCookie(w, cookie)
	app.writeJSON(w, http.StatusCreated, map[string]string{
		"user":  user.FullName(),
		"email": user.Email,
	})
}

// --- Pages ---

type pageData struct {
	Title    string
	Active   string
	User     *domain.User
	Snapshot *analytics.Snapshot
	Problems []*domain.Problem
	Topics   []*domain.DesignTopic
	Stories  []*domain.Story
	Weeks    []*domain.WeekPlan
	Tasks    []*domain.DailyTask
	Entries  []*domain.JournalEntry
	Guides   []*content.Guide
	Guide    *content.Guide
	Tags     []string
	Tag      string
	Page     int
	Pages    int
	Week     int
	Day      int
}

func (app *App) handleLanding(w http.ResponseWriter, req *http.Request) {
	user, err := app.pageUser(req)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.renderer.render(w, "landing.html", pageData{Title: "SDE Interview Prep", Active: "home", User: user})
}

func (app *App) handlePRFAQ(w http.ResponseWriter, req *http.Request) {
	user, err := app.pageUser(req)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.renderer.render(w, "prfaq.html", pageData{Title: "PR/FAQ", Active: "prfaq", User: user})
}

func (app *App) handleDashboardPage(w http.ResponseWriter, req *http.Request) {
	user, err := app.pageUser(req)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	snapshot, err := app.Dashboard.Snapshot(user.ID, time.Now())
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.renderer.render(w, "dashboard.html", pageData{Title: "Dashboard", Active: "dashboard", User: user, Snapshot: snapshot})
}

func (app *App) handleProblemsPage(w http.ResponseWriter, req *http.Request) {
	user, err := app.pageUser(req)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	filter, err := problemFilterFromQuery(req)
	if err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}
	problems, err := app.Repo.GetProblems(user.ID, filter)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.renderer.render(w, "problems.html", pageData{Title: "Problems", Active: "problems", User: user, Problems: problems})
}

func (app *App) handleDailyPlanPage(w http.ResponseWriter, req *http.Request) {
	user, err := app.pageUser(req)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	week, day, err := weekDayFromQuery(req)
	if err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}
	if week == 0 {
		weeks, err := app.Repo.GetWeeks(user.ID)
		if err != nil {
			app.writeError(w, http.StatusInternalServerError, err)
			return
		}
		week = currentWeekNumber(weeks)
	}
	tasks, err := app.Repo.GetTasks(user.ID, week, day)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.renderer.render(w, "daily_plan.html", pageData{Title: "Daily Plan", Active: "daily-plan", User: user, Tasks: tasks, Week: week, Day: day})
}

func (app *App) handleSystemDesignPage(w http.ResponseWriter, req *http.Request) {
	user, err := app.pageUser(req)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	topics, err := app.Repo.GetTopics(user.ID)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.renderer.render(w, "system_design.html", pageData{Title: "System Design", Active: "system-design", User: user, Topics: topics})
}

func (app *App) handleBehavioralPage(w http.ResponseWriter, req *http.Request) {
	user, err := app.pageUser(req)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	stories, err := app.Repo.GetStories(user.ID)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.renderer.render(w, "behavioral.html", pageData{Title: "Behavioral", Active: "behavioral", User: user, Stories: stories})
}

func (app *App) handleStudyPlanPage(w http.ResponseWriter, req *http.Request) {
	user, err := app.pageUser(req)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	weeks, err := app.Repo.GetWeeks(user.ID)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.renderer.render(w, "study_plan.html", pageData{Title: "12-Week Plan", Active: "study-plan", User: user, Weeks: weeks})
}

func (app *App) handleGuidesPage(w http.ResponseWriter, req *http.Request) {
	user, err := app.pageUser(req)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	tag := req.URL.Query().Get("tag")
	page := 1
	if raw := req.URL.Query().Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			app.writeError(w, http.StatusBadRequest, errors.New("invalid page"))
			return
		}
	}

	filtered := app.Guides.Filter(tag)
	guides, totalPages := content.Page(filtered, page, guidesPerPage)
	app.renderer.render(w, "guides.html", pageData{
		Title:  "Guides",
		Active: "guides",
		User:   user,
		Guides: guides,
		Tags:   app.Guides.Tags(),
		Tag:    tag,
		Page:   page,
		Pages:  totalPages,
	})
}

func (app *App) handleGuidePage(w http.ResponseWriter, req *http.Request) {
	user, err := app.pageUser(req)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	guide, ok := app.Guides.Guide(req.PathValue("slug"))
	if !ok {
		http.NotFound(w, req)
		return
	}
	app.renderer.render(w, "guide.html", pageData{Title: guide.Title, Active: "guides", User: user, Guide: guide})
}

// --- API ---

func (app *App) handleDashboardStats(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
	snapshot, err := app.Dashboard.Snapshot(userID, time.Now())
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.writeJSON(w, http.StatusOK, snapshot)
}

func problemFilterFromQuery(req *http.Request) (domain.ProblemFilter, error) {
	var filter domain.ProblemFilter
	query := req.URL.Query()

	if raw := query.Get("category"); raw != "" {
		category, err := domain.ParseCategory(raw)
		if err != nil {
			return filter, err
		}
		filter.Category = category
	}
	if raw := query.Get("difficulty"); raw != "" {
		difficulty, err := domain.ParseDifficulty(raw)
		if err != nil {
			return filter, err
		}
		filter.Difficulty = difficulty
	}
	if raw := query.Get("status"); raw != "" {
		status, err := domain.ParseProblemStatus(raw)
		if err != nil {
			return filter, err
		}
		filter.Status = status
	}
	if raw := query.Get("blind75"); raw != "" {
		blind75, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid blind75 flag: %w", err)
		}
		filter.Blind75Only = blind75
	}
	return filter, nil
}

func (app *App) handleListProblems(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
	filter, err := problemFilterFromQuery(req)
	if err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}
	problems, err := app.Repo.GetProblems(userID, filter)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.writeJSON(w, http.StatusOK, problems)
}

type problemUpdateRequest struct {
	Status           *string `json:"status"`
	Notes            *string `json:"notes"`
	SolutionApproach *string `json:"solutionApproach"`
	TimeComplexity   *string `json:"timeComplexity"`
	SpaceComplexity  *string `json:"spaceComplexity"`
}

func (app *App) handleUpdateProblem(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
	id, err := pathID(req)
	if err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}
	var body problemUpdateRequest
	if err := readJSON(req, &body); err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}

	update := domain.ProblemUpdate{
		Notes:            body.Notes,
		SolutionApproach: body.SolutionApproach,
		TimeComplexity:   body.TimeComplexity,
		SpaceComplexity:  body.SpaceComplexity,
	}
	if body.Status != nil {
		status, err := domain.ParseProblemStatus(*body.Status)
		if err != nil {
			app.writeError(w, http.StatusBadRequest, err)
			return
		}
		update.Status = &status
	}

	problem, err := app.Repo.UpdateProblem(userID, id, update)
	if err != nil {
		app.writeError(w, http.StatusNotFound, err)
		return
	}
	app.writeJSON(w, http.StatusOK, problem)
}

type practiceRequest struct {
	TimeTakenMinutes int    `json:"timeTakenMinutes"`
	SolvedOnOwn      bool   `json:"solvedOnOwn"`
	NeededHints      bool   `json:"neededHints"`
	Notes            string `json:"notes"`
}

func (app *App) handleRecordPractice(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
	id, err := pathID(req)
	if err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}
	var body practiceRequest
	if err := readJSON(req, &body); err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}

	session := &domain.PracticeSession{
		UserID:           userID,
		ProblemID:        id,
		TimeTakenMinutes: body.TimeTakenMinutes,
		SolvedOnOwn:      body.SolvedOnOwn,
		NeededHints:      body.NeededHints,
		Notes:            body.Notes,
	}
	if err := app.Repo.RecordPractice(session); err != nil {
		app.writeError(w, http.StatusNotFound, err)
		return
	}

	problem, err := app.Repo.GetProblem(userID, id)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.writeJSON(w, http.StatusCreated, problem)
}

func weekDayFromQuery(req *http.Request) (int, int, error) {
	query := req.URL.Query()
	week, day := 0, 0
	var err error

	if raw := query.Get("week"); raw != "" {
		week, err = strconv.Atoi(raw)
		if err != nil || week < 1 {
			return 0, 0, errors.New("invalid week")
		}
	}
	if raw := query.Get("day"); raw != "" {
		day, err = strconv.Atoi(raw)
		if err != nil || day < 0 || day > 7 {
			return 0, 0, errors.New("invalid day")
		}
	}
	return week, day, nil
}

func currentWeekNumber(weeks []*domain.WeekPlan) int {
	for _, week := range weeks {
		if !week.Completed {
			return week.WeekNumber
		}
	}
	if len(weeks) > 0 {
		return weeks[len(weeks)-1].WeekNumber
	}
	return 1
}

type taskListResponse struct {
	Week             int                 `json:"week"`
	Day              int                 `json:"day"`
	Tasks            []*domain.DailyTask `json:"tasks"`
	TotalMinutes     int                 `json:"totalMinutes"`
	CompletedCount   int                 `json:"completedCount"`
	CompletedPercent float64             `json:"completedPercent"`
}

func buildTaskList(week int, day int, tasks []*domain.DailyTask) taskListResponse {
	response := taskListResponse{Week: week, Day: day, Tasks: tasks}
	for _, task := range tasks {
		response.TotalMinutes += task.EstimatedMinutes
		if task.Completed {
			response.CompletedCount++
		}
	}
	if len(tasks) > 0 {
		response.CompletedPercent = float64(response.CompletedCount) / float64(len(tasks)) * 100
	}
	return response
}

func (app *App) handleListTasks(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
	week, day, err := weekDayFromQuery(req)
	if err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}
	if week == 0 {
		weeks, err := app.Repo.GetWeeks(userID)
		if err != nil {
			app.writeError(w, http.StatusInternalServerError, err)
			return
		}
		week = currentWeekNumber(weeks)
	}

	tasks, err := app.Repo.GetTasks(userID, week, day)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.writeJSON(w, http.StatusOK, buildTaskList(week, day, tasks))
}

type taskUpdateRequest struct {
	Completed     *bool   `json:"completed"`
	Notes         *string `json:"notes"`
	ActualMinutes *int    `json:"actualMinutes"`
}

func (app *App) handleUpdateTask(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
	id, err := pathID(req)
	if err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}
	var body taskUpdateRequest
	if err := readJSON(req, &body); err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}

	task, err := app.Repo.UpdateTask(userID, id, domain.TaskUpdate{
		Completed:     body.Completed,
		Notes:         body.Notes,
		ActualMinutes: body.ActualMinutes,
	})
	if err != nil {
		app.writeError(w, http.StatusNotFound, err)
		return
	}
	app.writeJSON(w, http.StatusOK, task)
}

func (app *App) handleListTopics(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
	topics, err := app.Repo.GetTopics(userID)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.writeJSON(w, http.StatusOK, topics)
}

type topicUpdateRequest struct {
	Status         *string `json:"status"`
	Notes          *string `json:"notes"`
	KeyConcepts    *string `json:"keyConcepts"`
	CommonPatterns *string `json:"commonPatterns"`
	PracticeCount  *int    `json:"practiceCount"`
}

func (app *App) handleUpdateTopic(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
	id, err := pathID(req)
	if err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}
	var body topicUpdateRequest
	if err := readJSON(req, &body); err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}

	update := domain.TopicUpdate{
		Notes:          body.Notes,
		KeyConcepts:    body.KeyConcepts,
		CommonPatterns: body.CommonPatterns,
		PracticeCount:  body.PracticeCount,
	}
	if body.Status != nil {
		status, err := domain.ParseDesignStatus(*body.Status)
		if err != nil {
			app.writeError(w, http.StatusBadRequest, err)
			return
		}
		update.Status = &status
	}

	topic, err := app.Repo.UpdateTopic(userID, id, update)
	if err != nil {
		app.writeError(w, http.StatusNotFound, err)
		return
	}
	app.writeJSON(w, http.StatusOK, topic)
}

func (app *App) handleListStories(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
	stories, err := app.Repo.GetStories(userID)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.writeJSON(w, http.StatusOK, stories)
}

type storyRequest struct {
	Title               string `json:"title"`
	Category            string `json:"category"`
	Situation           string `json:"situation"`
	Task                string `json:"task"`
	Action              string `json:"action"`
	Result              string `json:"result"`
	CompanyRelevance    string `json:"companyRelevance"`
	LeadershipPrinciple string `json:"leadershipPrinciple"`
	Notes               string `json:"notes"`
}

func (app *App) handleCreateStory(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
	var body storyRequest
	if err := readJSON(req, &body); err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.Title == "" {
		app.writeError(w, http.StatusBadRequest, errors.New("title is required"))
		return
	}

	story := &domain.Story{
		UserID:              userID,
		Title:               body.Title,
		Category:            body.Category,
		Situation:           body.Situation,
		Task:                body.Task,
		Action:              body.Action,
		Result:              body.Result,
		CompanyRelevance:    body.CompanyRelevance,
		LeadershipPrinciple: body.LeadershipPrinciple,
		Notes:               body.Notes,
	}
	if err := app.Repo.InsertStory(story); err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.writeJSON(w, http.StatusCreated, story)
}

type storyUpdateRequest struct {
	Title               *string `json:"title"`
	Category            *string `json:"category"`
	Situation           *string `json:"situation"`
	Task                *string `json:"task"`
	Action              *string `json:"action"`
	Result              *string `json:"result"`
	CompanyRelevance    *string `json:"companyRelevance"`
	LeadershipPrinciple *string `json:"leadershipPrinciple"`
	Notes               *string `json:"notes"`
	TimesPracticed      *int    `json:"timesPracticed"`
	Ready               *bool   `json:"ready"`
}

func (app *App) handleUpdateStory(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
	id, err := pathID(req)
	if err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}
	var body storyUpdateRequest
	if err := readJSON(req, &body); err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}

	story, err := app.Repo.UpdateStory(userID, id, domain.StoryUpdate{
		Title:               body.Title,
		Category:            body.Category,
		Situation:           body.Situation,
		Task:                body.Task,
		Action:              body.Action,
		Result:              body.Result,
		CompanyRelevance:    body.CompanyRelevance,
		LeadershipPrinciple: body.LeadershipPrinciple,
		Notes:               body.Notes,
		TimesPracticed:      body.TimesPracticed,
		Ready:               body.Ready,
	})
	if err != nil {
		app.writeError(w, http.StatusNotFound, err)
		return
	}
	app.writeJSON(w, http.StatusOK, story)
}

func (app *App) handleListWeeks(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
	weeks, err := app.Repo.GetWeeks(userID)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.writeJSON(w, http.StatusOK, weeks)
}

type weekUpdateRequest struct {
	Completed            *bool    `json:"completed"`
	CompletionPercentage *float64 `json:"completionPercentage"`
	Notes                *string  `json:"notes"`
}

func (app *App) handleUpdateWeek(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
	id, err := pathID(req)
	if err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}
	var body weekUpdateRequest
	if err := readJSON(req, &body); err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}

	week, err := app.Repo.UpdateWeek(userID, id, domain.WeekUpdate{
		Completed:            body.Completed,
		CompletionPercentage: body.CompletionPercentage,
		Notes:                body.Notes,
	})
	if err != nil {
		app.writeError(w, http.StatusNotFound, err)
		return
	}
	app.writeJSON(w, http.StatusOK, week)
}

func (app *App) handleListEntries(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
	entries, err := app.Repo.GetEntries(userID)
	if err != nil {
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.writeJSON(w, http.StatusOK, entries)
}

type journalRequest struct {
	Date            string `json:"date"` // YYYY-MM-DD, today when empty
	ProblemsSolved  int    `json:"problemsSolved"`
	StudyHours      int    `json:"studyHours"`
	TopicsCovered   string `json:"topicsCovered"`
	Accomplishments string `json:"accomplishments"`
	Challenges      string `json:"challenges"`
	TomorrowPlan    string `json:"tomorrowPlan"`
	ConfidenceLevel int    `json:"confidenceLevel"`
}

func (app *App) handleCreateEntry(w http.ResponseWriter, req *http.Request, userID uuid.UUID) {
	var body journalRequest
	if err := readJSON(req, &body); err != nil {
		app.writeError(w, http.StatusBadRequest, err)
		return
	}

	day := time.Now()
	if body.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", body.Date, time.Local)
		if err != nil {
			app.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid date: %w", err))
			return
		}
		day = parsed
	}
	if body.ConfidenceLevel < 0 || body.ConfidenceLevel > 10 {
		app.writeError(w, http.StatusBadRequest, errors.New("confidence level must be between 0 and 10"))
		return
	}

	entry := &domain.JournalEntry{
		UserID:          userID,
		Date:            day,
		ProblemsSolved:  body.ProblemsSolved,
		StudyHours:      body.StudyHours,
		TopicsCovered:   body.TopicsCovered,
		Accomplishments: body.Accomplishments,
		Challenges:      body.Challenges,
		TomorrowPlan:    body.TomorrowPlan,
		ConfidenceLevel: body.ConfidenceLevel,
	}
	if err := app.Repo.InsertEntry(entry); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			app.writeError(w, http.StatusConflict, err)
			return
		}
		app.writeError(w, http.StatusInternalServerError, err)
		return
	}
	app.writeJSON(w, http.StatusCreated, entry)
}
