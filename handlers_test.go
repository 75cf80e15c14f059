package sdeprep

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

// setupTestServer bootstraps a full app in a temp home directory and returns
// the routed handler plus a valid session cookie.
func setupTestServer(t *testing.T) (*App, http.Handler, *http.Cookie) {
	t.Helper()

	app, listener := bootstrapTestApp(t, filepath.Join(t.TempDir(), "sde-prep"))
	listener.Close()
	t.Cleanup(func() { app.Close() })

	renderer, err := newRenderer(app.Logger, false)
	require.NoError(t, err)
	app.renderer = renderer
	app.sessions = newSessionManager(app.Config.SessionSecret)

	user, err := app.Repo.GetUserByEmail("demo@example.com")
	require.NoError(t, err)
	cookie, err := app.sessions.Issue(user.ID)
	require.NoError(t, err)

	return app, app.routes(), cookie
}

func doJSON(t *testing.T, handler http.Handler, method string, target string, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func TestOperationalEndpoints(t *testing.T) {
	_, handler, _ := setupTestServer(t)

	t.Run("should report health", func(t *testing.T) {
		res := doJSON(t, handler, http.MethodGet, "/health", "", nil)
		require.Equal(t, http.StatusOK, res.Code)
		require.JSONEq(t, `{"status":"ok"}`, res.Body.String())
	})

	t.Run("should point the root at the tracker", func(t *testing.T) {
		res := doJSON(t, handler, http.MethodGet, "/", "", nil)
		require.Equal(t, http.StatusOK, res.Code)
		require.Contains(t, res.Body.String(), "/tools/sde-prep")
	})

	t.Run("should serve static assets", func(t *testing.T) {
		res := doJSON(t, handler, http.MethodGet, "/static/styles.css", "", nil)
		require.Equal(t, http.StatusOK, res.Code)
		require.Equal(t, "text/css; charset=utf-8", res.Header().Get("Content-Type"))
	})
}

func TestSessions(t *testing.T) {
	_, handler, cookie := setupTestServer(t)

	t.Run("should reject API calls without a session", func(t *testing.T) {
		res := doJSON(t, handler, http.MethodGet, "/api/sde-prep/problems", "", nil)
		require.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("should issue a demo session", func(t *testing.T) {
		res := doJSON(t, handler, http.MethodPost, "/api/sde-prep/session", "", nil)
		require.Equal(t, http.StatusCreated, res.Code)

		cookies := res.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, sessionCookie, cookies[0].Name)

		authed := doJSON(t, handler, http.MethodGet, "/api/sde-prep/problems", "", cookies[0])
		require.Equal(t, http.StatusOK, authed.Code)
	})

	t.Run("should reject a tampered cookie", func(t *testing.T) {
		tampered := &http.Cookie{Name: cookie.Name, Value: cookie.Value + "x"}
		res := doJSON(t, handler, http.MethodGet, "/api/sde-prep/problems", "", tampered)
		require.Equal(t, http.StatusUnauthorized, res.Code)
	})
}

func TestProblemEndpoints(t *testing.T) {
	_, handler, cookie := setupTestServer(t)

	var problems []*domain.Problem
	res := doJSON(t, handler, http.MethodGet, "/api/sde-prep/problems", "", cookie)
	require.Equal(t, http.StatusOK, res.Code)
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &problems))
	require.NotEmpty(t, problems)

	t.Run("should filter by difficulty", func(t *testing.T) {
		res := doJSON(t, handler, http.MethodGet, "/api/sde-prep/problems?difficulty=HARD", "", cookie)
		require.Equal(t, http.StatusOK, res.Code)

		var hard []*domain.Problem
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &hard))
		require.NotEmpty(t, hard)
		for _, problem := range hard {
			require.Equal(t, domain.Hard, problem.Difficulty)
		}
	})

	t.Run("should reject an unknown difficulty", func(t *testing.T) {
		res := doJSON(t, handler, http.MethodGet, "/api/sde-prep/problems?difficulty=BRUTAL", "", cookie)
		require.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("should update status and stamp completion", func(t *testing.T) {
		target := "/api/sde-prep/problems/" + problems[0].ID.String()
		res := doJSON(t, handler, http.MethodPut, target, `{"status":"COMPLETED","notes":"clean solve"}`, cookie)
		require.Equal(t, http.StatusOK, res.Code)

		var updated domain.Problem
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &updated))
		require.Equal(t, domain.ProblemCompleted, updated.Status)
		require.False(t, updated.CompletedAt.IsZero())
		require.Equal(t, "clean solve", updated.Notes)
	})

	t.Run("should record a practice session", func(t *testing.T) {
		target := "/api/sde-prep/problems/" + problems[1].ID.String() + "/practice"
		res := doJSON(t, handler, http.MethodPost, target, `{"timeTakenMinutes":25,"solvedOnOwn":true}`, cookie)
		require.Equal(t, http.StatusCreated, res.Code)

		var updated domain.Problem
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &updated))
		require.Equal(t, 1, updated.Attempts)
		require.Equal(t, domain.ProblemCompleted, updated.Status)
	})

	t.Run("should 404 on an unknown problem", func(t *testing.T) {
		res := doJSON(t, handler, http.MethodPut, "/api/sde-prep/problems/00000000-0000-0000-0000-000000000000", `{"notes":"x"}`, cookie)
		require.Equal(t, http.StatusNotFound, res.Code)
	})
}

func TestTaskEndpoints(t *testing.T) {
	_, handler, cookie := setupTestServer(t)

	t.Run("should return week totals", func(t *testing.T) {
		res := doJSON(t, handler, http.MethodGet, "/api/sde-prep/daily-tasks?week=1", "", cookie)
		require.Equal(t, http.StatusOK, res.Code)

		var list taskListResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &list))
		require.Equal(t, 1, list.Week)
		require.Len(t, list.Tasks, 14)
		require.Greater(t, list.TotalMinutes, 0)
		require.Zero(t, list.CompletedCount)
	})

	t.Run("should toggle completion and refresh totals", func(t *testing.T) {
		res := doJSON(t, handler, http.MethodGet, "/api/sde-prep/daily-tasks?week=1&day=1", "", cookie)
		require.Equal(t, http.StatusOK, res.Code)
		var list taskListResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &list))
		require.NotEmpty(t, list.Tasks)

		target := "/api/sde-prep/daily-tasks/" + list.Tasks[0].ID.String()
		update := doJSON(t, handler, http.MethodPut, target, `{"completed":true,"actualMinutes":80}`, cookie)
		require.Equal(t, http.StatusOK, update.Code)

		var task domain.DailyTask
		require.NoError(t, json.Unmarshal(update.Body.Bytes(), &task))
		require.True(t, task.Completed)
		require.Equal(t, 80, task.ActualMinutes)
	})
}

func TestStoryEndpoints(t *testing.T) {
	_, handler, cookie := setupTestServer(t)

	t.Run("should create and update a story", func(t *testing.T) {
		res := doJSON(t, handler, http.MethodPost, "/api/sde-prep/behavioral",
			`{"title":"Deadline crunch","category":"Ownership","result":"Shipped on time"}`, cookie)
		require.Equal(t, http.StatusCreated, res.Code)

		var story domain.Story
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &story))
		require.False(t, story.Ready)

		target := "/api/sde-prep/behavioral/" + story.ID.String()
		update := doJSON(t, handler, http.MethodPut, target, `{"ready":true,"timesPracticed":3}`, cookie)
		require.Equal(t, http.StatusOK, update.Code)

		require.NoError(t, json.Unmarshal(update.Body.Bytes(), &story))
		require.True(t, story.Ready)
		require.Equal(t, 3, story.TimesPracticed)
	})

	t.Run("should require a title", func(t *testing.T) {
		res := doJSON(t, handler, http.MethodPost, "/api/sde-prep/behavioral", `{"category":"General"}`, cookie)
		require.Equal(t, http.StatusBadRequest, res.Code)
	})
}

func TestDashboardStats(t *testing.T) {
	_, handler, cookie := setupTestServer(t)

	res := doJSON(t, handler, http.MethodGet, "/api/sde-prep/dashboard/stats", "", cookie)
	require.Equal(t, http.StatusOK, res.Code)

	var snapshot map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &snapshot))
	for _, key := range []string{"problems", "blind75", "design", "behavioral", "currentWeek", "streak", "studyHours"} {
		require.Contains(t, snapshot, key)
	}
}

func TestPages(t *testing.T) {
	_, handler, _ := setupTestServer(t)

	pages := []string{
		"/tools/sde-prep",
		"/tools/sde-prep/prfaq",
		"/tools/sde-prep/dashboard",
		"/tools/sde-prep/problems",
		"/tools/sde-prep/daily-plan",
		"/tools/sde-prep/system-design",
		"/tools/sde-prep/behavioral",
		"/tools/sde-prep/study-plan",
		"/tools/sde-prep/guides",
	}
	for _, page := range pages {
		t.Run(page, func(t *testing.T) {
			res := doJSON(t, handler, http.MethodGet, page, "", nil)
			require.Equal(t, http.StatusOK, res.Code)
			require.Contains(t, res.Header().Get("Content-Type"), "text/html")
		})
	}

	t.Run("should serve a guide by slug", func(t *testing.T) {
		res := doJSON(t, handler, http.MethodGet, "/tools/sde-prep/guides/blind-75-strategy", "", nil)
		require.Equal(t, http.StatusOK, res.Code)
		require.Contains(t, res.Body.String(), "Blind 75")
	})

	t.Run("should 404 on an unknown guide", func(t *testing.T) {
		res := doJSON(t, handler, http.MethodGet, "/tools/sde-prep/guides/nope", "", nil)
		require.Equal(t, http.StatusNotFound, res.Code)
	})
}

func TestJournalEndpoints(t *testing.T) {
	_, handler, cookie := setupTestServer(t)

	t.Run("should create an entry once per day", func(t *testing.T) {
		body := `{"date":"2025-04-01","studyHours":3,"problemsSolved":2,"confidenceLevel":7}`
		res := doJSON(t, handler, http.MethodPost, "/api/sde-prep/journal", body, cookie)
		require.Equal(t, http.StatusCreated, res.Code)

		dup := doJSON(t, handler, http.MethodPost, "/api/sde-prep/journal", body, cookie)
		require.Equal(t, http.StatusConflict, dup.Code)
	})

	t.Run("should validate the confidence level", func(t *testing.T) {
		res := doJSON(t, handler, http.MethodPost, "/api/sde-prep/journal", `{"confidenceLevel":11}`, cookie)
		require.Equal(t, http.StatusBadRequest, res.Code)
	})
}
