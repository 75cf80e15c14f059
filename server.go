package sdeprep

import (
	"context"
	"embed"
	"fmt"
	"net"
	"net/http"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFS embed.FS

const (
	// pagePrefix roots every page of the tracker UI.
	pagePrefix = "/tools/sde-prep"
	// apiPrefix roots the JSON and partial endpoints.
	apiPrefix = "/api/sde-prep"
)

// GetListener binds the TCP listener the server will accept on and records
// the bound address on the app.
func (app *App) GetListener(address string, port string) (net.Listener, error) {
	rawListener, err := net.Listen("tcp", net.JoinHostPort(address, port))
	if err != nil {
		return nil, fmt.Errorf("setting up listener on address:port %s:%s : %w", address, port, err)
	}
	app.Addr = address
	app.Port = port
	app.Logger.Info("listener bound", zap.String("address", address), zap.String("port", port))
	return rawListener, nil
}

// Serve runs the HTTP server on the listener, blocking until the server
// stops. When reload is on, the guide watcher runs alongside the server.
func (app *App) Serve(listener net.Listener) error {
	renderer, err := newRenderer(app.Logger, app.Reload)
	if err != nil {
		return err
	}
	app.renderer = renderer
	app.sessions = newSessionManager(app.Config.SessionSecret)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if app.Reload && app.Guides != nil {
		go func() {
			if err := app.Guides.Watch(ctx); err != nil {
				app.Logger.Warn("guide watcher stopped", zap.Error(err))
			}
		}()
	}

	app.server = &http.Server{Handler: app.routes()}
	return app.server.Serve(listener)
}

// Close releases the server and the repository.
func (app *App) Close() error {
	if app.server != nil {
		if err := app.server.Close(); err != nil {
			return fmt.Errorf("closing server: %w", err)
		}
	}
	if app.Repo != nil {
		if err := app.Repo.Close(); err != nil {
			return fmt.Errorf("closing repository: %w", err)
		}
	}
	return nil
}

func (app *App) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("GET "+pagePrefix+"/{$}", app.handleLanding)
	mux.HandleFunc("GET "+pagePrefix+"/prfaq", app.handlePRFAQ)
	mux.HandleFunc("GET "+pagePrefix+"/dashboard", app.handleDashboardPage)
	mux.HandleFunc("GET "+pagePrefix+"/problems", app.handleProblemsPage)
	mux.HandleFunc("GET "+pagePrefix+"/daily-plan", app.handleDailyPlanPage)
	mux.HandleFunc("GET "+pagePrefix+"/system-design", app.handleSystemDesignPage)
	mux.HandleFunc("GET "+pagePrefix+"/behavioral", app.handleBehavioralPage)
	mux.HandleFunc("GET "+pagePrefix+"/study-plan", app.handleStudyPlanPage)
	mux.HandleFunc("GET "+pagePrefix+"/guides", app.handleGuidesPage)
	mux.HandleFunc("GET "+pagePrefix+"/guides/{slug}", app.handleGuidePage)

	// API
	mux.HandleFunc("POST "+apiPrefix+"/session", app.handleCreateSession)
	mux.HandleFunc("GET "+apiPrefix+"/dashboard/stats", app.withUser(app.handleDashboardStats))
	mux.HandleFunc("GET "+apiPrefix+"/problems", app.withUser(app.handleListProblems))
	mux.HandleFunc("PUT "+apiPrefix+"/problems/{id}", app.withUser(app.handleUpdateProblem))
	mux.HandleFunc("POST "+apiPrefix+"/problems/{id}/practice", app.withUser(app.handleRecordPractice))
	mux.HandleFunc("GET "+apiPrefix+"/daily-tasks", app.withUser(app.handleListTasks))
	mux.HandleFunc("PUT "+apiPrefix+"/daily-tasks/{id}", app.withUser(app.handleUpdateTask))
	mux.HandleFunc("GET "+apiPrefix+"/system-design", app.withUser(app.handleListTopics))
	mux.HandleFunc("PUT "+apiPrefix+"/system-design/{id}", app.withUser(app.handleUpdateTopic))
	mux.HandleFunc("GET "+apiPrefix+"/behavioral", app.withUser(app.handleListStories))
	mux.HandleFunc("POST "+apiPrefix+"/behavioral", app.withUser(app.handleCreateStory))
	mux.HandleFunc("PUT "+apiPrefix+"/behavioral/{id}", app.withUser(app.handleUpdateStory))
	mux.HandleFunc("GET "+apiPrefix+"/weeks", app.withUser(app.handleListWeeks))
	mux.HandleFunc("PUT "+apiPrefix+"/weeks/{id}", app.withUser(app.handleUpdateWeek))
	mux.HandleFunc("GET "+apiPrefix+"/journal", app.withUser(app.handleListEntries))
	mux.HandleFunc("POST "+apiPrefix+"/journal", app.withUser(app.handleCreateEntry))

	// Operational
	mux.HandleFunc("GET /health", app.handleHealth)
	mux.HandleFunc("GET /static/", app.handleStatic)
	mux.HandleFunc("GET /{$}", app.handleRoot)

	return mux
}

// handleStatic serves the embedded assets. Content types come from mimetype
// sniffing rather than extension mapping.
func (app *App) handleStatic(w http.ResponseWriter, req *http.Request) {
	name := strings.TrimPrefix(req.URL.Path, "/")
	if strings.Contains(name, "..") {
		http.NotFound(w, req)
		return
	}

	data, err := staticFS.ReadFile(name)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	contentType := mimetype.Detect(data).String()
	// Sniffing cannot tell css and javascript from plain text.
	switch path.Ext(name) {
	case ".css":
		contentType = "text/css; charset=utf-8"
	case ".js":
		contentType = "text/javascript; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}
