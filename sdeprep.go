// Package sdeprep provides a self-hosted interview preparation tracker with
// SQLite storage and an embedded web UI. It is designed to be decoupled from
// the command-line entry point and provides methods to bootstrap the
// environment, open the database, and serve the tracker over HTTP.
//
// The core functionality includes:
//   - Idempotent bootstrap of the app home directory, config, and database
//   - Problem tracking with practice sessions across the Blind 75 catalog
//   - System design topics, behavioral stories, and a 12-week curriculum
//   - Daily journal with streak tracking and a dashboard snapshot
//   - Markdown study guides rendered from the content directory
package sdeprep

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/harsha-k-cheruku/sde-interview-prep/analytics"
	"github.com/harsha-k-cheruku/sde-interview-prep/content"
	"github.com/harsha-k-cheruku/sde-interview-prep/domain"
)

// Repository defines the methods consumed by the app to interact with the
// SQLite backend. It composes the per-track repositories plus lifecycle
// control.
type Repository interface {
	domain.UserRepository
	domain.ProblemRepository
	domain.DesignRepository
	domain.StoryRepository
	domain.PlanRepository
	domain.JournalRepository
	domain.StatsRepository
	Close() error
}

// App is the main struct that orchestrates the tracker: configuration,
// storage, analytics, content, and the HTTP surface. It serves as the central
// coordinator between the launcher and the web UI.
type App struct {
	ConfigDir  string             // The app home directory
	Config     *Config            // The launcher configuration
	Repo       Repository         // DB Repository Interface
	Logger     *zap.Logger        // Structured logger
	Guides     *content.Library   // Loaded study guides
	Dashboard  *analytics.Service // Dashboard snapshot builder
	ContentDir string             // Resolved guide directory
	Reload     bool               // Dev reload flag
	Addr       string             // Address the server is bound to
	Port       string             // Port the server is bound to

	server   *http.Server
	renderer *renderer
	sessions *sessionManager
}

// New creates a new App instance with default configuration and applies any
// provided options.
func New(options ...func(*App) error) (*App, error) {
	app := &App{
		Logger: zap.NewNop(),
	}
	err := app.WithOptions(options...)
	if err != nil {
		return nil, err
	}
	return app, nil
}
