package sdeprep

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/harsha-k-cheruku/sde-interview-prep/analytics"
	"github.com/harsha-k-cheruku/sde-interview-prep/content"
	"github.com/harsha-k-cheruku/sde-interview-prep/db"
	"github.com/harsha-k-cheruku/sde-interview-prep/seed"
)

// Bootstrap runs the linear launch sequence: environment check, activation,
// dependency preparation, then binding the listener. Every step is idempotent
// and any failure aborts the sequence immediately; the caller only serves
// when a listener comes back. Status lines for each stage go to stdout, and
// the starting banner prints before the bind so a bind failure surfaces right
// after it.
func (app *App) Bootstrap() (net.Listener, error) {
	fmt.Println("[1/4] Checking environment...")
	if app.Config == nil {
		return nil, errors.New("no configuration loaded, the app needs WithConfigDir")
	}
	if app.ContentDir == "" {
		app.ContentDir = filepath.Join(app.ConfigDir, app.Config.ContentDir)
	}
	written, err := content.WriteDefaults(app.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("provisioning content directory: %w", err)
	}
	if written > 0 {
		app.Logger.Info("default guides written", zap.Int("count", written))
	}

	fmt.Println("[2/4] Activating environment...")
	if app.Repo == nil {
		dbConn, err := db.New(filepath.Join(app.ConfigDir, app.Config.DatabaseFile))
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		app.Repo = db.NewTrackerRepo(dbConn)
	}

	fmt.Println("[3/4] Installing dependencies...")
	result, err := seed.Run(app.Repo, app.Logger)
	if err != nil {
		return nil, fmt.Errorf("seeding database: %w", err)
	}
	if result.Problems+result.Topics+result.Weeks+result.Tasks > 0 {
		app.Logger.Info("database seeded",
			zap.Int("problems", result.Problems),
			zap.Int("topics", result.Topics),
			zap.Int("weeks", result.Weeks),
			zap.Int("tasks", result.Tasks))
	}
	app.Guides, err = content.NewLibrary(app.ContentDir, app.Logger)
	if err != nil {
		return nil, fmt.Errorf("loading guides: %w", err)
	}
	app.Dashboard = analytics.NewService(app.Repo)
	if err := app.Config.MarkProvisioned(); err != nil {
		return nil, fmt.Errorf("clearing first-run flag: %w", err)
	}

	address, port := app.Config.DefaultAddress, app.Config.DefaultPort
	fmt.Printf("[4/4] Server starting at http://%s:%s/tools/sde-prep\n", address, port)
	return app.GetListener(address, port)
}
