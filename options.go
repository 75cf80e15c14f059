package sdeprep

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// WithOptions applies a series of configuration functions to the app instance.
// Each option function can modify the app and return an error if it fails.
func (app *App) WithOptions(options ...func(*App) error) error {
	for _, option := range options {
		err := option(app)
		if err != nil {
			return fmt.Errorf("applying option on app : %w", err)
		}
	}
	return nil
}

// WithConfigDir configures the app to use the specified home directory.
// It creates the directory if it doesn't exist and initializes the
// configuration file using Viper, writing defaults on first run.
func WithConfigDir(appConfigDir string) func(*App) error {
	return func(app *App) error {
		_, err := os.ReadDir(appConfigDir)
		if err != nil {
			if os.IsNotExist(err) {
				log.Println("[*] creating config dir")
				err := os.MkdirAll(appConfigDir, 0700)
				if err != nil {
					return fmt.Errorf("creating config dir %s: %w", appConfigDir, err)
				}
			} else {
				return fmt.Errorf("checking if directory exists %s: %w", appConfigDir, err)
			}
		}
		// At this point, the directory exists or was created successfully
		app.ConfigDir = appConfigDir

		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(appConfigDir)
		v.SetDefault("first_run", true)
		v.SetDefault("default_address", "0.0.0.0")
		v.SetDefault("default_port", "8000")
		v.SetDefault("database_file", "sdeprep.db")
		v.SetDefault("content_dir", "guides")
		v.SetDefault("dev_reload", false)
		v.SetDefault("session_secret", "")
		err = v.ReadInConfig()
		if err != nil {
			// need to check if the error is config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				err = v.SafeWriteConfig()
				if err != nil {
					return fmt.Errorf("writing config file : %w", err)
				}
			} else {
				return fmt.Errorf("reading config file : %w", err)
			}
		}
		if err := v.Unmarshal(&app.Config); err != nil {
			return fmt.Errorf("unmarshalling config to struct : %w", err)
		}
		app.Config.viper = v
		app.Config.ConfigDir = appConfigDir
		v.Set("config_dir", appConfigDir)

		// Cookies need a stable secret across restarts, so one is generated
		// and persisted the first time through.
		if app.Config.SessionSecret == "" {
			app.Config.SessionSecret = uuid.NewString()
			v.Set("session_secret", app.Config.SessionSecret)
		}

		// Rewrite entire file from struct
		err = v.WriteConfig()
		if err != nil {
			return fmt.Errorf("writing config after unmarshalling : %w", err)
		}
		return nil
	}
}

// WithRepository wires an already-opened repository into the app. When unset,
// Bootstrap opens the SQLite database from the home directory itself.
func WithRepository(repo Repository) func(*App) error {
	return func(app *App) error {
		app.Repo = repo
		return nil
	}
}

// WithLogger sets the structured logger used by the app and its services.
func WithLogger(logger *zap.Logger) func(*App) error {
	return func(app *App) error {
		app.Logger = logger
		return nil
	}
}

// WithContentDir overrides the guide directory resolved from the config.
func WithContentDir(dir string) func(*App) error {
	return func(app *App) error {
		app.ContentDir = dir
		return nil
	}
}

// WithReload turns on dev reload: guides are re-read on filesystem changes
// and rendered pages are formatted for inspection.
func WithReload(enabled bool) func(*App) error {
	return func(app *App) error {
		app.Reload = enabled
		return nil
	}
}
