package sdeprep

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the launcher configuration persisted as config.yaml inside the
// app home directory. Defaults are written on first run and the file is
// rewritten from the struct after every load so new keys appear in place.
type Config struct {
	viper          *viper.Viper
	ConfigDir      string `mapstructure:"config_dir"`      // Current app home directory
	FirstRun       bool   `mapstructure:"first_run"`       // True until the first successful bootstrap
	DefaultAddress string `mapstructure:"default_address"` // Address the server binds to
	DefaultPort    string `mapstructure:"default_port"`    // Port the server binds to
	DatabaseFile   string `mapstructure:"database_file"`   // SQLite file name inside the home directory
	ContentDir     string `mapstructure:"content_dir"`     // Guide directory name inside the home directory
	DevReload      bool   `mapstructure:"dev_reload"`      // Reload guides and templates on change
	SessionSecret  string `mapstructure:"session_secret"`  // HMAC secret for session cookies
}

// Save rewrites the config file from the struct.
func (cfg *Config) Save() error {
	cfg.viper.Set("first_run", cfg.FirstRun)
	cfg.viper.Set("dev_reload", cfg.DevReload)
	if err := cfg.viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	return nil
}

// MarkProvisioned clears the first-run flag after a successful bootstrap.
func (cfg *Config) MarkProvisioned() error {
	if !cfg.FirstRun {
		return nil
	}
	cfg.FirstRun = false
	return cfg.Save()
}
