// Package config loads the user configuration and the project
// workflow schema from YAML files.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DragConfig tunes gesture recognition. A pointer gesture that moved
// under MinDragCells cells and lasted under ClickMaxMs milliseconds is
// treated as a click (select), not a drag.
type DragConfig struct {
	MinDragCells int `yaml:"min_drag_cells"`
	ClickMaxMs   int `yaml:"click_max_ms"`
}

// NotificationConfig tunes the transient error/info banners
type NotificationConfig struct {
	DismissAfterSeconds int `yaml:"dismiss_after_seconds"`
}

// Config represents the application configuration
type Config struct {
	KeyMappings   KeyMappings        `yaml:"key_mappings"`
	Theme         Theme              `yaml:"theme"`
	Drag          DragConfig         `yaml:"drag"`
	Notifications NotificationConfig `yaml:"notifications"`
}

// DismissAfter returns the notification auto-dismiss interval
func (c *Config) DismissAfter() time.Duration {
	return time.Duration(c.Notifications.DismissAfterSeconds) * time.Second
}

// defaultConfig returns a config with every value at its default
func defaultConfig() *Config {
	return &Config{
		KeyMappings:   DefaultKeyMappings(),
		Theme:         DefaultTheme(),
		Drag:          DragConfig{MinDragCells: 1, ClickMaxMs: 300},
		Notifications: NotificationConfig{DismissAfterSeconds: 5},
	}
}

// Load reads config from the user's config directory. A missing file
// yields the defaults; a malformed file is an error.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

// Save writes the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the platform config file path,
// honoring XDG_CONFIG_HOME
func getConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "flyt", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "flyt", "config.yaml"), nil
}

// applyDefaults fills in any missing values with defaults
func (c *Config) applyDefaults() {
	defaults := defaultConfig()

	km := &c.KeyMappings
	dkm := defaults.KeyMappings
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&km.AddIssue, dkm.AddIssue)
	fill(&km.EditIssue, dkm.EditIssue)
	fill(&km.DeleteIssue, dkm.DeleteIssue)
	fill(&km.ViewIssue, dkm.ViewIssue)
	fill(&km.GrabIssue, dkm.GrabIssue)
	fill(&km.MoveIssueLeft, dkm.MoveIssueLeft)
	fill(&km.MoveIssueRight, dkm.MoveIssueRight)
	fill(&km.MoveIssueUp, dkm.MoveIssueUp)
	fill(&km.MoveIssueDown, dkm.MoveIssueDown)
	fill(&km.PrevColumn, dkm.PrevColumn)
	fill(&km.NextColumn, dkm.NextColumn)
	fill(&km.PrevIssue, dkm.PrevIssue)
	fill(&km.NextIssue, dkm.NextIssue)
	fill(&km.Search, dkm.Search)
	fill(&km.ShowHelp, dkm.ShowHelp)
	fill(&km.Quit, dkm.Quit)

	theme := defaults.Theme
	theme.MergeFrom(c.Theme)
	c.Theme = theme

	if c.Drag.MinDragCells <= 0 {
		c.Drag.MinDragCells = defaults.Drag.MinDragCells
	}
	if c.Drag.ClickMaxMs <= 0 {
		c.Drag.ClickMaxMs = defaults.Drag.ClickMaxMs
	}
	if c.Notifications.DismissAfterSeconds <= 0 {
		c.Notifications.DismissAfterSeconds = defaults.Notifications.DismissAfterSeconds
	}
}
