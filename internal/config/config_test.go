package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nvelliott/flyt/internal/workflow"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.GrabIssue != "g" {
		t.Errorf("Default GrabIssue key = %s, want g", defaults.GrabIssue)
	}
	if defaults.Search != "/" {
		t.Errorf("Default Search key = %s, want /", defaults.Search)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)
	os.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Drag.MinDragCells != 1 {
		t.Errorf("Default MinDragCells = %d, want 1", cfg.Drag.MinDragCells)
	}
	if cfg.Notifications.DismissAfterSeconds != 5 {
		t.Errorf("Default DismissAfterSeconds = %d, want 5", cfg.Notifications.DismissAfterSeconds)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "flyt")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `key_mappings:
  quit: "x"
  grab_issue: "m"
drag:
  min_drag_cells: 2
  click_max_ms: 500
notifications:
  dismiss_after_seconds: 10
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.GrabIssue != "m" {
		t.Errorf("Loaded GrabIssue key = %s, want m", cfg.KeyMappings.GrabIssue)
	}
	// Unset keys fall back to defaults.
	if cfg.KeyMappings.AddIssue != "a" {
		t.Errorf("Unset AddIssue key = %s, want a (default)", cfg.KeyMappings.AddIssue)
	}
	if cfg.Drag.MinDragCells != 2 || cfg.Drag.ClickMaxMs != 500 {
		t.Errorf("Drag config = %+v, want {2 500}", cfg.Drag)
	}
	if cfg.Notifications.DismissAfterSeconds != 10 {
		t.Errorf("DismissAfterSeconds = %d, want 10", cfg.Notifications.DismissAfterSeconds)
	}
}

func TestParseWorkflow_Default(t *testing.T) {
	m, err := parseWorkflow([]byte(DefaultWorkflowYAML))
	if err != nil {
		t.Fatalf("parseWorkflow(default) failed: %v", err)
	}

	if got := len(m.Statuses()); got != 3 {
		t.Errorf("statuses = %d, want 3", got)
	}
	if m.DefaultStatus() != "todo" {
		t.Errorf("default status = %q, want todo", m.DefaultStatus())
	}
	if got := len(m.RequiredFields()); got != 1 {
		t.Errorf("required fields = %d, want 1", got)
	}
	s, ok := m.FindStatus("done")
	if !ok || s.Name != "Done" {
		t.Errorf("FindStatus(done) = (%+v, %v)", s, ok)
	}
}

func TestParseWorkflow_SchemaErrors(t *testing.T) {
	badType := `workflow:
  statuses:
    - key: todo
      name: To Do
      type: weird
`
	if _, err := parseWorkflow([]byte(badType)); !errors.Is(err, workflow.ErrInvalidStatusType) {
		t.Errorf("bad status type error = %v, want ErrInvalidStatusType", err)
	}

	badKind := `workflow:
  statuses:
    - key: todo
      name: To Do
      type: open
  fields:
    - key: x
      name: X
      kind: blob
`
	if _, err := parseWorkflow([]byte(badKind)); !errors.Is(err, workflow.ErrInvalidFieldKind) {
		t.Errorf("bad field kind error = %v, want ErrInvalidFieldKind", err)
	}
}

func TestLoadWorkflow_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workflow.yaml")
	if err := os.WriteFile(path, []byte(DefaultWorkflowYAML), 0o644); err != nil {
		t.Fatalf("Failed to write workflow file: %v", err)
	}

	if _, err := LoadWorkflow(path); err != nil {
		t.Errorf("LoadWorkflow() failed: %v", err)
	}
	if _, err := LoadWorkflow(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadWorkflow() should fail on a missing file")
	}
}
