package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nvelliott/flyt/internal/app"
	"github.com/nvelliott/flyt/internal/config"
	"github.com/nvelliott/flyt/internal/models"
	"github.com/nvelliott/flyt/internal/workflow"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// fakeStore is an in-memory IssueStore. Cheaper than sqlite for tests
// that only exercise the TUI layer, and it can be told to fail.
type fakeStore struct {
	issues  []models.Issue
	moveErr error
}

func (f *fakeStore) CreateIssue(_ context.Context, title, description, status string, storyPoints int, fields map[string]models.FieldValue) (*models.Issue, error) {
	issue := models.Issue{
		ID:          fmt.Sprintf("issue-%d", len(f.issues)+1),
		Title:       title,
		Description: description,
		Status:      status,
		StoryPoints: storyPoints,
		Fields:      fields,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.issues = append(f.issues, issue)
	return &issue, nil
}

func (f *fakeStore) GetAllIssues(context.Context) ([]models.Issue, error) {
	out := make([]models.Issue, len(f.issues))
	copy(out, f.issues)
	return out, nil
}

func (f *fakeStore) GetIssueByID(_ context.Context, id string) (*models.Issue, error) {
	for i := range f.issues {
		if f.issues[i].ID == id {
			issue := f.issues[i]
			return &issue, nil
		}
	}
	return nil, fmt.Errorf("issue not found: %s", id)
}

func (f *fakeStore) UpdateIssue(_ context.Context, id, title, description string, storyPoints int, fields map[string]models.FieldValue) error {
	for i := range f.issues {
		if f.issues[i].ID == id {
			f.issues[i].Title = title
			f.issues[i].Description = description
			f.issues[i].StoryPoints = storyPoints
			f.issues[i].Fields = fields
			return nil
		}
	}
	return fmt.Errorf("issue not found: %s", id)
}

func (f *fakeStore) UpdateIssueStatus(_ context.Context, id, status string) error {
	if f.moveErr != nil {
		return f.moveErr
	}
	for i := range f.issues {
		if f.issues[i].ID == id {
			f.issues[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("issue not found: %s", id)
}

func (f *fakeStore) DeleteIssue(_ context.Context, id string) error {
	for i := range f.issues {
		if f.issues[i].ID == id {
			f.issues = append(f.issues[:i], f.issues[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("issue not found: %s", id)
}

func testWorkflow(t *testing.T) *workflow.Model {
	t.Helper()
	m, err := workflow.NewModel(
		[]models.StatusDefinition{
			{Key: "todo", Name: "To Do", Type: models.StatusOpen},
			{Key: "doing", Name: "In Progress", Type: models.StatusInProgress},
			{Key: "done", Name: "Done", Type: models.StatusClosed},
		},
		[]models.CustomFieldDefinition{
			{Key: "estimate", Name: "Estimate", Kind: models.FieldNumber, Required: true},
			{Key: "severity", Name: "Severity", Kind: models.FieldDropdown, Options: []string{"low", "high"}},
		},
		"todo",
	)
	if err != nil {
		t.Fatalf("Failed to build workflow model: %v", err)
	}
	return m
}

func testConfig() *config.Config {
	return &config.Config{
		KeyMappings:   config.DefaultKeyMappings(),
		Theme:         config.DefaultTheme(),
		Drag:          config.DragConfig{MinDragCells: 2, ClickMaxMs: 300},
		Notifications: config.NotificationConfig{DismissAfterSeconds: 5},
	}
}

// testIssue builds an issue that satisfies the required-field gate
func testIssue(id, title, status string) models.Issue {
	return models.Issue{
		ID:     id,
		Title:  title,
		Status: status,
		Fields: map[string]models.FieldValue{
			"estimate": models.NumberValue(3),
		},
	}
}

// newTestModel wires a model over a fake store with a fixed 120x30
// terminal: three 33-cell column strides and five visible cards.
func newTestModel(t *testing.T, st *fakeStore) *Model {
	t.Helper()
	wm := testWorkflow(t)
	application := app.New(st, nil, wm)
	m := InitialModel(context.Background(), application, testConfig(), nil)
	m.UiState.SetWidth(120)
	m.UiState.SetHeight(30)
	return &m
}
