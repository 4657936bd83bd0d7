package store

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/nvelliott/flyt/internal/models"
	"github.com/nvelliott/flyt/internal/workflow"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Enable foreign key constraints
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := runMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Clear seeded data for fresh tests
	_, err = db.Exec("DELETE FROM issues")
	if err != nil {
		t.Fatalf("Failed to clear issues: %v", err)
	}

	return db
}

// testWorkflowModel builds the workflow model used by repository tests
func testWorkflowModel(t *testing.T) *workflow.Model {
	t.Helper()
	m, err := workflow.NewModel(
		[]models.StatusDefinition{
			{Key: "todo", Name: "To Do", Type: models.StatusOpen},
			{Key: "doing", Name: "In Progress", Type: models.StatusInProgress},
			{Key: "done", Name: "Done", Type: models.StatusClosed},
		},
		[]models.CustomFieldDefinition{
			{Key: "severity", Name: "Severity", Kind: models.FieldDropdown, Options: []string{"low", "high"}},
			{Key: "estimate", Name: "Estimate", Kind: models.FieldNumber},
			{Key: "due", Name: "Due", Kind: models.FieldDate},
			{Key: "blocked", Name: "Blocked", Kind: models.FieldBoolean},
		},
		"todo",
	)
	if err != nil {
		t.Fatalf("Failed to build workflow model: %v", err)
	}
	return m
}

// setupTestRepo returns an IssueRepo over a fresh in-memory database
func setupTestRepo(t *testing.T) *IssueRepo {
	t.Helper()
	db := setupTestDB(t)
	t.Cleanup(func() { db.Close() })
	return NewIssueRepo(db, testWorkflowModel(t))
}
