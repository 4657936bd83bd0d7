package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nvelliott/flyt/internal/models"
)

func TestCreateAndGetIssue(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	created, err := repo.CreateIssue(ctx, "Fix login", "Session expires early", "todo", 3,
		map[string]models.FieldValue{
			"severity": models.OptionValue("high"),
			"estimate": models.NumberValue(2.5),
			"due":      models.DateValue(due),
			"blocked":  models.BoolValue(false),
		})
	if err != nil {
		t.Fatalf("Failed to create issue: %v", err)
	}
	if created.ID == "" {
		t.Error("Created issue should have an id")
	}
	if created.Status != "todo" || created.StoryPoints != 3 {
		t.Errorf("Created issue = status %q points %d, want todo 3", created.Status, created.StoryPoints)
	}

	got, err := repo.GetIssueByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("Failed to get issue: %v", err)
	}
	if got.Field("severity").Option != "high" {
		t.Errorf("severity = %q, want high", got.Field("severity").Option)
	}
	if got.Field("estimate").Number != 2.5 {
		t.Errorf("estimate = %v, want 2.5", got.Field("estimate").Number)
	}
	if !got.Field("due").Date.Equal(due) {
		t.Errorf("due = %v, want %v", got.Field("due").Date, due)
	}
	// Booleans round-trip even when false
	v := got.Field("blocked")
	if v.Kind != models.FieldBoolean || v.Bool {
		t.Errorf("blocked = %+v, want populated false", v)
	}
}

func TestGetAllIssues(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	if _, err := repo.CreateIssue(ctx, "First", "", "todo", 0, nil); err != nil {
		t.Fatalf("Failed to create issue: %v", err)
	}
	if _, err := repo.CreateIssue(ctx, "Second", "", "done", 0, nil); err != nil {
		t.Fatalf("Failed to create issue: %v", err)
	}

	issues, err := repo.GetAllIssues(ctx)
	if err != nil {
		t.Fatalf("Failed to get issues: %v", err)
	}
	if len(issues) != 2 {
		t.Fatalf("Got %d issues, want 2", len(issues))
	}
}

func TestUpdateIssueStatus(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	issue, err := repo.CreateIssue(ctx, "Move me", "", "todo", 0, nil)
	if err != nil {
		t.Fatalf("Failed to create issue: %v", err)
	}

	if err := repo.UpdateIssueStatus(ctx, issue.ID, "doing"); err != nil {
		t.Fatalf("Failed to update status: %v", err)
	}

	got, err := repo.GetIssueByID(ctx, issue.ID)
	if err != nil {
		t.Fatalf("Failed to get issue: %v", err)
	}
	if got.Status != "doing" {
		t.Errorf("Status = %q, want doing", got.Status)
	}
}

func TestUpdateIssueReplacesFields(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	issue, err := repo.CreateIssue(ctx, "Edit me", "", "todo", 1,
		map[string]models.FieldValue{"severity": models.OptionValue("low")})
	if err != nil {
		t.Fatalf("Failed to create issue: %v", err)
	}

	// Clearing severity and setting estimate should replace the field rows
	err = repo.UpdateIssue(ctx, issue.ID, "Edited", "now with details", 5,
		map[string]models.FieldValue{
			"severity": models.OptionValue(""),
			"estimate": models.NumberValue(8),
		})
	if err != nil {
		t.Fatalf("Failed to update issue: %v", err)
	}

	got, err := repo.GetIssueByID(ctx, issue.ID)
	if err != nil {
		t.Fatalf("Failed to get issue: %v", err)
	}
	if got.Title != "Edited" || got.StoryPoints != 5 {
		t.Errorf("Issue = %q/%d, want Edited/5", got.Title, got.StoryPoints)
	}
	if !got.Field("severity").IsEmpty() {
		t.Error("Cleared severity should read back empty")
	}
	if got.Field("estimate").Number != 8 {
		t.Errorf("estimate = %v, want 8", got.Field("estimate").Number)
	}
}

func TestDeleteIssueCascadesFields(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	issue, err := repo.CreateIssue(ctx, "Remove me", "", "todo", 0,
		map[string]models.FieldValue{"severity": models.OptionValue("high")})
	if err != nil {
		t.Fatalf("Failed to create issue: %v", err)
	}

	if err := repo.DeleteIssue(ctx, issue.ID); err != nil {
		t.Fatalf("Failed to delete issue: %v", err)
	}

	if _, err := repo.GetIssueByID(ctx, issue.ID); !errors.Is(err, ErrIssueNotFound) {
		t.Errorf("Get after delete = %v, want ErrIssueNotFound", err)
	}

	var count int
	if err := repo.db.QueryRow("SELECT COUNT(*) FROM issue_fields WHERE issue_id = ?", issue.ID).Scan(&count); err != nil {
		t.Fatalf("Failed to count field rows: %v", err)
	}
	if count != 0 {
		t.Errorf("Field rows after delete = %d, want 0 (cascade)", count)
	}
}

func TestNotFoundSentinels(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	if err := repo.UpdateIssueStatus(ctx, "missing", "todo"); !errors.Is(err, ErrIssueNotFound) {
		t.Errorf("UpdateIssueStatus(missing) = %v, want ErrIssueNotFound", err)
	}
	if err := repo.DeleteIssue(ctx, "missing"); !errors.Is(err, ErrIssueNotFound) {
		t.Errorf("DeleteIssue(missing) = %v, want ErrIssueNotFound", err)
	}
	if err := repo.UpdateIssue(ctx, "missing", "t", "", 0, nil); !errors.Is(err, ErrIssueNotFound) {
		t.Errorf("UpdateIssue(missing) = %v, want ErrIssueNotFound", err)
	}
}

func TestUnknownFieldRowsAreSkipped(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	issue, err := repo.CreateIssue(ctx, "Legacy", "", "todo", 0, nil)
	if err != nil {
		t.Fatalf("Failed to create issue: %v", err)
	}

	// Simulate a field that was later removed from the workflow config
	_, err = repo.db.Exec(
		"INSERT INTO issue_fields (issue_id, field_key, value) VALUES (?, ?, ?)",
		issue.ID, "retired_field", "whatever",
	)
	if err != nil {
		t.Fatalf("Failed to insert orphan field row: %v", err)
	}

	got, err := repo.GetIssueByID(ctx, issue.ID)
	if err != nil {
		t.Fatalf("Failed to get issue: %v", err)
	}
	if got.Field("retired_field").Kind != "" {
		t.Error("Rows for undeclared fields should be skipped")
	}
}

func TestSeedSampleIssues(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	// Table was cleared by setup; seeding should repopulate it once
	if err := seedSampleIssues(db); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM issues").Scan(&count); err != nil {
		t.Fatalf("Failed to count issues: %v", err)
	}
	if count == 0 {
		t.Fatal("Seeding an empty table should insert sample issues")
	}

	// A second run must not duplicate
	if err := seedSampleIssues(db); err != nil {
		t.Fatalf("Failed to re-seed: %v", err)
	}
	var again int
	if err := db.QueryRow("SELECT COUNT(*) FROM issues").Scan(&again); err != nil {
		t.Fatalf("Failed to count issues: %v", err)
	}
	if again != count {
		t.Errorf("Re-seed changed count %d -> %d", count, again)
	}
}
