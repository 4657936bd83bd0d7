package store

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nvelliott/flyt/internal/models"
	"github.com/nvelliott/flyt/internal/workflow"
)

// ============================================================================
// Issue Operations
// ============================================================================

// IssueRepo provides issue persistence backed by SQLite. Custom field
// values are decoded against the workflow model, so rows for fields
// that were removed from the config are skipped on read.
type IssueRepo struct {
	db    *sql.DB
	model *workflow.Model
}

var _ IssueStore = (*IssueRepo)(nil)

// NewIssueRepo creates a new IssueRepo wrapping the given database connection.
func NewIssueRepo(db *sql.DB, model *workflow.Model) *IssueRepo {
	return &IssueRepo{db: db, model: model}
}

// CreateIssue inserts a new issue and its custom field values
func (r *IssueRepo) CreateIssue(ctx context.Context, title, description, status string, storyPoints int, fields map[string]models.FieldValue) (*models.Issue, error) {
	id := uuid.NewString()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO issues (id, title, description, status, story_points)
		 VALUES (?, ?, ?, ?, ?)`,
		id, title, description, status, storyPoints,
	)
	if err != nil {
		return nil, err
	}

	if err := replaceFields(ctx, tx, id, fields); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return r.GetIssueByID(ctx, id)
}

// GetAllIssues retrieves every issue with its custom field values
func (r *IssueRepo) GetAllIssues(ctx context.Context) ([]models.Issue, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, status, story_points, created_at, updated_at
		 FROM issues
		 ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []models.Issue
	byID := make(map[string]int)
	for rows.Next() {
		var issue models.Issue
		if err := rows.Scan(
			&issue.ID, &issue.Title, &issue.Description,
			&issue.Status, &issue.StoryPoints, &issue.CreatedAt, &issue.UpdatedAt,
		); err != nil {
			return nil, err
		}
		byID[issue.ID] = len(issues)
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadFields(ctx, issues, byID); err != nil {
		return nil, err
	}

	return issues, nil
}

// GetIssueByID retrieves a single issue with its custom field values
func (r *IssueRepo) GetIssueByID(ctx context.Context, id string) (*models.Issue, error) {
	var issue models.Issue
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, status, story_points, created_at, updated_at
		 FROM issues WHERE id = ?`,
		id,
	).Scan(
		&issue.ID, &issue.Title, &issue.Description,
		&issue.Status, &issue.StoryPoints, &issue.CreatedAt, &issue.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrIssueNotFound
	}
	if err != nil {
		return nil, err
	}

	issues := []models.Issue{issue}
	if err := r.loadFields(ctx, issues, map[string]int{issue.ID: 0}); err != nil {
		return nil, err
	}

	return &issues[0], nil
}

// UpdateIssue updates an issue's editable attributes and replaces its field values
func (r *IssueRepo) UpdateIssue(ctx context.Context, id, title, description string, storyPoints int, fields map[string]models.FieldValue) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE issues
		 SET title = ?, description = ?, story_points = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		title, description, storyPoints, id,
	)
	if err != nil {
		return err
	}
	if err := requireRow(result); err != nil {
		return err
	}

	if err := replaceFields(ctx, tx, id, fields); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateIssueStatus moves an issue to a different status column
func (r *IssueRepo) UpdateIssueStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE issues
		 SET status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		status, id,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// DeleteIssue removes an issue; its field rows cascade
func (r *IssueRepo) DeleteIssue(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM issues WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// loadFields attaches custom field values to the given issues in place
func (r *IssueRepo) loadFields(ctx context.Context, issues []models.Issue, byID map[string]int) error {
	if len(issues) == 0 {
		return nil
	}

	defs := make(map[string]models.CustomFieldDefinition)
	for _, def := range r.model.Fields() {
		defs[def.Key] = def
	}

	rows, err := r.db.QueryContext(ctx, "SELECT issue_id, field_key, value FROM issue_fields")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var issueID, fieldKey, raw string
		if err := rows.Scan(&issueID, &fieldKey, &raw); err != nil {
			return err
		}

		idx, ok := byID[issueID]
		if !ok {
			continue
		}
		def, ok := defs[fieldKey]
		if !ok {
			// Field no longer declared in the workflow config
			continue
		}

		value, err := decodeFieldValue(def, raw)
		if err != nil {
			slog.Warn("skipping undecodable field value", "issue_id", issueID, "error", err)
			continue
		}

		if issues[idx].Fields == nil {
			issues[idx].Fields = make(map[string]models.FieldValue)
		}
		issues[idx].Fields[fieldKey] = value
	}

	return rows.Err()
}

// replaceFields rewrites the field rows for an issue inside a transaction.
// Empty values are not stored, which keeps IsEmpty symmetric across restarts.
func replaceFields(ctx context.Context, tx *sql.Tx, issueID string, fields map[string]models.FieldValue) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM issue_fields WHERE issue_id = ?", issueID)
	if err != nil {
		return err
	}

	for key, value := range fields {
		if value.IsEmpty() {
			continue
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO issue_fields (issue_id, field_key, value) VALUES (?, ?, ?)",
			issueID, key, encodeFieldValue(value),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// requireRow converts a zero-row update or delete into ErrIssueNotFound
func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrIssueNotFound
	}
	return nil
}
