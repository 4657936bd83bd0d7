package store

import (
	"database/sql"

	"github.com/google/uuid"
)

// runMigrations creates the database schema and seeds sample data if needed
func runMigrations(db *sql.DB) error {
	// Create issues table. Status keys reference the workflow config,
	// not a table, so renaming a status in config does not orphan rows.
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS issues (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL,
			story_points INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Create issue_fields table for custom field values
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS issue_fields (
			issue_id TEXT NOT NULL,
			field_key TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (issue_id, field_key),
			FOREIGN KEY (issue_id) REFERENCES issues(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create index for efficient status grouping
	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_issues_status
		ON issues(status, updated_at)
	`)
	if err != nil {
		return err
	}

	return seedSampleIssues(db)
}

// seedSampleIssues inserts a few starter issues if the issues table is empty
func seedSampleIssues(db *sql.DB) error {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM issues").Scan(&count)
	if err != nil {
		return err
	}

	// If issues exist, don't seed
	if count > 0 {
		return nil
	}

	samples := []struct {
		title       string
		description string
		status      string
	}{
		{"Welcome to flyt", "Drag this card between columns, or grab it with the keyboard.", "todo"},
		{"Configure your workflow", "Edit ~/.config/flyt/workflow.yaml to define statuses and custom fields.", "todo"},
	}

	for _, s := range samples {
		_, err := db.Exec(
			"INSERT INTO issues (id, title, description, status) VALUES (?, ?, ?, ?)",
			uuid.NewString(), s.title, s.description, s.status,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
