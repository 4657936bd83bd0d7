package store

import (
	"context"

	"github.com/nvelliott/flyt/internal/models"
)

// IssueStore defines the data operations needed by the TUI.
// This interface enables mocking for unit testing.
type IssueStore interface {
	CreateIssue(ctx context.Context, title, description, status string, storyPoints int, fields map[string]models.FieldValue) (*models.Issue, error)
	GetAllIssues(ctx context.Context) ([]models.Issue, error)
	GetIssueByID(ctx context.Context, id string) (*models.Issue, error)
	UpdateIssue(ctx context.Context, id, title, description string, storyPoints int, fields map[string]models.FieldValue) error
	UpdateIssueStatus(ctx context.Context, id, status string) error
	DeleteIssue(ctx context.Context, id string) error
}
