package issue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nvelliott/flyt/internal/events"
	"github.com/nvelliott/flyt/internal/models"
	"github.com/nvelliott/flyt/internal/store"
	"github.com/nvelliott/flyt/internal/workflow"
)

// Service defines all issue-related business operations
type Service interface {
	// Read operations
	ListIssues(ctx context.Context) ([]models.Issue, error)
	ListIssuesFiltered(ctx context.Context, searchQuery string) ([]models.Issue, error)
	GetIssue(ctx context.Context, issueID string) (*models.Issue, error)

	// Write operations
	CreateIssue(ctx context.Context, req CreateIssueRequest) (*models.Issue, error)
	UpdateIssue(ctx context.Context, req UpdateIssueRequest) error
	DeleteIssue(ctx context.Context, issueID string) error

	// Issue movements
	MoveIssue(ctx context.Context, issueID, statusKey string) error
}

// CreateIssueRequest encapsulates all data needed to create an issue
type CreateIssueRequest struct {
	Title       string
	Description string
	Status      string // Empty means the workflow default
	StoryPoints int
	Fields      map[string]models.FieldValue
}

// UpdateIssueRequest encapsulates all data needed to update an issue
type UpdateIssueRequest struct {
	IssueID     string
	Title       string
	Description string
	StoryPoints int
	Fields      map[string]models.FieldValue
}

// service implements Service interface
type service struct {
	store       store.IssueStore
	eventClient events.Publisher
	model       *workflow.Model
}

// NewService creates a new issue service
func NewService(st store.IssueStore, eventClient events.Publisher, model *workflow.Model) Service {
	return &service{
		store:       st,
		eventClient: eventClient,
		model:       model,
	}
}

func (s *service) ListIssues(ctx context.Context) ([]models.Issue, error) {
	issues, err := s.store.GetAllIssues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	return issues, nil
}

// ListIssuesFiltered returns issues whose title or description contains
// the search query, case-insensitively. An empty query returns everything.
func (s *service) ListIssuesFiltered(ctx context.Context, searchQuery string) ([]models.Issue, error) {
	issues, err := s.ListIssues(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(searchQuery))
	if query == "" {
		return issues, nil
	}

	var matched []models.Issue
	for _, issue := range issues {
		if strings.Contains(strings.ToLower(issue.Title), query) ||
			strings.Contains(strings.ToLower(issue.Description), query) {
			matched = append(matched, issue)
		}
	}
	return matched, nil
}

func (s *service) GetIssue(ctx context.Context, issueID string) (*models.Issue, error) {
	if issueID == "" {
		return nil, ErrInvalidIssueID
	}
	return s.store.GetIssueByID(ctx, issueID)
}

// CreateIssue handles issue creation with validation and business rules
func (s *service) CreateIssue(ctx context.Context, req CreateIssueRequest) (*models.Issue, error) {
	if err := s.validateTitle(req.Title); err != nil {
		return nil, err
	}
	if req.StoryPoints < 0 {
		return nil, ErrNegativeStoryPoints
	}

	status := req.Status
	if status == "" {
		status = s.model.DefaultStatus()
	}
	if _, ok := s.model.FindStatus(status); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	if err := s.validateFields(req.Fields); err != nil {
		return nil, err
	}

	created, err := s.store.CreateIssue(ctx, req.Title, req.Description, status, req.StoryPoints, req.Fields)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	s.publishBoardEvent(events.Event{Type: events.EventBoardChanged, IssueID: created.ID})

	return created, nil
}

// UpdateIssue updates an issue's editable attributes and custom fields
func (s *service) UpdateIssue(ctx context.Context, req UpdateIssueRequest) error {
	if req.IssueID == "" {
		return ErrInvalidIssueID
	}
	if err := s.validateTitle(req.Title); err != nil {
		return err
	}
	if req.StoryPoints < 0 {
		return ErrNegativeStoryPoints
	}
	if err := s.validateFields(req.Fields); err != nil {
		return err
	}

	err := s.store.UpdateIssue(ctx, req.IssueID, req.Title, req.Description, req.StoryPoints, req.Fields)
	if err != nil {
		return fmt.Errorf("failed to update issue: %w", err)
	}

	s.publishBoardEvent(events.Event{Type: events.EventBoardChanged, IssueID: req.IssueID})

	return nil
}

func (s *service) DeleteIssue(ctx context.Context, issueID string) error {
	if issueID == "" {
		return ErrInvalidIssueID
	}

	if err := s.store.DeleteIssue(ctx, issueID); err != nil {
		return fmt.Errorf("failed to delete issue: %w", err)
	}

	s.publishBoardEvent(events.Event{Type: events.EventBoardChanged, IssueID: issueID})

	return nil
}

// MoveIssue persists a status change and notifies other instances.
// Workflow validation happens before this is called; the service only
// guards against keys that don't exist at all.
func (s *service) MoveIssue(ctx context.Context, issueID, statusKey string) error {
	if issueID == "" {
		return ErrInvalidIssueID
	}
	if _, ok := s.model.FindStatus(statusKey); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, statusKey)
	}

	if err := s.store.UpdateIssueStatus(ctx, issueID, statusKey); err != nil {
		return fmt.Errorf("failed to move issue: %w", err)
	}

	s.publishBoardEvent(events.Event{
		Type:      events.EventIssueMoved,
		IssueID:   issueID,
		StatusKey: statusKey,
		Timestamp: time.Now(),
	})

	return nil
}

func (s *service) validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if len(title) > 255 {
		return ErrTitleTooLong
	}
	return nil
}

// validateFields rejects values for fields the workflow does not declare
// or whose kind does not match the declaration.
func (s *service) validateFields(fields map[string]models.FieldValue) error {
	if len(fields) == 0 {
		return nil
	}

	defs := make(map[string]models.CustomFieldDefinition)
	for _, def := range s.model.Fields() {
		defs[def.Key] = def
	}

	for key, value := range fields {
		def, ok := defs[key]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
		if value.Kind != "" && value.Kind != def.Kind {
			return fmt.Errorf("field %q: value kind %q does not match declared kind %q",
				key, value.Kind, def.Kind)
		}
	}
	return nil
}

// publishBoardEvent sends a board event, retrying briefly. Delivery is
// best-effort; the write already succeeded.
func (s *service) publishBoardEvent(event events.Event) {
	if s.eventClient == nil {
		return
	}
	_ = events.PublishWithRetry(s.eventClient, event, 3)
}
