package tui

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nvelliott/flyt/internal/app"
	"github.com/nvelliott/flyt/internal/board"
	"github.com/nvelliott/flyt/internal/config"
	"github.com/nvelliott/flyt/internal/dnd"
	"github.com/nvelliott/flyt/internal/events"
	"github.com/nvelliott/flyt/internal/models"
	"github.com/nvelliott/flyt/internal/tui/components"
	"github.com/nvelliott/flyt/internal/tui/state"
	"github.com/nvelliott/flyt/internal/workflow"
)

// dbTimeout is the per-operation deadline for service calls made from
// the event loop
const dbTimeout = 5 * time.Second

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	SearchState       *state.SearchState
	FormState         *state.FormState
	NotificationState *state.NotificationState

	// MouseState tracks the raw press/motion gesture until it is
	// classified as a click or a drag
	MouseState *state.DragState
	Thresholds dnd.Thresholds

	// Drag owns the board state and arbitrates drops
	Drag *dnd.Controller

	// DetailIssue is the issue shown in the read-only detail view
	DetailIssue *models.Issue

	EventChan           <-chan events.Event
	SubscriptionStarted bool
}

// InitialModel creates and initializes the TUI model with data loaded
// through the application container.
func InitialModel(ctx context.Context, application *app.App, cfg *config.Config, eventChan <-chan events.Event) Model {
	m := Model{
		Ctx:               ctx,
		App:               application,
		Config:            cfg,
		UiState:           state.NewUIState(),
		SearchState:       state.NewSearchState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		MouseState:        state.NewDragState(),
		Thresholds: dnd.Thresholds{
			MinDragCells:     cfg.Drag.MinDragCells,
			MaxClickDuration: time.Duration(cfg.Drag.ClickMaxMs) * time.Millisecond,
		},
		EventChan: eventChan,
	}

	issues, err := application.IssueService.ListIssues(ctx)
	if err != nil {
		slog.Error("loading issues failed", "error", err)
		issues = []models.Issue{}
	}

	wm := application.Model()
	boardState := board.Group(issues, wm, wm.StatusKeys())

	m.Drag = dnd.NewController(wm, boardState,
		m.persistMove,
		m.reportValidationErrors,
	)

	return m
}

// Init initializes the Bubble Tea application.
// Required by the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// Workflow returns the configured workflow model
func (m *Model) Workflow() *workflow.Model {
	return m.App.Model()
}

// Board returns the current board state
func (m *Model) Board() board.State {
	return m.Drag.State()
}

// DbContext returns a child context with the standard service deadline
func (m *Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, dbTimeout)
}

// persistMove saves an accepted cross-column move. An error here makes
// the drag controller roll the optimistic board state back.
func (m *Model) persistMove(issueID, statusKey string) error {
	ctx, cancel := m.DbContext()
	defer cancel()
	return m.App.IssueService.MoveIssue(ctx, issueID, statusKey)
}

// reportValidationErrors surfaces rejected-move errors as notifications
func (m *Model) reportValidationErrors(errs []models.ValidationError) {
	for _, e := range errs {
		m.NotificationState.Add(state.LevelError, e.Message)
	}
}

// ReloadBoard rebuilds the board from the store, honoring the active
// search filter. Any in-flight drag gesture is cancelled.
func (m *Model) ReloadBoard() {
	ctx, cancel := m.DbContext()
	defer cancel()

	var issues []models.Issue
	var err error
	if m.SearchState.IsActive && m.SearchState.Query != "" {
		issues, err = m.App.IssueService.ListIssuesFiltered(ctx, m.SearchState.Query)
	} else {
		issues, err = m.App.IssueService.ListIssues(ctx)
	}
	if err != nil {
		slog.Error("reloading issues failed", "error", err)
		m.NotificationState.Add(state.LevelError, "Could not reload the board")
		return
	}

	wm := m.Workflow()
	m.Drag.SetState(board.Group(issues, wm, wm.StatusKeys()))
	m.ClampSelection()
}

// ClampSelection keeps column/issue selection valid after the board changed
func (m *Model) ClampSelection() {
	keys := m.Board().Keys()
	m.UiState.ClampSelection(len(keys), len(m.CurrentIssues()))
}

// CurrentColumnKey returns the status key of the selected column
// ("" when the board has no columns)
func (m *Model) CurrentColumnKey() string {
	keys := m.Board().Keys()
	idx := m.UiState.SelectedColumn()
	if idx < 0 || idx >= len(keys) {
		return ""
	}
	return keys[idx]
}

// CurrentIssues returns the issues of the selected column
func (m *Model) CurrentIssues() []models.Issue {
	key := m.CurrentColumnKey()
	if key == "" {
		return nil
	}
	return m.Board().Column(key)
}

// CurrentIssue returns the selected issue, or nil when the selected
// column is empty.
func (m *Model) CurrentIssue() *models.Issue {
	issues := m.CurrentIssues()
	idx := m.UiState.SelectedIssue()
	if idx < 0 || idx >= len(issues) {
		return nil
	}
	return &issues[idx]
}

// ColumnHeight returns the fixed outer height of board columns for the
// current terminal size
func (m *Model) ColumnHeight() int {
	// Status bar (1) plus one blank spacer line below the board
	h := m.UiState.Height() - 2
	return max(h, components.ColumnOverhead+components.CardHeight)
}

// VisibleIssueCount returns how many cards fit in a column right now
func (m *Model) VisibleIssueCount() int {
	return components.VisibleCardCount(m.ColumnHeight())
}

// HandleServiceError logs a failed service call and surfaces it as an
// error notification
func (m *Model) HandleServiceError(err error, operation string) {
	slog.Error(operation+" failed", "error", err)
	m.NotificationState.Add(state.LevelError, operation+" failed: "+err.Error())
}
