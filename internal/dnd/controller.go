// Package dnd implements the drag-and-drop engine for the kanban
// board: a small state machine tracking the active gesture, live
// drop-target validity while hovering, and the accept/reject decision
// on drop. The board state is updated optimistically; persistence
// failures roll the move back.
package dnd

import (
	"log/slog"

	"github.com/nvelliott/flyt/internal/board"
	"github.com/nvelliott/flyt/internal/models"
	"github.com/nvelliott/flyt/internal/workflow"
)

// Phase is the drag state machine phase
type Phase int

const (
	Idle Phase = iota
	Dragging
)

// Mover receives each accepted cross-column move, exactly once per
// move and never for same-column reorders. It is expected to persist
// the change; a returned error rolls the optimistic board state back.
type Mover func(issueID, statusKey string) error

// Reporter receives the validation errors of a rejected move so the
// presentation layer can surface them.
type Reporter func(errs []models.ValidationError)

// OutcomeKind classifies what a drop did
type OutcomeKind int

const (
	OutcomeNone     OutcomeKind = iota // no-op drop (no target, cancelled, or dropped on itself)
	OutcomeReorder                     // same-column reorder, no validation, no notification
	OutcomeMove                        // accepted cross-column move, mover notified
	OutcomeRejected                    // validation rejected the move, board untouched
)

// Outcome describes the result of ending a drag gesture
type Outcome struct {
	Kind      OutcomeKind
	IssueID   string
	TargetKey string
	Errors    []models.ValidationError
}

// Controller tracks the active drag gesture and arbitrates drops.
// It owns the board state for the lifetime of one board view; the TUI
// replaces the state wholesale when the issue collection changes.
type Controller struct {
	model  *workflow.Model
	state  board.State
	onMove Mover
	report Reporter

	phase   Phase
	session Session

	hoverChecked bool
	hoverValid   bool
}

// NewController builds a controller over an initial board state.
// Both callbacks are optional; nil disables the side effect.
func NewController(m *workflow.Model, state board.State, onMove Mover, report Reporter) *Controller {
	return &Controller{
		model:  m,
		state:  state,
		onMove: onMove,
		report: report,
	}
}

// State returns the current board state
func (c *Controller) State() board.State {
	return c.state
}

// SetState replaces the board state after an external rebuild.
// An in-flight gesture is cancelled: its issue may no longer exist.
func (c *Controller) SetState(state board.State) {
	c.state = state
	c.Cancel()
}

// Dragging reports whether a gesture is active
func (c *Controller) Dragging() bool {
	return c.phase == Dragging
}

// Session returns the active drag session (zero value when idle)
func (c *Controller) Session() Session {
	return c.session
}

// HoverValidity reports the live validity of the hovered drop target.
// The second return is false while no status-changing target is hovered.
func (c *Controller) HoverValidity() (valid, active bool) {
	return c.hoverValid, c.hoverChecked
}

// Start begins a drag gesture for the given issue. Starting while a
// gesture is active, or for an issue not on the board, is ignored.
func (c *Controller) Start(issueID string) bool {
	if c.phase != Idle {
		return false
	}
	if _, ok := c.state.Find(issueID); !ok {
		return false
	}
	c.phase = Dragging
	c.session = Session{IssueID: issueID}
	c.hoverChecked = false
	return true
}

// Over updates the hovered drop target while dragging. The overID may
// name a column (status key) or another issue; an issue resolves to the
// column holding it. Hovering a target that would not change the
// dragged issue's status clears the hover instead.
//
// Validity is computed read-only through the workflow engine and drives
// the UI affordance only; nothing mutates here.
func (c *Controller) Over(overID string) {
	if c.phase != Dragging {
		return
	}

	issue, ok := c.state.Find(c.session.IssueID)
	if !ok {
		return
	}

	key, ok := c.resolveTargetKey(overID)
	if !ok || key == issue.Status {
		c.session.HoverKey = ""
		c.hoverChecked = false
		return
	}

	c.session.HoverKey = key
	result := workflow.ValidateMove(issue, key, c.model)
	c.hoverChecked = true
	c.hoverValid = result.Valid
}

// End finishes the gesture with a drop on overID. The controller
// always returns to Idle, whatever the drop decides.
func (c *Controller) End(overID string) Outcome {
	if c.phase != Dragging {
		return Outcome{Kind: OutcomeNone}
	}
	issueID := c.session.IssueID
	defer c.reset()

	if overID == "" || overID == issueID {
		return Outcome{Kind: OutcomeNone, IssueID: issueID}
	}

	issue, ok := c.state.Find(issueID)
	if !ok {
		return Outcome{Kind: OutcomeNone, IssueID: issueID}
	}

	// A drop on another issue in the same column is a pure reorder:
	// no status change, no validation, no external notification.
	if overKey, overIdx, found := c.state.Locate(overID); found && overKey == issue.Status {
		_, fromIdx, _ := c.state.Locate(issueID)
		next, err := c.state.ReorderWithinColumn(overKey, fromIdx, overIdx)
		if err != nil {
			slog.Warn("reorder failed", "issue", issueID, "column", overKey, "error", err)
			return Outcome{Kind: OutcomeNone, IssueID: issueID}
		}
		c.state = next
		return Outcome{Kind: OutcomeReorder, IssueID: issueID, TargetKey: overKey}
	}

	targetKey, ok := c.resolveTargetKey(overID)
	if !ok || targetKey == issue.Status {
		return Outcome{Kind: OutcomeNone, IssueID: issueID}
	}

	result := workflow.ValidateMove(issue, targetKey, c.model)
	if !result.Valid {
		if c.report != nil {
			c.report(result.Errors)
		}
		return Outcome{Kind: OutcomeRejected, IssueID: issueID, TargetKey: targetKey, Errors: result.Errors}
	}

	prev := c.state
	next, err := c.state.MoveIssue(issueID, targetKey)
	if err != nil {
		slog.Warn("move failed", "issue", issueID, "target", targetKey, "error", err)
		return Outcome{Kind: OutcomeNone, IssueID: issueID}
	}
	c.state = next

	if c.onMove != nil {
		if err := c.onMove(issueID, targetKey); err != nil {
			// Persistence refused the move: restore the pre-move state
			// so the board never shows a change that was not saved.
			c.state = prev
			slog.Error("persisting move failed", "issue", issueID, "target", targetKey, "error", err)
			if c.report != nil {
				c.report([]models.ValidationError{{
					Message: "the move could not be saved and was undone: " + err.Error(),
				}})
			}
			return Outcome{Kind: OutcomeRejected, IssueID: issueID, TargetKey: targetKey}
		}
	}

	return Outcome{Kind: OutcomeMove, IssueID: issueID, TargetKey: targetKey}
}

// Cancel abandons the gesture without touching the board or notifying
// anyone. Safe to call while idle.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) reset() {
	c.phase = Idle
	c.session = Session{}
	c.hoverChecked = false
	c.hoverValid = false
}

// resolveTargetKey maps a drop-target id to a status key. A visible
// column key resolves to itself; an issue id resolves to the column
// holding that issue.
func (c *Controller) resolveTargetKey(overID string) (string, bool) {
	for _, key := range c.state.Keys() {
		if key == overID {
			return key, true
		}
	}
	if key, _, ok := c.state.Locate(overID); ok {
		return key, true
	}
	return "", false
}
