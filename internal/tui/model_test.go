package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/nvelliott/flyt/internal/dnd"
	"github.com/nvelliott/flyt/internal/models"
	"github.com/nvelliott/flyt/internal/tui/state"
)

func TestInitialModelLoadsBoard(t *testing.T) {
	st := &fakeStore{issues: []models.Issue{
		testIssue("a", "Alpha", "todo"),
		testIssue("b", "Beta", "doing"),
	}}
	m := newTestModel(t, st)

	keys := m.Board().Keys()
	want := []string{"todo", "doing", "done"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], k)
		}
	}

	if got := len(m.Board().Column("todo")); got != 1 {
		t.Errorf("todo column has %d issues, want 1", got)
	}
	if got := len(m.Board().Column("done")); got != 0 {
		t.Errorf("done column has %d issues, want 0", got)
	}
}

func TestReloadBoardAppliesSearchFilter(t *testing.T) {
	st := &fakeStore{issues: []models.Issue{
		testIssue("a", "Fix login crash", "todo"),
		testIssue("b", "Write release notes", "todo"),
	}}
	m := newTestModel(t, st)

	m.SearchState.Query = "login"
	m.SearchState.Activate()
	m.ReloadBoard()

	todo := m.Board().Column("todo")
	if len(todo) != 1 || todo[0].ID != "a" {
		t.Fatalf("filtered todo column = %v, want only issue a", todo)
	}

	m.SearchState.Deactivate()
	m.SearchState.Clear()
	m.ReloadBoard()
	if got := len(m.Board().Column("todo")); got != 2 {
		t.Errorf("unfiltered todo column has %d issues, want 2", got)
	}
}

func TestReloadBoardCancelsActiveDrag(t *testing.T) {
	st := &fakeStore{issues: []models.Issue{testIssue("a", "Alpha", "todo")}}
	m := newTestModel(t, st)

	if !m.Drag.Start("a") {
		t.Fatal("Start failed")
	}
	m.ReloadBoard()
	if m.Drag.Dragging() {
		t.Error("drag survived a board reload")
	}
}

func TestPersistFailureRollsBackBoard(t *testing.T) {
	st := &fakeStore{issues: []models.Issue{testIssue("a", "Alpha", "todo")}}
	m := newTestModel(t, st)
	st.moveErr = errors.New("database is locked")

	if !m.Drag.Start("a") {
		t.Fatal("Start failed")
	}
	outcome := m.Drag.End("doing")

	if outcome.Kind != dnd.OutcomeRejected {
		t.Fatalf("outcome = %v, want OutcomeRejected", outcome.Kind)
	}
	if key, _, ok := m.Board().Locate("a"); !ok || key != "todo" {
		t.Errorf("issue a is in column %q, want rollback to todo", key)
	}
	if got := st.issues[0].Status; got != "todo" {
		t.Errorf("store status = %q, want todo untouched", got)
	}
	if !m.NotificationState.HasAny() {
		t.Error("expected an error notification for the failed save")
	}
}

func TestPersistedMoveUpdatesStore(t *testing.T) {
	st := &fakeStore{issues: []models.Issue{testIssue("a", "Alpha", "todo")}}
	m := newTestModel(t, st)

	if !m.Drag.Start("a") {
		t.Fatal("Start failed")
	}
	outcome := m.Drag.End("doing")

	if outcome.Kind != dnd.OutcomeMove {
		t.Fatalf("outcome = %v, want OutcomeMove", outcome.Kind)
	}
	if got := st.issues[0].Status; got != "doing" {
		t.Errorf("store status = %q, want doing", got)
	}
}

func TestRejectedMoveReportsValidationErrors(t *testing.T) {
	issue := testIssue("a", "Alpha", "done")
	st := &fakeStore{issues: []models.Issue{issue}}
	m := newTestModel(t, st)

	if !m.Drag.Start("a") {
		t.Fatal("Start failed")
	}
	outcome := m.Drag.End("todo")

	if outcome.Kind != dnd.OutcomeRejected {
		t.Fatalf("outcome = %v, want OutcomeRejected for closed-to-open move", outcome.Kind)
	}
	notes := m.NotificationState.All()
	if len(notes) == 0 {
		t.Fatal("expected a validation notification")
	}
	if !strings.Contains(notes[0].Message, "closed") {
		t.Errorf("notification %q does not mention the closed status rule", notes[0].Message)
	}
}

func TestScheduleDismissNeedsNotifications(t *testing.T) {
	st := &fakeStore{}
	m := newTestModel(t, st)

	if cmd := ScheduleDismiss(m); cmd != nil {
		t.Error("ScheduleDismiss armed a timer with nothing to dismiss")
	}

	m.NotificationState.Add(state.LevelError, "boom")
	if cmd := ScheduleDismiss(m); cmd == nil {
		t.Error("ScheduleDismiss returned nil with a pending notification")
	}
}

func TestClampSelectionAfterShrink(t *testing.T) {
	st := &fakeStore{issues: []models.Issue{
		testIssue("a", "Alpha", "todo"),
		testIssue("b", "Beta", "todo"),
	}}
	m := newTestModel(t, st)
	m.UiState.SetSelectedIssue(1)

	if err := st.DeleteIssue(m.Ctx, "b"); err != nil {
		t.Fatalf("DeleteIssue: %v", err)
	}
	m.ReloadBoard()

	if got := m.UiState.SelectedIssue(); got != 0 {
		t.Errorf("selected issue = %d, want clamped to 0", got)
	}
}
