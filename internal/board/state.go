// Package board holds the in-memory grouping of issues into status
// columns. State values are immutable: moves and reorders return a new
// State and leave the receiver untouched, so a rejected gesture simply
// drops the candidate state.
package board

import (
	"slices"
	"sort"

	"github.com/nvelliott/flyt/internal/models"
	"github.com/nvelliott/flyt/internal/workflow"
)

// State maps status keys to the ordered issues in that column.
// Column order follows the workflow (or the supplied filter), and an
// issue's Status always matches the key of the column holding it.
type State struct {
	keys    []string
	columns map[string][]models.Issue
}

// Group builds a State from an issue snapshot. When visibleKeys is
// non-empty only those columns materialize and issues outside them are
// dropped from the visible grouping (the underlying collection is not
// touched). Within each column issues sort most-recently-updated first;
// this is a presentation default, not a persisted order.
func Group(issues []models.Issue, m *workflow.Model, visibleKeys []string) State {
	keys := visibleKeys
	if len(keys) == 0 {
		keys = m.StatusKeys()
	} else {
		// Keep only keys the workflow actually defines, in workflow order.
		ordered := make([]string, 0, len(keys))
		for _, key := range m.StatusKeys() {
			if slices.Contains(keys, key) {
				ordered = append(ordered, key)
			}
		}
		keys = ordered
	}

	columns := make(map[string][]models.Issue, len(keys))
	for _, key := range keys {
		columns[key] = nil
	}
	for _, issue := range issues {
		if _, visible := columns[issue.Status]; !visible {
			continue
		}
		columns[issue.Status] = append(columns[issue.Status], issue)
	}
	for key := range columns {
		col := columns[key]
		sort.SliceStable(col, func(i, j int) bool {
			return col[i].UpdatedAt.After(col[j].UpdatedAt)
		})
	}

	return State{keys: keys, columns: columns}
}

// Keys returns the visible column keys in display order
func (s State) Keys() []string {
	return s.keys
}

// Column returns the ordered issues in one column.
// Unknown keys read as empty columns.
func (s State) Column(key string) []models.Issue {
	return s.columns[key]
}

// Len returns the total number of visible issues
func (s State) Len() int {
	n := 0
	for _, col := range s.columns {
		n += len(col)
	}
	return n
}

// Find returns the issue with the given id, if visible
func (s State) Find(issueID string) (models.Issue, bool) {
	key, idx, ok := s.Locate(issueID)
	if !ok {
		return models.Issue{}, false
	}
	return s.columns[key][idx], true
}

// Locate returns the column key and index holding the given issue
func (s State) Locate(issueID string) (string, int, bool) {
	for _, key := range s.keys {
		for i, issue := range s.columns[key] {
			if issue.ID == issueID {
				return key, i, true
			}
		}
	}
	return "", 0, false
}

// MoveIssue returns a new State with the issue removed from its current
// column, appended to the target column, and its Status updated. It
// performs no validation; callers run the workflow engine first.
func (s State) MoveIssue(issueID, targetKey string) (State, error) {
	if _, visible := s.columns[targetKey]; !visible {
		return s, ErrUnknownColumn
	}
	fromKey, idx, ok := s.Locate(issueID)
	if !ok {
		return s, ErrIssueNotFound
	}

	moved := s.columns[fromKey][idx].WithStatus(targetKey)

	next := s.clone()
	next.columns[fromKey] = slices.Delete(slices.Clone(s.columns[fromKey]), idx, idx+1)
	next.columns[targetKey] = append(slices.Clone(s.columns[targetKey]), moved)
	return next, nil
}

// ReorderWithinColumn returns a new State with the issue at fromIndex
// removed and reinserted at toIndex. Purely a display-order change: no
// issue's Status is touched and nothing is notified.
func (s State) ReorderWithinColumn(key string, fromIndex, toIndex int) (State, error) {
	col, visible := s.columns[key]
	if !visible {
		return s, ErrUnknownColumn
	}
	if fromIndex < 0 || fromIndex >= len(col) || toIndex < 0 || toIndex >= len(col) {
		return s, ErrIndexOutOfRange
	}
	if fromIndex == toIndex {
		return s, nil
	}

	reordered := slices.Clone(col)
	moved := reordered[fromIndex]
	reordered = slices.Delete(reordered, fromIndex, fromIndex+1)
	reordered = slices.Insert(reordered, toIndex, moved)

	next := s.clone()
	next.columns[key] = reordered
	return next, nil
}

// clone copies the column map; issue slices are swapped in by callers
func (s State) clone() State {
	columns := make(map[string][]models.Issue, len(s.columns))
	for key, col := range s.columns {
		columns[key] = col
	}
	return State{keys: s.keys, columns: columns}
}
