package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/nvelliott/flyt/internal/models"
	issueservice "github.com/nvelliott/flyt/internal/services/issue"
	"github.com/nvelliott/flyt/internal/tui"
	"github.com/nvelliott/flyt/internal/tui/huhforms"
	"github.com/nvelliott/flyt/internal/tui/state"
)

// ============================================================================
// ISSUE FORM HANDLERS
// ============================================================================

// OpenIssueForm builds the huh form over fresh buffers and switches to
// form mode. With an issue, the form edits it; with nil it creates.
func OpenIssueForm(m *tui.Model, issue *models.Issue) tea.Cmd {
	fs := m.FormState
	fs.Reset()

	if issue != nil {
		fs.EditingIssueID = issue.ID
		fs.Title = issue.Title
		fs.Description = issue.Description
		if issue.StoryPoints > 0 {
			fs.StoryPoints = strconv.Itoa(issue.StoryPoints)
		}
	}

	// Seed one buffer per declared custom field so the form fields have
	// stable pointers to write into
	for _, def := range m.Workflow().Fields() {
		if def.Kind == models.FieldBoolean {
			b := false
			if issue != nil {
				if v := issue.Field(def.Key); !v.IsEmpty() {
					b = v.Bool
				}
			}
			fs.BoolBuffers[def.Key] = &b
			continue
		}

		s := ""
		if issue != nil {
			if v := issue.Field(def.Key); !v.IsEmpty() {
				s = bufferText(def, v)
			}
		}
		fs.TextBuffers[def.Key] = &s
	}

	fs.IssueForm = huhforms.CreateIssueForm(
		&fs.Title,
		&fs.Description,
		&fs.StoryPoints,
		m.Workflow(),
		fs.TextBuffers,
		fs.BoolBuffers,
		&fs.Confirm,
	).WithTheme(huhforms.CreateFlytTheme(m.Config.Theme))

	m.UiState.SetMode(state.IssueFormMode)
	return fs.IssueForm.Init()
}

// HandleFormMode feeds messages to the active huh form and submits or
// discards when the form completes.
func HandleFormMode(m *tui.Model, msg tea.Msg) tea.Cmd {
	form := m.FormState.IssueForm
	if form == nil {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.FormState.Reset()
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	updated, cmd := form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.FormState.IssueForm = f
	}

	if m.FormState.IssueForm.State == huh.StateCompleted {
		return submitIssueForm(m)
	}
	if m.FormState.IssueForm.State == huh.StateAborted {
		m.FormState.Reset()
		m.UiState.SetMode(state.NormalMode)
		return nil
	}
	return cmd
}

// submitIssueForm parses the buffers and persists the issue
func submitIssueForm(m *tui.Model) tea.Cmd {
	fs := m.FormState
	defer func() {
		fs.Reset()
		m.UiState.SetMode(state.NormalMode)
	}()

	if !fs.Confirm {
		return nil
	}

	storyPoints := 0
	if strings.TrimSpace(fs.StoryPoints) != "" {
		storyPoints, _ = strconv.Atoi(strings.TrimSpace(fs.StoryPoints))
	}

	fields, err := buildFieldValues(m)
	if err != nil {
		m.HandleServiceError(err, "Reading form fields")
		return tui.ScheduleDismiss(m)
	}

	ctx, cancel := m.DbContext()
	defer cancel()

	if fs.EditingIssueID == "" {
		_, err = m.App.IssueService.CreateIssue(ctx, issueservice.CreateIssueRequest{
			Title:       fs.Title,
			Description: fs.Description,
			StoryPoints: storyPoints,
			Fields:      fields,
		})
	} else {
		err = m.App.IssueService.UpdateIssue(ctx, issueservice.UpdateIssueRequest{
			IssueID:     fs.EditingIssueID,
			Title:       fs.Title,
			Description: fs.Description,
			StoryPoints: storyPoints,
			Fields:      fields,
		})
	}
	if err != nil {
		m.HandleServiceError(err, "Saving issue")
		return tui.ScheduleDismiss(m)
	}

	m.ReloadBoard()
	return nil
}

// buildFieldValues converts the form buffers back into typed values.
// Empty buffers produce no value at all, keeping the field unpopulated.
func buildFieldValues(m *tui.Model) (map[string]models.FieldValue, error) {
	fields := make(map[string]models.FieldValue)

	for _, def := range m.Workflow().Fields() {
		if def.Kind == models.FieldBoolean {
			if b := m.FormState.BoolBuffers[def.Key]; b != nil {
				fields[def.Key] = models.BoolValue(*b)
			}
			continue
		}

		buf := m.FormState.TextBuffers[def.Key]
		if buf == nil {
			continue
		}
		raw := strings.TrimSpace(*buf)
		if raw == "" {
			continue
		}

		switch def.Kind {
		case models.FieldText:
			fields[def.Key] = models.TextValue(raw)
		case models.FieldTextarea:
			fields[def.Key] = models.TextareaValue(raw)
		case models.FieldDropdown:
			fields[def.Key] = models.OptionValue(raw)
		case models.FieldNumber:
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", def.Name, err)
			}
			fields[def.Key] = models.NumberValue(n)
		case models.FieldDate:
			t, err := time.Parse("2006-01-02", raw)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", def.Name, err)
			}
			fields[def.Key] = models.DateValue(t)
		}
	}

	return fields, nil
}

// bufferText renders a stored field value into its form buffer text
func bufferText(def models.CustomFieldDefinition, v models.FieldValue) string {
	switch def.Kind {
	case models.FieldNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case models.FieldDate:
		return v.Date.Format("2006-01-02")
	case models.FieldDropdown:
		return v.Option
	default:
		return v.Text
	}
}
