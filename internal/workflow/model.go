// Package workflow holds the project workflow schema and the validators
// that decide whether an issue may move to a new status.
package workflow

import (
	"fmt"
	"strings"

	"github.com/nvelliott/flyt/internal/models"
)

// Model is a read-only view over the project's configured statuses and
// custom fields. It is built once at the config boundary and passed
// explicitly into every validator; nothing reads it ambiently.
type Model struct {
	statuses      []models.StatusDefinition
	fields        []models.CustomFieldDefinition
	defaultStatus string
	byKey         map[string]models.StatusDefinition
}

// NewModel validates the schema and builds the lookup indexes.
// Status and field keys must be unique; the default status must resolve.
func NewModel(statuses []models.StatusDefinition, fields []models.CustomFieldDefinition, defaultStatus string) (*Model, error) {
	if len(statuses) == 0 {
		return nil, ErrNoStatuses
	}

	byKey := make(map[string]models.StatusDefinition, len(statuses))
	for _, s := range statuses {
		if s.Key == "" {
			return nil, ErrEmptyStatusKey
		}
		if !s.Type.IsValid() {
			return nil, fmt.Errorf("status %q: %w (%q)", s.Key, ErrInvalidStatusType, s.Type)
		}
		if _, exists := byKey[s.Key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStatusKey, s.Key)
		}
		byKey[s.Key] = s
	}

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Key == "" {
			return nil, ErrEmptyFieldKey
		}
		if !f.Kind.IsValid() {
			return nil, fmt.Errorf("field %q: %w (%q)", f.Key, ErrInvalidFieldKind, f.Kind)
		}
		if f.Kind == models.FieldDropdown && len(f.Options) == 0 {
			return nil, fmt.Errorf("field %q: %w", f.Key, ErrDropdownNeedsOptions)
		}
		if _, exists := seen[f.Key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFieldKey, f.Key)
		}
		seen[f.Key] = struct{}{}
	}

	if defaultStatus == "" {
		defaultStatus = statuses[0].Key
	}
	if _, ok := byKey[defaultStatus]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefaultStatus, defaultStatus)
	}

	return &Model{
		statuses:      statuses,
		fields:        fields,
		defaultStatus: defaultStatus,
		byKey:         byKey,
	}, nil
}

// FindStatus looks up a status definition by key
func (m *Model) FindStatus(key string) (models.StatusDefinition, bool) {
	s, ok := m.byKey[key]
	return s, ok
}

// Statuses returns the status definitions in display (column) order
func (m *Model) Statuses() []models.StatusDefinition {
	return m.statuses
}

// StatusKeys returns the status keys in display order
func (m *Model) StatusKeys() []string {
	keys := make([]string, len(m.statuses))
	for i, s := range m.statuses {
		keys[i] = s.Key
	}
	return keys
}

// Fields returns all custom field definitions in configured order
func (m *Model) Fields() []models.CustomFieldDefinition {
	return m.fields
}

// RequiredFields returns only the required custom field definitions
func (m *Model) RequiredFields() []models.CustomFieldDefinition {
	var required []models.CustomFieldDefinition
	for _, f := range m.fields {
		if f.Required {
			required = append(required, f)
		}
	}
	return required
}

// DefaultStatus returns the status key assigned to new issues
func (m *Model) DefaultStatus() string {
	return m.defaultStatus
}

// describeStatuses renders the full status list for validation guidance,
// e.g. `todo ("To Do"), done ("Done")`
func (m *Model) describeStatuses() string {
	parts := make([]string, len(m.statuses))
	for i, s := range m.statuses {
		parts[i] = fmt.Sprintf("%s (%q)", s.Key, s.Name)
	}
	return strings.Join(parts, ", ")
}
