package huhforms

import (
	"fmt"
	"strconv"
	"time"

	"charm.land/huh/v2"

	"github.com/nvelliott/flyt/internal/models"
	"github.com/nvelliott/flyt/internal/workflow"
)

// CreateIssueForm creates a huh form for adding/editing an issue.
// The form uses pointers to update values in place: built-in fields bind
// to the dedicated buffers, custom fields bind to the per-key buffer maps.
func CreateIssueForm(
	title *string,
	description *string,
	storyPoints *string,
	model *workflow.Model,
	textBuffers map[string]*string,
	boolBuffers map[string]*bool,
	confirm *bool,
) *huh.Form {
	var fields []huh.Field

	fields = append(fields,
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter issue title...").
			Value(title),
	)

	fields = append(fields,
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Enter issue description...").
			CharLimit(5000).
			Lines(5).
			Value(description),
	)

	fields = append(fields,
		huh.NewInput().
			Key("story_points").
			Title("Story Points").
			Placeholder("0").
			Validate(validateStoryPoints).
			Value(storyPoints),
	)

	for _, def := range model.Fields() {
		fields = append(fields, customField(def, textBuffers, boolBuffers))
	}

	fields = append(fields,
		huh.NewConfirm().
			Key("confirm").
			Title("Submit this issue?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}

// customField builds the huh field matching a custom field's kind
func customField(
	def models.CustomFieldDefinition,
	textBuffers map[string]*string,
	boolBuffers map[string]*bool,
) huh.Field {
	fieldTitle := def.Name
	if def.Required {
		fieldTitle += " *"
	}

	switch def.Kind {
	case models.FieldBoolean:
		return huh.NewConfirm().
			Key(def.Key).
			Title(fieldTitle).
			Affirmative("Yes").
			Negative("No").
			Value(boolBuffers[def.Key])

	case models.FieldDropdown:
		// A blank option keeps non-required dropdowns clearable
		options := []huh.Option[string]{huh.NewOption("(none)", "")}
		for _, opt := range def.Options {
			options = append(options, huh.NewOption(opt, opt))
		}
		return huh.NewSelect[string]().
			Key(def.Key).
			Title(fieldTitle).
			Options(options...).
			Value(textBuffers[def.Key])

	case models.FieldTextarea:
		return huh.NewText().
			Key(def.Key).
			Title(fieldTitle).
			CharLimit(5000).
			Lines(3).
			Value(textBuffers[def.Key])

	case models.FieldNumber:
		return huh.NewInput().
			Key(def.Key).
			Title(fieldTitle).
			Validate(validateNumber).
			Value(textBuffers[def.Key])

	case models.FieldDate:
		return huh.NewInput().
			Key(def.Key).
			Title(fieldTitle).
			Placeholder("YYYY-MM-DD").
			Validate(validateDate).
			Value(textBuffers[def.Key])

	default:
		return huh.NewInput().
			Key(def.Key).
			Title(fieldTitle).
			Value(textBuffers[def.Key])
	}
}

func validateStoryPoints(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("story points must be a whole number")
	}
	if n < 0 {
		return fmt.Errorf("story points cannot be negative")
	}
	return nil
}

func validateNumber(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

func validateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("must be a date like 2026-01-31")
	}
	return nil
}
