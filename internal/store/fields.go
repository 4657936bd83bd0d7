package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/nvelliott/flyt/internal/models"
)

// Custom field values are stored as TEXT and decoded against the field
// kind declared in the workflow config. Dates use RFC 3339 so the column
// stays sortable and human-readable.

func encodeFieldValue(v models.FieldValue) string {
	switch v.Kind {
	case models.FieldText, models.FieldTextarea:
		return v.Text
	case models.FieldDropdown:
		return v.Option
	case models.FieldNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case models.FieldBoolean:
		return strconv.FormatBool(v.Bool)
	case models.FieldDate:
		return v.Date.Format(time.RFC3339)
	}
	return ""
}

func decodeFieldValue(def models.CustomFieldDefinition, raw string) (models.FieldValue, error) {
	switch def.Kind {
	case models.FieldText:
		return models.TextValue(raw), nil
	case models.FieldTextarea:
		return models.TextareaValue(raw), nil
	case models.FieldDropdown:
		return models.OptionValue(raw), nil
	case models.FieldNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.FieldValue{}, fmt.Errorf("field %q: invalid number %q: %w", def.Key, raw, err)
		}
		return models.NumberValue(n), nil
	case models.FieldBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return models.FieldValue{}, fmt.Errorf("field %q: invalid boolean %q: %w", def.Key, raw, err)
		}
		return models.BoolValue(b), nil
	case models.FieldDate:
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.FieldValue{}, fmt.Errorf("field %q: invalid date %q: %w", def.Key, raw, err)
		}
		return models.DateValue(t), nil
	}
	return models.FieldValue{}, fmt.Errorf("field %q: unknown kind %q", def.Key, def.Kind)
}
