package models

import (
	"strconv"
	"time"
)

// FieldKind identifies the value type of a custom field
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldNumber   FieldKind = "number"
	FieldBoolean  FieldKind = "boolean"
	FieldDate     FieldKind = "date"
	FieldDropdown FieldKind = "dropdown"
	FieldTextarea FieldKind = "textarea"
)

// IsValid reports whether the field kind is one of the known values
func (k FieldKind) IsValid() bool {
	switch k {
	case FieldText, FieldNumber, FieldBoolean, FieldDate, FieldDropdown, FieldTextarea:
		return true
	}
	return false
}

// CustomFieldDefinition describes a project-configured custom field.
// Required fields gate status transitions: an issue cannot enter a new
// status while any required field is empty.
type CustomFieldDefinition struct {
	Key      string
	Name     string
	Kind     FieldKind
	Required bool
	Options  []string // dropdown choices; empty for other kinds
}

// FieldValue holds a single custom field value as a tagged union.
// Exactly one slot is meaningful, selected by Kind. The zero value
// (empty Kind) represents an unset field.
type FieldValue struct {
	Kind   FieldKind
	Text   string // text, textarea
	Number float64
	Bool   bool
	Date   time.Time
	Option string // dropdown selection
}

// TextValue constructs a text field value
func TextValue(s string) FieldValue {
	return FieldValue{Kind: FieldText, Text: s}
}

// TextareaValue constructs a textarea field value
func TextareaValue(s string) FieldValue {
	return FieldValue{Kind: FieldTextarea, Text: s}
}

// NumberValue constructs a number field value
func NumberValue(n float64) FieldValue {
	return FieldValue{Kind: FieldNumber, Number: n}
}

// BoolValue constructs a boolean field value
func BoolValue(b bool) FieldValue {
	return FieldValue{Kind: FieldBoolean, Bool: b}
}

// DateValue constructs a date field value
func DateValue(t time.Time) FieldValue {
	return FieldValue{Kind: FieldDate, Date: t}
}

// OptionValue constructs a dropdown field value
func OptionValue(s string) FieldValue {
	return FieldValue{Kind: FieldDropdown, Option: s}
}

// IsEmpty reports whether the value counts as unpopulated for the
// required-field gate. An unset value, an empty string for text kinds,
// an empty selection for dropdowns, and a zero date are all empty.
// A boolean is populated either way once the kind is set; numbers
// count zero as populated.
func (v FieldValue) IsEmpty() bool {
	switch v.Kind {
	case FieldText, FieldTextarea:
		return v.Text == ""
	case FieldDropdown:
		return v.Option == ""
	case FieldDate:
		return v.Date.IsZero()
	case FieldNumber, FieldBoolean:
		return false
	}
	return true
}

// Display returns a short human-readable rendering of the value
func (v FieldValue) Display() string {
	switch v.Kind {
	case FieldText, FieldTextarea:
		return v.Text
	case FieldDropdown:
		return v.Option
	case FieldNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case FieldBoolean:
		if v.Bool {
			return "yes"
		}
		return "no"
	case FieldDate:
		if v.Date.IsZero() {
			return ""
		}
		return v.Date.Format("2006-01-02")
	}
	return ""
}

// KindName returns the display name used in validation messages
func (k FieldKind) KindName() string {
	return string(k)
}
