package workflow

import (
	"fmt"

	"github.com/nvelliott/flyt/internal/models"
)

// ValidateFieldGate checks that every required custom field on the
// issue is populated before it may enter the target status.
//
// The gate is independent of status type: any move can be blocked by a
// missing required field, not only moves into closed statuses. A field
// counts as missing when it is absent, unset, or an empty string.
//
// An unresolved target status passes here; reporting unknown statuses
// is ValidateTransition's job and the two run together in the engine.
func ValidateFieldGate(issue models.Issue, target string, m *Model) Result {
	tgt, ok := m.FindStatus(target)
	if !ok {
		return resultFor(nil)
	}

	var errs []models.ValidationError
	for _, f := range m.RequiredFields() {
		if issue.Field(f.Key).IsEmpty() {
			errs = append(errs, models.ValidationError{
				Field: "fields." + f.Key,
				Message: fmt.Sprintf(
					"required %s field %q must be set before the issue can enter %q",
					f.Kind.KindName(), f.Name, tgt.Name,
				),
			})
		}
	}
	return resultFor(errs)
}
