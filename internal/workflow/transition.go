package workflow

import (
	"fmt"

	"github.com/nvelliott/flyt/internal/models"
)

// Result is the outcome of a validation check. Valid is true iff
// Errors is empty; rejected moves carry one message per reason.
type Result struct {
	Valid  bool
	Errors []models.ValidationError
}

func resultFor(errs []models.ValidationError) Result {
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateTransition decides whether an issue may change status from
// current to target under the given workflow model.
//
// The rule set is deliberately permissive: any transition between
// resolvable statuses is legal except leaving a closed-type status for
// a non-closed one. A no-op transition (current == target) is always
// valid; it backs in-column reorders.
func ValidateTransition(current, target string, m *Model) Result {
	var errs []models.ValidationError

	cur, curOK := m.FindStatus(current)
	tgt, tgtOK := m.FindStatus(target)
	if !curOK {
		errs = append(errs, models.ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("status %q is not part of the workflow; valid statuses are: %s", current, m.describeStatuses()),
		})
	}
	if !tgtOK {
		errs = append(errs, models.ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("status %q is not part of the workflow; valid statuses are: %s", target, m.describeStatuses()),
		})
	}
	// Unresolved keys make the remaining rules meaningless, so stop here.
	if len(errs) > 0 {
		return resultFor(errs)
	}

	if current == target {
		return resultFor(nil)
	}

	if cur.Type == models.StatusClosed && tgt.Type != models.StatusClosed {
		errs = append(errs, models.ValidationError{
			Field: "status",
			Message: fmt.Sprintf(
				"cannot move %q (%s) to %q (%s): closed issues may only move between closed statuses",
				cur.Name, cur.Type, tgt.Name, tgt.Type,
			),
		})
	}

	return resultFor(errs)
}
