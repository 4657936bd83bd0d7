package workflow

import "github.com/nvelliott/flyt/internal/models"

// ValidateMove is the single admit/deny decision for dropping an issue
// onto a target status. Both validators always run and their errors
// accumulate: a move can fail a transition rule and a field gate at the
// same time, and the user should see both reasons.
func ValidateMove(issue models.Issue, target string, m *Model) Result {
	transition := ValidateTransition(issue.Status, target, m)
	gate := ValidateFieldGate(issue, target, m)

	errs := make([]models.ValidationError, 0, len(transition.Errors)+len(gate.Errors))
	errs = append(errs, transition.Errors...)
	errs = append(errs, gate.Errors...)
	return resultFor(errs)
}
