package store

import "errors"

var (
	// ErrIssueNotFound is returned when an issue id does not exist in the database
	ErrIssueNotFound = errors.New("issue not found")
)
