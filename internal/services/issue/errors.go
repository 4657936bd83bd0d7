package issue

import "errors"

// Issue-related errors
var (
	// Validation errors
	ErrEmptyTitle          = errors.New("issue title cannot be empty")
	ErrTitleTooLong        = errors.New("issue title cannot exceed 255 characters")
	ErrInvalidIssueID      = errors.New("invalid issue ID")
	ErrUnknownStatus       = errors.New("unknown status key")
	ErrNegativeStoryPoints = errors.New("story points must be >= 0")
	ErrUnknownField        = errors.New("unknown custom field key")
)
