package workflow

import "errors"

// Schema errors, reported when the workflow configuration itself is
// malformed. Validation of issue moves never returns these; move
// outcomes are Result values, not errors.
var (
	ErrNoStatuses           = errors.New("workflow must define at least one status")
	ErrEmptyStatusKey       = errors.New("status key cannot be empty")
	ErrDuplicateStatusKey   = errors.New("duplicate status key")
	ErrInvalidStatusType    = errors.New("invalid status type")
	ErrEmptyFieldKey        = errors.New("custom field key cannot be empty")
	ErrDuplicateFieldKey    = errors.New("duplicate custom field key")
	ErrInvalidFieldKind     = errors.New("invalid custom field kind")
	ErrDropdownNeedsOptions = errors.New("dropdown field must define options")
	ErrUnknownDefaultStatus = errors.New("default status is not a defined status")
)
