package board

import "errors"

// Board state errors
var (
	ErrIssueNotFound   = errors.New("issue not found on the board")
	ErrUnknownColumn   = errors.New("column is not visible on the board")
	ErrIndexOutOfRange = errors.New("position is outside the column")
)
