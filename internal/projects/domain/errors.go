package domain

import "errors"

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrInvalidScoreRange = errors.New("score must be between 1 and 5")
	ErrInvalidEffortSize = errors.New("invalid effort size")
	ErrInvalidStatus     = errors.New("invalid project status")
)
