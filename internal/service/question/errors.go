package question

import "errors"

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrTextRequired     = errors.New("text is required")
)
