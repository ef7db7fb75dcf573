package remedy

import "errors"

var (
	ErrRemedyNotFound     = errors.New("remedy not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrInvalidDisorderRef = errors.New("disorder_id does not reference an existing disorder")
)
