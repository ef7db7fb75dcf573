package assessment

import "errors"

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrSessionIDRequired  = errors.New("session_id is required")
	ErrInvalidSeverity    = errors.New("severity_score must be between 0 and 5")
	ErrInvalidDisorderRef = errors.New("disorder_id does not reference an existing disorder")
)
