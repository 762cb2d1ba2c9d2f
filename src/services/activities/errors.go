package activities

import "errors"

// Registry errors. The messages go straight to API clients as "detail".
var (
	ErrActivityNotFound    = errors.New("Activity not found")
	ErrParticipantNotFound = errors.New("Participant not found in this activity")
	ErrAlreadyEnrolled     = errors.New("Student is already signed up for this activity")
	ErrActivityFull        = errors.New("Activity is full")
)
