package controller

import "errors"

// ErrJobActive is returned when a job is started while another one runs
var ErrJobActive = errors.New("a job is already active")

// Validated input fields
const (
	FieldSource      = "Source"
	FieldDestination = "Destination"
)

// ValidationError reports input that was rejected before a job started
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
