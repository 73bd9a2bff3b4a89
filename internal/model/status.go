package model

// JobState represents where a job is in its lifecycle
type JobState string

const (
	// JobStateIdle means no job has been started yet
	JobStateIdle JobState = "Idle"

	// JobStateRunning means the engine call is in progress
	JobStateRunning JobState = "Running"

	// JobStateCompleted means the engine call returned without error
	JobStateCompleted JobState = "Completed"

	// JobStateFailed means the engine call failed
	JobStateFailed JobState = "Failed"
)

// String returns the string representation of JobState
func (js JobState) String() string {
	return string(js)
}

// IsActive returns true while the job still owns the worker
func (js JobState) IsActive() bool {
	return js == JobStateRunning
}

// IsFinished returns true if the job reached a terminal state
func (js JobState) IsFinished() bool {
	return js == JobStateCompleted || js == JobStateFailed
}
