package model

import (
	"time"

	"github.com/google/uuid"
)

// JobIDPrefix prefixes every generated job ID
const JobIDPrefix = "job-"

// Job describes a single download attempt
type Job struct {
	ID          string
	Source      string    // URL handed to the engine as-is
	Destination string    // existing directory the engine writes into
	CanMerge    bool      // a merge tool (ffmpeg) is available
	CreatedAt   time.Time // when the user requested the job
}

// NewJob creates a job with a fresh ID
func NewJob(source, destination string, canMerge bool) Job {
	return Job{
		ID:          JobIDPrefix + uuid.NewString(),
		Source:      source,
		Destination: destination,
		CanMerge:    canMerge,
		CreatedAt:   time.Now(),
	}
}
