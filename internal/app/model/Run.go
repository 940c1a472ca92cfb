package model

import "time"

// RunStatus is the terminal state of a single run.
type RunStatus string

const (
	RunCompleted   RunStatus = "completed"
	RunInterrupted RunStatus = "interrupted"
	RunFailed      RunStatus = "failed"
)

// Run is one source-to-transcript attempt as recorded in the database.
type Run struct {
	ID             string
	Source         string
	StartSec       int
	EndSec         int
	AudioDuration  int
	Status         RunStatus
	TranscriptPath string
	ErrorMessage   string
	CreatedAt      time.Time
}
