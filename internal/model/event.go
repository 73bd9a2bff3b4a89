package model

// LogLevel classifies a log line forwarded from the engine
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogWarning
	LogError
)

// String returns the level name
func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "debug"
	case LogWarning:
		return "warning"
	case LogError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is anything a running job reports to its observer.
// The set of implementations is closed: ProgressEvent, LogLine,
// FinishedEvent and FailedEvent.
type Event interface {
	// IsTerminal reports whether the event ends the job's lifecycle
	IsTerminal() bool
	event()
}

// ProgressEvent carries a percentage (0..100) and a best-effort annotation
// with speed, ETA and playlist position. Percent may go backwards between
// playlist items.
type ProgressEvent struct {
	Percent    int
	Annotation string
}

// LogLine is a single diagnostic line, already formatted for display
type LogLine struct {
	Level LogLevel
	Text  string
}

// FinishedEvent reports that the engine call returned successfully
type FinishedEvent struct{}

// FailedEvent reports that the engine call failed
type FailedEvent struct {
	Message string
}

func (ProgressEvent) IsTerminal() bool { return false }
func (LogLine) IsTerminal() bool       { return false }
func (FinishedEvent) IsTerminal() bool { return true }
func (FailedEvent) IsTerminal() bool   { return true }

func (ProgressEvent) event() {}
func (LogLine) event()       {}
func (FinishedEvent) event() {}
func (FailedEvent) event()   {}

// StateAfter returns the job state implied by ev: the terminal state for a
// terminal event, JobStateRunning for anything else
func StateAfter(ev Event) JobState {
	switch ev.(type) {
	case FinishedEvent:
		return JobStateCompleted
	case FailedEvent:
		return JobStateFailed
	default:
		return JobStateRunning
	}
}
