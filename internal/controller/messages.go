package controller

import (
	"fmt"

	"github.com/ytget/yt-downloader-lite/internal/download"
)

// Messages holds the user-visible texts the controller produces
type Messages struct {
	Ready    string
	Starting string
	Done     string
	Failed   string

	ProgressFormat      string // takes the percent
	AnnotationSeparator string
	FailedLogFormat     string // takes the error message

	EmptySource        string
	EmptyDestination   string
	InvalidDestination string
	JobActive          string

	// Added by the runner to engine output
	CollectingInfo string
	Merging        string
	WarningPrefix  string
	ErrorPrefix    string
}

// DefaultMessages returns the English texts
func DefaultMessages() Messages {
	return Messages{
		Ready:               "Ready",
		Starting:            "Starting",
		Done:                "Done",
		Failed:              "Error",
		ProgressFormat:      "Progress %d%%",
		AnnotationSeparator: " - ",
		FailedLogFormat:     "Error: %s",
		EmptySource:         "Please enter a URL.",
		EmptyDestination:    "Please choose a download folder.",
		InvalidDestination:  "The download folder is not a valid directory.",
		JobActive:           "A download is already running.",
		CollectingInfo:      download.CollectingInfoMessage,
		Merging:             download.MergingLabel,
		WarningPrefix:       download.WarningPrefix,
		ErrorPrefix:         download.ErrorPrefix,
	}
}

// Labels returns the runner labels in these messages
func (m Messages) Labels() download.Labels {
	return download.Labels{
		CollectingInfo: m.CollectingInfo,
		Merging:        m.Merging,
		WarningPrefix:  m.WarningPrefix,
		ErrorPrefix:    m.ErrorPrefix,
	}
}

// ProgressStatus formats the status line for a progress event
func (m Messages) ProgressStatus(percent int, annotation string) string {
	status := fmt.Sprintf(m.ProgressFormat, percent)
	if annotation != "" {
		status += m.AnnotationSeparator + annotation
	}
	return status
}

// FailedLog formats the final log line of a failed job
func (m Messages) FailedLog(message string) string {
	return fmt.Sprintf(m.FailedLogFormat, message)
}
