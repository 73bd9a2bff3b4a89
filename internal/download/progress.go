package download

import (
	"fmt"
	"strings"
)

// ProgressStatus is the engine-reported status of a progress update
type ProgressStatus string

const (
	ProgressStatusDownloading ProgressStatus = "downloading"
	ProgressStatusFinished    ProgressStatus = "finished"
	ProgressStatusError       ProgressStatus = "error"
)

// MergingLabel annotates a finished stream whose merge is still pending
const MergingLabel = "merging"

// Progress is the payload of one engine progress report.
// Zero values mean "unknown", except ETA where nil is unknown.
type Progress struct {
	Status             ProgressStatus
	DownloadedBytes    int64
	TotalBytes         int64
	TotalBytesEstimate int64
	Speed              float64 // bytes per second
	ETA                *int    // seconds
	PlaylistIndex      int
	PlaylistCount      int
}

// Total returns the known or estimated size, 0 if neither is known
func (p Progress) Total() int64 {
	if p.TotalBytes > 0 {
		return p.TotalBytes
	}
	if p.TotalBytesEstimate > 0 {
		return p.TotalBytesEstimate
	}
	return 0
}

// Percent returns floor(downloaded*100/total), or 0 when total is unknown.
// An estimate can be overrun, so the result is capped at 100.
func (p Progress) Percent() int {
	total := p.Total()
	if total <= 0 {
		return 0
	}
	return int(min(p.DownloadedBytes*100/total, 100))
}

// playlistPrefix returns "[index/count] " for playlist items
func (p Progress) playlistPrefix() string {
	if p.PlaylistIndex > 0 && p.PlaylistCount > 0 {
		return fmt.Sprintf("[%d/%d] ", p.PlaylistIndex, p.PlaylistCount)
	}
	return ""
}

// Annotation returns the speed/ETA description of a downloading update
func (p Progress) Annotation() string {
	var b strings.Builder
	b.WriteString(p.playlistPrefix())
	if p.Speed > 0 {
		fmt.Fprintf(&b, "%d KB/s ", int(p.Speed/1024))
	}
	if p.ETA != nil {
		fmt.Fprintf(&b, "ETA %ds", *p.ETA)
	}
	return strings.TrimSpace(b.String())
}

// MergingAnnotation returns the annotation for a finished stream, using
// label (MergingLabel when empty)
func (p Progress) MergingAnnotation(label string) string {
	if label == "" {
		label = MergingLabel
	}
	return strings.TrimSpace(p.playlistPrefix() + label)
}
