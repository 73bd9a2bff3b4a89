package download

import (
	"path/filepath"

	"github.com/ytget/yt-downloader-lite/internal/model"
)

// Format selection defaults
const (
	DefaultOutputTemplate = "%(title)s.%(ext)s"
	DefaultMergeFormat    = "mp4"
	DefaultMergedFormat   = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"
	DefaultSingleFormat   = "best[ext=mp4]/best"
)

// Options is the configuration handed to the engine for one download
type Options struct {
	OutputTemplate    string // full path template, e.g. /dir/%(title)s.%(ext)s
	IgnoreErrors      bool   // skip failing playlist items and keep going
	MergeOutputFormat string // container for merged streams; empty when merging is unavailable
	Format            string // format selection string
	ProgressHooks     []ProgressHook
	Logger            Logger
}

// Preferences controls how a job is turned into engine Options
type Preferences struct {
	OutputTemplate string
	MergeFormat    string
	MergedFormat   string // used when a merge tool is available
	SingleFormat   string // pre-muxed single stream, used otherwise
}

// DefaultPreferences returns the built-in format preferences
func DefaultPreferences() Preferences {
	return Preferences{
		OutputTemplate: DefaultOutputTemplate,
		MergeFormat:    DefaultMergeFormat,
		MergedFormat:   DefaultMergedFormat,
		SingleFormat:   DefaultSingleFormat,
	}
}

// withDefaults fills empty fields from DefaultPreferences
func (p Preferences) withDefaults() Preferences {
	d := DefaultPreferences()
	if p.OutputTemplate == "" {
		p.OutputTemplate = d.OutputTemplate
	}
	if p.MergeFormat == "" {
		p.MergeFormat = d.MergeFormat
	}
	if p.MergedFormat == "" {
		p.MergedFormat = d.MergedFormat
	}
	if p.SingleFormat == "" {
		p.SingleFormat = d.SingleFormat
	}
	return p
}

// BuildOptions returns the engine options for job without hooks or logger.
// Without a merge tool only a single pre-muxed stream is requested.
func BuildOptions(job model.Job, prefs Preferences) Options {
	prefs = prefs.withDefaults()

	opts := Options{
		OutputTemplate: filepath.Join(job.Destination, prefs.OutputTemplate),
		IgnoreErrors:   true,
		Format:         prefs.SingleFormat,
	}
	if job.CanMerge {
		opts.MergeOutputFormat = prefs.MergeFormat
		opts.Format = prefs.MergedFormat
	}
	return opts
}
