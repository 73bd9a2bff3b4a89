package download

import (
	"context"

	"github.com/ytget/yt-downloader-lite/internal/model"
)

// Engine performs the actual media download. Download blocks until the
// engine is done with source; per-item failures inside a playlist are
// the engine's concern when opts.IgnoreErrors is set.
type Engine interface {
	Download(ctx context.Context, source string, opts Options) error
}

// Logger receives the engine's diagnostic output
type Logger interface {
	Debug(msg string)
	Warning(msg string)
	Error(msg string)
}

// ProgressHook is called by the engine for every progress report
type ProgressHook func(Progress)

// Observer receives the events of one job. Implementations must be safe
// for concurrent use: the engine may report progress and log lines from
// different goroutines.
type Observer interface {
	OnProgress(percent int, annotation string)
	OnLog(line model.LogLine)
	OnFinished()
	OnError(message string)
}

// PlaylistProber lists the items of a playlist source before it is
// downloaded. It returns a nil playlist when source is not a playlist.
type PlaylistProber interface {
	ProbePlaylist(ctx context.Context, source string) (*model.Playlist, error)
}
