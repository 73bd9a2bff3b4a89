package download

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/yt-downloader-lite/internal/model"
)

// Log line prefixes for engine warnings and errors
const (
	WarningPrefix = "WARNING: "
	ErrorPrefix   = "ERROR: "
)

// CollectingInfoMessage is logged right before the engine is invoked
const CollectingInfoMessage = "Collecting video information"

// Labels are the texts a Runner adds to what the engine reports
type Labels struct {
	CollectingInfo string
	Merging        string
	WarningPrefix  string
	ErrorPrefix    string
}

// DefaultLabels returns the English labels
func DefaultLabels() Labels {
	return Labels{
		CollectingInfo: CollectingInfoMessage,
		Merging:        MergingLabel,
		WarningPrefix:  WarningPrefix,
		ErrorPrefix:    ErrorPrefix,
	}
}

// orDefault fills empty labels with the English ones
func (l Labels) orDefault() Labels {
	d := DefaultLabels()
	if l.CollectingInfo == "" {
		l.CollectingInfo = d.CollectingInfo
	}
	if l.Merging == "" {
		l.Merging = d.Merging
	}
	if l.WarningPrefix == "" {
		l.WarningPrefix = d.WarningPrefix
	}
	if l.ErrorPrefix == "" {
		l.ErrorPrefix = d.ErrorPrefix
	}
	return l
}

// Runner executes one job against an engine and reports to an observer.
// A Runner is single-use.
type Runner struct {
	engine   Engine
	job      model.Job
	observer Observer
	prefs    Preferences
	prober   PlaylistProber
	labels   Labels
	logger   *zap.Logger

	once sync.Once
}

// RunnerOption customizes a Runner
type RunnerOption func(*Runner)

// WithPreferences overrides the default format preferences
func WithPreferences(prefs Preferences) RunnerOption {
	return func(r *Runner) {
		r.prefs = prefs
	}
}

// WithPlaylistProber enables listing playlist items before the download
func WithPlaylistProber(p PlaylistProber) RunnerOption {
	return func(r *Runner) {
		r.prober = p
	}
}

// WithLabels sets the texts added to engine output
func WithLabels(labels Labels) RunnerOption {
	return func(r *Runner) {
		r.labels = labels.orDefault()
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a runner for job
func NewRunner(engine Engine, job model.Job, observer Observer, opts ...RunnerOption) *Runner {
	r := &Runner{
		engine:   engine,
		job:      job,
		observer: observer,
		prefs:    DefaultPreferences(),
		labels:   DefaultLabels(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(zap.String("job_id", job.ID))
	return r
}

// Job returns the job this runner executes
func (r *Runner) Job() model.Job {
	return r.job
}

// Start runs the job on a new goroutine. The returned channel is closed
// after the terminal callback has been delivered.
func (r *Runner) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Run(ctx)
	}()
	return done
}

// Run executes the job and blocks until the engine returns. Exactly one of
// OnFinished or OnError is called, including when the engine panics.
func (r *Runner) Run(ctx context.Context) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("engine panicked", zap.Any("panic", p))
			r.fail(fmt.Sprint(p))
		}
	}()

	r.logger.Info("job started",
		zap.String("source", r.job.Source),
		zap.String("destination", r.job.Destination),
		zap.Bool("can_merge", r.job.CanMerge))

	r.observer.OnLog(model.LogLine{Level: model.LogDebug, Text: r.labels.CollectingInfo})
	r.probePlaylist(ctx)

	opts := BuildOptions(r.job, r.prefs)
	opts.ProgressHooks = []ProgressHook{r.progressHook}
	opts.Logger = &observerLogger{observer: r.observer, labels: r.labels, logger: r.logger}

	if err := r.engine.Download(ctx, r.job.Source, opts); err != nil {
		r.logger.Warn("job failed", zap.Error(err))
		r.fail(err.Error())
		return
	}

	r.logger.Info("job finished")
	r.once.Do(r.observer.OnFinished)
}

// fail delivers the failure terminal callback unless one was already sent
func (r *Runner) fail(message string) {
	r.once.Do(func() {
		r.observer.OnError(message)
	})
}

// progressHook translates an engine progress report into OnProgress
func (r *Runner) progressHook(p Progress) {
	switch p.Status {
	case ProgressStatusDownloading:
		r.observer.OnProgress(p.Percent(), p.Annotation())
	case ProgressStatusFinished:
		r.observer.OnProgress(100, p.MergingAnnotation(r.labels.Merging))
	}
}

// probePlaylist logs the playlist size when the source is a playlist.
// Probe failures never fail the job.
func (r *Runner) probePlaylist(ctx context.Context) {
	if r.prober == nil {
		return
	}

	playlist, err := r.prober.ProbePlaylist(ctx, r.job.Source)
	if err != nil {
		r.logger.Debug("playlist probe failed", zap.Error(err))
		r.observer.OnLog(model.LogLine{
			Level: model.LogWarning,
			Text:  r.labels.WarningPrefix + fmt.Sprintf("could not list playlist items: %v", err),
		})
		return
	}
	if playlist == nil {
		return
	}

	text := fmt.Sprintf("Playlist: %d items", playlist.Count())
	if playlist.Title != "" {
		text = fmt.Sprintf("Playlist %q: %d items", playlist.Title, playlist.Count())
	}
	r.observer.OnLog(model.LogLine{Level: model.LogDebug, Text: text})
}

// observerLogger forwards engine diagnostics to the observer
type observerLogger struct {
	observer Observer
	labels   Labels
	logger   *zap.Logger
}

func (l *observerLogger) Debug(msg string) {
	l.logger.Debug("engine", zap.String("line", msg))
	l.observer.OnLog(model.LogLine{Level: model.LogDebug, Text: msg})
}

func (l *observerLogger) Warning(msg string) {
	l.logger.Debug("engine warning", zap.String("line", msg))
	l.observer.OnLog(model.LogLine{Level: model.LogWarning, Text: l.labels.WarningPrefix + msg})
}

func (l *observerLogger) Error(msg string) {
	l.logger.Debug("engine error", zap.String("line", msg))
	l.observer.OnLog(model.LogLine{Level: model.LogError, Text: l.labels.ErrorPrefix + msg})
}
