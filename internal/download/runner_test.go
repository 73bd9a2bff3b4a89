package download

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-downloader-lite/internal/model"
)

// recordingObserver collects every callback in order
type recordingObserver struct {
	mu       sync.Mutex
	events   []model.Event
	finished int
	failed   int
}

func (o *recordingObserver) OnProgress(percent int, annotation string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, model.ProgressEvent{Percent: percent, Annotation: annotation})
}

func (o *recordingObserver) OnLog(line model.LogLine) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, line)
}

func (o *recordingObserver) OnFinished() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.finished++
	o.events = append(o.events, model.FinishedEvent{})
}

func (o *recordingObserver) OnError(message string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failed++
	o.events = append(o.events, model.FailedEvent{Message: message})
}

func (o *recordingObserver) snapshot() []model.Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]model.Event(nil), o.events...)
}

func (o *recordingObserver) progress() []model.ProgressEvent {
	var out []model.ProgressEvent
	for _, ev := range o.snapshot() {
		if p, ok := ev.(model.ProgressEvent); ok {
			out = append(out, p)
		}
	}
	return out
}

func (o *recordingObserver) logs() []model.LogLine {
	var out []model.LogLine
	for _, ev := range o.snapshot() {
		if l, ok := ev.(model.LogLine); ok {
			out = append(out, l)
		}
	}
	return out
}

// fakeEngine replays progress reports and log lines, then returns err
type fakeEngine struct {
	progress []Progress
	debug    []string
	warnings []string
	errs     []string
	err      error
	panicVal any

	calls   int
	gotURL  string
	gotOpts Options
}

func (e *fakeEngine) Download(_ context.Context, source string, opts Options) error {
	e.calls++
	e.gotURL = source
	e.gotOpts = opts
	for _, msg := range e.debug {
		opts.Logger.Debug(msg)
	}
	for _, msg := range e.warnings {
		opts.Logger.Warning(msg)
	}
	for _, msg := range e.errs {
		opts.Logger.Error(msg)
	}
	for _, p := range e.progress {
		for _, hook := range opts.ProgressHooks {
			hook(p)
		}
	}
	if e.panicVal != nil {
		panic(e.panicVal)
	}
	return e.err
}

type fakeProber struct {
	playlist *model.Playlist
	err      error
}

func (p *fakeProber) ProbePlaylist(context.Context, string) (*model.Playlist, error) {
	return p.playlist, p.err
}

func TestRunner_Success(t *testing.T) {
	engine := &fakeEngine{
		progress: []Progress{
			{Status: ProgressStatusDownloading, DownloadedBytes: 500, TotalBytes: 1000, Speed: 2048, ETA: intPtr(4)},
			{Status: ProgressStatusFinished},
		},
	}
	obs := &recordingObserver{}
	job := model.NewJob("https://youtube.com/watch?v=test", "/downloads", true)

	NewRunner(engine, job, obs).Run(context.Background())

	assert.Equal(t, 1, engine.calls)
	assert.Equal(t, job.Source, engine.gotURL)
	assert.Equal(t, 1, obs.finished)
	assert.Equal(t, 0, obs.failed)

	require.Equal(t, []model.ProgressEvent{
		{Percent: 50, Annotation: "2 KB/s ETA 4s"},
		{Percent: 100, Annotation: MergingLabel},
	}, obs.progress())

	events := obs.snapshot()
	assert.Equal(t, model.LogLine{Level: model.LogDebug, Text: CollectingInfoMessage}, events[0])
	assert.Equal(t, model.FinishedEvent{}, events[len(events)-1])
}

func TestRunner_ProgressWithUnknownTotal(t *testing.T) {
	engine := &fakeEngine{
		progress: []Progress{{Status: ProgressStatusDownloading, DownloadedBytes: 4096}},
	}
	obs := &recordingObserver{}

	NewRunner(engine, model.NewJob("u", "/d", true), obs).Run(context.Background())

	require.Len(t, obs.progress(), 1)
	assert.Equal(t, 0, obs.progress()[0].Percent)
}

func TestRunner_PlaylistPrefix(t *testing.T) {
	engine := &fakeEngine{
		progress: []Progress{
			{Status: ProgressStatusDownloading, DownloadedBytes: 1, TotalBytes: 4, PlaylistIndex: 2, PlaylistCount: 5},
		},
	}
	obs := &recordingObserver{}

	NewRunner(engine, model.NewJob("u", "/d", true), obs).Run(context.Background())

	require.Len(t, obs.progress(), 1)
	assert.Equal(t, model.ProgressEvent{Percent: 25, Annotation: "[2/5]"}, obs.progress()[0])
}

func TestRunner_IgnoresOtherStatuses(t *testing.T) {
	engine := &fakeEngine{
		progress: []Progress{{Status: ProgressStatusError}, {Status: "starting"}},
	}
	obs := &recordingObserver{}

	NewRunner(engine, model.NewJob("u", "/d", true), obs).Run(context.Background())

	assert.Empty(t, obs.progress())
	assert.Equal(t, 1, obs.finished)
}

func TestRunner_EngineError(t *testing.T) {
	engine := &fakeEngine{err: errors.New("Unsupported URL: nope")}
	obs := &recordingObserver{}

	NewRunner(engine, model.NewJob("nope", "/d", false), obs).Run(context.Background())

	assert.Equal(t, 0, obs.finished)
	assert.Equal(t, 1, obs.failed)
	events := obs.snapshot()
	assert.Equal(t, model.FailedEvent{Message: "Unsupported URL: nope"}, events[len(events)-1])
}

func TestRunner_EnginePanic(t *testing.T) {
	engine := &fakeEngine{panicVal: "engine exploded"}
	obs := &recordingObserver{}

	assert.NotPanics(t, func() {
		NewRunner(engine, model.NewJob("u", "/d", false), obs).Run(context.Background())
	})

	assert.Equal(t, 0, obs.finished)
	assert.Equal(t, 1, obs.failed)
	events := obs.snapshot()
	assert.Equal(t, model.FailedEvent{Message: "engine exploded"}, events[len(events)-1])
}

func TestRunner_LoggerTagsLevels(t *testing.T) {
	engine := &fakeEngine{
		debug:    []string{"[youtube] abc: Downloading webpage"},
		warnings: []string{"falling back"},
		errs:     []string{"item 3 unavailable"},
	}
	obs := &recordingObserver{}

	NewRunner(engine, model.NewJob("u", "/d", true), obs).Run(context.Background())

	assert.Equal(t, []model.LogLine{
		{Level: model.LogDebug, Text: CollectingInfoMessage},
		{Level: model.LogDebug, Text: "[youtube] abc: Downloading webpage"},
		{Level: model.LogWarning, Text: WarningPrefix + "falling back"},
		{Level: model.LogError, Text: ErrorPrefix + "item 3 unavailable"},
	}, obs.logs())
	// per-item errors stay log lines, the job still succeeds
	assert.Equal(t, 1, obs.finished)
}

func TestRunner_Labels(t *testing.T) {
	engine := &fakeEngine{
		warnings: []string{"falling back"},
		errs:     []string{"item 3 unavailable"},
		progress: []Progress{{Status: ProgressStatusFinished, PlaylistIndex: 2, PlaylistCount: 5}},
	}
	obs := &recordingObserver{}
	labels := Labels{
		CollectingInfo: "정보 수집 중",
		Merging:        "병합 중",
		WarningPrefix:  "경고: ",
		ErrorPrefix:    "오류: ",
	}

	NewRunner(engine, model.NewJob("u", "/d", true), obs, WithLabels(labels)).Run(context.Background())

	assert.Equal(t, []model.LogLine{
		{Level: model.LogDebug, Text: "정보 수집 중"},
		{Level: model.LogWarning, Text: "경고: falling back"},
		{Level: model.LogError, Text: "오류: item 3 unavailable"},
	}, obs.logs())
	assert.Equal(t, []model.ProgressEvent{{Percent: 100, Annotation: "[2/5] 병합 중"}}, obs.progress())
}

func TestRunner_LabelsFallBackToEnglish(t *testing.T) {
	engine := &fakeEngine{warnings: []string{"falling back"}}
	obs := &recordingObserver{}

	NewRunner(engine, model.NewJob("u", "/d", true), obs, WithLabels(Labels{Merging: "병합 중"})).Run(context.Background())

	assert.Equal(t, []model.LogLine{
		{Level: model.LogDebug, Text: CollectingInfoMessage},
		{Level: model.LogWarning, Text: WarningPrefix + "falling back"},
	}, obs.logs())
}

func TestRunner_PassesOptions(t *testing.T) {
	engine := &fakeEngine{}
	obs := &recordingObserver{}
	prefs := Preferences{SingleFormat: "worst"}

	NewRunner(engine, model.NewJob("u", "/d", false), obs, WithPreferences(prefs)).Run(context.Background())

	assert.Equal(t, "worst", engine.gotOpts.Format)
	assert.Empty(t, engine.gotOpts.MergeOutputFormat)
	assert.True(t, engine.gotOpts.IgnoreErrors)
	assert.Len(t, engine.gotOpts.ProgressHooks, 1)
	assert.NotNil(t, engine.gotOpts.Logger)
}

func TestRunner_PlaylistProbe(t *testing.T) {
	prober := &fakeProber{playlist: &model.Playlist{
		Title: "Mix",
		Items: []model.PlaylistItem{{VideoID: "a"}, {VideoID: "b"}, {VideoID: "c"}},
	}}
	obs := &recordingObserver{}

	NewRunner(&fakeEngine{}, model.NewJob("u", "/d", true), obs, WithPlaylistProber(prober)).Run(context.Background())

	assert.Contains(t, obs.logs(), model.LogLine{Level: model.LogDebug, Text: `Playlist "Mix": 3 items`})
	assert.Equal(t, 1, obs.finished)
}

func TestRunner_PlaylistProbeFailureIsNotFatal(t *testing.T) {
	prober := &fakeProber{err: errors.New("timeout")}
	obs := &recordingObserver{}
	engine := &fakeEngine{}

	NewRunner(engine, model.NewJob("u", "/d", true), obs, WithPlaylistProber(prober)).Run(context.Background())

	assert.Equal(t, 1, engine.calls)
	assert.Equal(t, 1, obs.finished)
	assert.Contains(t, obs.logs(), model.LogLine{
		Level: model.LogWarning,
		Text:  WarningPrefix + "could not list playlist items: timeout",
	})
}

func TestRunner_StartClosesDoneAfterTerminal(t *testing.T) {
	obs := &recordingObserver{}
	done := NewRunner(&fakeEngine{err: errors.New("boom")}, model.NewJob("u", "/d", true), obs).Start(context.Background())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not finish")
	}
	assert.Equal(t, 1, obs.failed)
}
