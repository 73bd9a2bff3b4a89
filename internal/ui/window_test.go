package ui

import (
	"context"
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-downloader-lite/internal/controller"
	"github.com/ytget/yt-downloader-lite/internal/download"
	"github.com/ytget/yt-downloader-lite/internal/model"
)

// scriptedEngine reports full progress and returns err
type scriptedEngine struct {
	err   error
	calls int
}

func (e *scriptedEngine) Download(_ context.Context, _ string, opts download.Options) error {
	e.calls++
	for _, hook := range opts.ProgressHooks {
		hook(download.Progress{Status: download.ProgressStatusDownloading, DownloadedBytes: 10, TotalBytes: 10})
	}
	opts.Logger.Warning("unavailable video skipped")
	return e.err
}

func newTestWindow(t *testing.T, engine download.Engine, opts Options) (*MainWindow, fyne.Window) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	opts.ControllerOptions = append(opts.ControllerOptions, controller.WithDispatcher(controller.Immediate))
	return NewMainWindow(w, engine, opts), w
}

func logTexts(t *testing.T, mw *MainWindow) []model.LogLine {
	t.Helper()
	items, err := mw.logLines.Get()
	require.NoError(t, err)
	lines := make([]model.LogLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, it.(model.LogLine))
	}
	return lines
}

func TestMainWindowInitialState(t *testing.T) {
	mw, w := newTestWindow(t, &scriptedEngine{}, Options{Destination: "/tmp/videos"})

	status, err := mw.status.Get()
	require.NoError(t, err)
	assert.Equal(t, "Ready", status)

	progress, err := mw.progress.Get()
	require.NoError(t, err)
	assert.Zero(t, progress)

	assert.Equal(t, "/tmp/videos", mw.dirEntry.Text)
	assert.False(t, mw.startBtn.Disabled())
	assert.True(t, mw.openBtn.Disabled())
	assert.Equal(t, "YouTube Downloader", w.Title())
	assert.False(t, mw.Controller().CanMerge())
}

func TestMainWindowRejectsEmptyURL(t *testing.T) {
	engine := &scriptedEngine{}
	mw, w := newTestWindow(t, engine, Options{Destination: t.TempDir()})

	test.Tap(mw.startBtn)
	mw.Controller().Wait()

	assert.Zero(t, engine.calls)
	assert.False(t, mw.startBtn.Disabled())
	assert.NotNil(t, w.Canvas().Overlays().Top())
	assert.Empty(t, logTexts(t, mw))
}

func TestMainWindowSuccessfulDownload(t *testing.T) {
	dir := t.TempDir()
	var opened string
	engine := &scriptedEngine{}
	mw, _ := newTestWindow(t, engine, Options{
		Destination: dir,
		MergeTool:   "/usr/bin/ffmpeg",
		OpenFolder: func(d string) error {
			opened = d
			return nil
		},
	})

	mw.urlEntry.SetText("https://example.com/watch?v=1")
	test.Tap(mw.startBtn)
	mw.Controller().Wait()

	assert.Equal(t, 1, engine.calls)
	progress, _ := mw.progress.Get()
	assert.InDelta(t, 1.0, progress, 1e-9)
	status, _ := mw.status.Get()
	assert.Equal(t, "Done", status)

	lines := logTexts(t, mw)
	require.Len(t, lines, 3)
	assert.Equal(t, download.CollectingInfoMessage, lines[0].Text)
	assert.Equal(t, model.LogWarning, lines[1].Level)
	assert.Equal(t, "WARNING: unavailable video skipped", lines[1].Text)
	assert.Equal(t, "Done", lines[2].Text)

	assert.False(t, mw.startBtn.Disabled())
	require.False(t, mw.openBtn.Disabled())
	test.Tap(mw.openBtn)
	assert.Equal(t, dir, opened)
}

func TestMainWindowFailedDownload(t *testing.T) {
	mw, _ := newTestWindow(t, &scriptedEngine{err: errors.New("HTTP Error 403: Forbidden")}, Options{
		Destination: t.TempDir(),
	})

	mw.urlEntry.SetText("https://example.com/watch?v=1")
	test.Tap(mw.startBtn)
	mw.Controller().Wait()

	status, _ := mw.status.Get()
	assert.Equal(t, "Error", status)

	lines := logTexts(t, mw)
	require.NotEmpty(t, lines)
	last := lines[len(lines)-1]
	assert.Equal(t, model.LogError, last.Level)
	assert.Equal(t, "Error: HTTP Error 403: Forbidden", last.Text)

	assert.False(t, mw.startBtn.Disabled())
	assert.True(t, mw.openBtn.Disabled())
}

func TestMainWindowKorean(t *testing.T) {
	loc := NewLocalization()
	loc.SetLanguage(LangKorean)
	mw, w := newTestWindow(t, &scriptedEngine{}, Options{Localization: loc, Destination: t.TempDir()})

	status, _ := mw.status.Get()
	assert.Equal(t, "대기 중", status)
	assert.Equal(t, "YouTube 다운로더", w.Title())

	mw.urlEntry.SetText("https://example.com/watch?v=1")
	test.Tap(mw.startBtn)
	mw.Controller().Wait()

	status, _ = mw.status.Get()
	assert.Equal(t, "완료", status)
	lines := logTexts(t, mw)
	require.NotEmpty(t, lines)
	assert.Equal(t, "정보 수집 중", lines[0].Text)
}

func TestMainWindowClearsLogOnStart(t *testing.T) {
	mw, _ := newTestWindow(t, &scriptedEngine{}, Options{Destination: t.TempDir()})
	mw.urlEntry.SetText("https://example.com/watch?v=1")

	test.Tap(mw.startBtn)
	mw.Controller().Wait()
	first := len(logTexts(t, mw))

	test.Tap(mw.startBtn)
	mw.Controller().Wait()
	assert.Len(t, logTexts(t, mw), first)
}
