package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-downloader-lite/internal/controller"
	"github.com/ytget/yt-downloader-lite/internal/model"
)

type stubStarter struct {
	err    error
	source string
	dest   string
}

func (s *stubStarter) Start(source, destination string) (model.Job, error) {
	s.source, s.dest = source, destination
	if s.err != nil {
		return model.Job{}, s.err
	}
	return model.NewJob(source, destination, false), nil
}

func update(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelStartCmd(t *testing.T) {
	starter := &stubStarter{}
	m := NewModel(starter, "https://example.com/v", "/tmp/out", controller.DefaultMessages())

	msg := m.startCmd()()
	started, ok := msg.(startedMsg)
	require.True(t, ok)
	assert.NoError(t, started.err)
	assert.Equal(t, "https://example.com/v", starter.source)
	assert.Equal(t, "/tmp/out", starter.dest)
}

func TestModelJobLifecycle(t *testing.T) {
	m := NewModel(&stubStarter{}, "https://example.com/v", "/tmp/out", controller.DefaultMessages())
	assert.Contains(t, m.View(), "Ready")

	m, cmd := update(t, m,
		startedMsg{},
		enabledMsg{enabled: false},
		progressMsg{percent: 0},
		statusMsg{text: "Starting"},
		clearLogMsg{},
		logMsg{line: model.LogLine{Text: "Collecting video information"}},
		progressMsg{percent: 42},
		statusMsg{text: "Progress 42% - 512 KB/s"},
	)
	assert.False(t, isQuit(cmd))
	assert.True(t, m.running)
	assert.Equal(t, 42, m.percent)

	view := m.View()
	assert.Contains(t, view, "Progress 42% - 512 KB/s")
	assert.Contains(t, view, "Collecting video information")
	assert.Contains(t, view, "q: quit")

	m, cmd = update(t, m,
		logMsg{line: model.LogLine{Text: "Done"}},
		statusMsg{text: "Done"},
		enabledMsg{enabled: true},
	)
	assert.True(t, isQuit(cmd))
	assert.True(t, m.done)
	assert.False(t, m.Failed())
	assert.NotContains(t, m.View(), "q: quit")
}

func TestModelFailure(t *testing.T) {
	msgs := controller.DefaultMessages()
	m := NewModel(&stubStarter{}, "u", "d", msgs)

	m, cmd := update(t, m,
		enabledMsg{enabled: false},
		logMsg{line: model.LogLine{Level: model.LogError, Text: "Error: boom"}},
		statusMsg{text: msgs.Failed},
		enabledMsg{enabled: true},
	)
	assert.True(t, isQuit(cmd))
	assert.True(t, m.Failed())

	last, ok := m.LastLog()
	require.True(t, ok)
	assert.Equal(t, "Error: boom", last.Text)
}

func TestModelStartRejected(t *testing.T) {
	m := NewModel(&stubStarter{}, "", "/tmp", controller.DefaultMessages())

	rejected := &controller.ValidationError{Field: controller.FieldSource, Message: "Please enter a URL."}
	m, cmd := update(t, m,
		invalidMsg{text: rejected.Message},
		startedMsg{err: rejected},
	)
	assert.True(t, isQuit(cmd))
	assert.True(t, m.Failed())
	assert.True(t, errors.Is(m.startErr, rejected))
	assert.Contains(t, m.View(), "Please enter a URL.")
}

func TestModelLogTail(t *testing.T) {
	m := NewModel(&stubStarter{}, "u", "d", controller.DefaultMessages())
	for i := 0; i < logTail+3; i++ {
		m, _ = update(t, m, logMsg{line: model.LogLine{Text: strings.Repeat("x", i+1)}})
	}

	tail := m.tail()
	require.Len(t, tail, logTail)
	assert.Equal(t, strings.Repeat("x", logTail+3), tail[len(tail)-1].Text)
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(&stubStarter{}, "u", "d", controller.DefaultMessages())
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, isQuit(cmd))
	assert.True(t, m.Aborted())
}

func TestModelQuitAfterDoneIsNotAborted(t *testing.T) {
	m := NewModel(&stubStarter{}, "u", "d", controller.DefaultMessages())
	m, _ = update(t, m, enabledMsg{enabled: false}, enabledMsg{enabled: true})
	require.True(t, m.done)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.False(t, m.Aborted())
}

func TestModelIgnoresEnableWithoutRun(t *testing.T) {
	m := NewModel(&stubStarter{}, "u", "d", controller.DefaultMessages())
	m, cmd := update(t, m, enabledMsg{enabled: true})
	assert.False(t, isQuit(cmd))
	assert.False(t, m.done)
}
