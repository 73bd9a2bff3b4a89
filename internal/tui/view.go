package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/yt-downloader-lite/internal/model"
)

// Messages produced by programView
type (
	enabledMsg  struct{ enabled bool }
	progressMsg struct{ percent int }
	statusMsg   struct{ text string }
	logMsg      struct{ line model.LogLine }
	clearLogMsg struct{}
	invalidMsg  struct{ text string }
)

// programView implements controller.View by sending every call to the
// bubbletea program, which applies them in Update in send order
type programView struct {
	send func(tea.Msg)
}

func (v *programView) SetStartEnabled(enabled bool) { v.send(enabledMsg{enabled: enabled}) }
func (v *programView) SetProgress(percent int)      { v.send(progressMsg{percent: percent}) }
func (v *programView) SetStatus(text string)        { v.send(statusMsg{text: text}) }
func (v *programView) AppendLog(line model.LogLine) { v.send(logMsg{line: line}) }
func (v *programView) ClearLog()                    { v.send(clearLogMsg{}) }
func (v *programView) ShowValidationError(text string) {
	v.send(invalidMsg{text: text})
}
