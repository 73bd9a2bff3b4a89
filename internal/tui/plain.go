package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/ytget/yt-downloader-lite/internal/model"
)

// PlainView implements controller.View by printing lines, for output that
// is not a terminal. A status line is printed only when its text changes.
type PlainView struct {
	mu         sync.Mutex
	w          io.Writer
	lastStatus string
	lastError  string
}

// NewPlainView creates a view writing to w
func NewPlainView(w io.Writer) *PlainView {
	return &PlainView{w: w}
}

func (v *PlainView) SetStartEnabled(bool) {}

func (v *PlainView) SetProgress(int) {}

func (v *PlainView) SetStatus(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if text == v.lastStatus {
		return
	}
	v.lastStatus = text
	fmt.Fprintln(v.w, text)
}

func (v *PlainView) AppendLog(line model.LogLine) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if line.Level == model.LogError {
		v.lastError = line.Text
	}
	fmt.Fprintln(v.w, line.Text)
}

func (v *PlainView) ClearLog() {}

func (v *PlainView) ShowValidationError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.w, message)
}

// LastError returns the last error line printed
func (v *PlainView) LastError() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastError
}
