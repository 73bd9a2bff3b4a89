package controller

import "github.com/ytget/yt-downloader-lite/internal/model"

// View is the part of a front-end the controller drives. All methods are
// called through the controller's Dispatcher, never concurrently.
type View interface {
	SetStartEnabled(enabled bool)
	SetProgress(percent int)
	SetStatus(text string)
	AppendLog(line model.LogLine)
	ClearLog()
	ShowValidationError(message string)
}

// Dispatcher runs fn on the View's goroutine. Successive calls must run in
// call order.
type Dispatcher func(fn func())

// Immediate runs fn on the calling goroutine
func Immediate(fn func()) {
	fn()
}
