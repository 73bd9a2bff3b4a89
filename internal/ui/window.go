package ui

import (
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/yt-downloader-lite/internal/controller"
	"github.com/ytget/yt-downloader-lite/internal/download"
	"github.com/ytget/yt-downloader-lite/internal/model"
	"github.com/ytget/yt-downloader-lite/internal/platform"
)

// Options configures a MainWindow
type Options struct {
	Localization *Localization
	// Destination pre-fills the folder entry
	Destination string
	// MergeTool is the resolved merge tool path, empty when none was found
	MergeTool string
	Logger    *zap.Logger
	// OpenFolder reveals a folder; platform.OpenFolder when nil
	OpenFolder func(dir string) error
	// ControllerOptions are applied after the window's own options
	ControllerOptions []controller.Option
}

// MainWindow is the single-window desktop front-end
type MainWindow struct {
	window     fyne.Window
	loc        *Localization
	ctrl       *controller.Controller
	logger     *zap.Logger
	openFolder func(string) error

	urlEntry  *widget.Entry
	dirEntry  *widget.Entry
	browseBtn *widget.Button
	startBtn  *widget.Button
	openBtn   *widget.Button
	logList   *widget.List

	progress binding.Float
	status   binding.String
	logLines binding.UntypedList
}

// NewMainWindow builds the window content and the controller driving it
func NewMainWindow(window fyne.Window, engine download.Engine, opts Options) *MainWindow {
	loc := opts.Localization
	if loc == nil {
		loc = NewLocalization()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	openFolder := opts.OpenFolder
	if openFolder == nil {
		openFolder = platform.OpenFolder
	}

	mw := &MainWindow{
		window:     window,
		loc:        loc,
		logger:     logger,
		openFolder: openFolder,
		progress:   binding.NewFloat(),
		status:     binding.NewString(),
		logLines:   binding.NewUntypedList(),
	}

	ctrlOpts := []controller.Option{
		controller.WithMergeCapability(opts.MergeTool != ""),
		controller.WithMessages(loc.Messages()),
		controller.WithDispatcher(fyne.Do),
		controller.WithLogger(logger),
	}
	mw.ctrl = controller.New(mw, engine, append(ctrlOpts, opts.ControllerOptions...)...)

	window.SetTitle(loc.GetText(KeyAppTitle))
	mw.setupUI(opts.Destination, opts.MergeTool)
	_ = mw.status.Set(mw.ctrl.Messages().Ready)
	return mw
}

// Controller returns the controller driving this window
func (mw *MainWindow) Controller() *controller.Controller {
	return mw.ctrl
}

// setupUI creates and arranges all UI components
func (mw *MainWindow) setupUI(destination, mergeTool string) {
	mw.urlEntry = widget.NewEntry()
	mw.urlEntry.SetPlaceHolder(mw.loc.GetText(KeyEnterURL))
	mw.urlEntry.OnSubmitted = func(string) {
		mw.onStartClick()
	}

	mw.dirEntry = widget.NewEntry()
	mw.dirEntry.SetPlaceHolder(mw.loc.GetText(KeyDestinationHint))
	mw.dirEntry.SetText(destination)

	mw.browseBtn = widget.NewButtonWithIcon(mw.loc.GetText(KeyBrowse), theme.FolderOpenIcon(), mw.onBrowseClick)

	mw.startBtn = widget.NewButtonWithIcon(mw.loc.GetText(KeyStart), theme.DownloadIcon(), mw.onStartClick)
	mw.startBtn.Importance = widget.HighImportance

	mw.openBtn = widget.NewButtonWithIcon(mw.loc.GetText(KeyOpenFolder), theme.FolderIcon(), mw.onOpenFolderClick)
	mw.openBtn.Disable()

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel(mw.loc.GetText(KeyURL)), mw.urlEntry,
		widget.NewLabel(mw.loc.GetText(KeyDestination)), container.NewBorder(nil, nil, nil, mw.browseBtn, mw.dirEntry),
		layout.NewSpacer(), container.NewHBox(mw.startBtn, mw.openBtn),
	)
	inputCard := widget.NewCard(mw.loc.GetText(KeyInputGroup), "", form)

	progressBar := widget.NewProgressBarWithData(mw.progress)
	statusLabel := widget.NewLabelWithData(mw.status)
	statusCard := widget.NewCard(mw.loc.GetText(KeyStatusGroup), "",
		container.NewVBox(progressBar, statusLabel, mw.mergeNotice(mergeTool)))

	mw.logList = widget.NewListWithData(mw.logLines,
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.Wrapping = fyne.TextWrapBreak
			return l
		},
		func(item binding.DataItem, obj fyne.CanvasObject) {
			v, err := item.(binding.Untyped).Get()
			if err != nil {
				return
			}
			line, ok := v.(model.LogLine)
			if !ok {
				return
			}
			label := obj.(*widget.Label)
			label.Importance = logImportance(line.Level)
			label.SetText(line.Text)
		},
	)
	logCard := widget.NewCard(mw.loc.GetText(KeyLogGroup), "", mw.logList)

	content := container.NewBorder(
		container.NewVBox(inputCard, statusCard), // top
		nil,                                      // bottom
		nil,                                      // left
		nil,                                      // right
		logCard,
	)
	mw.window.SetContent(content)
}

// mergeNotice tells the user whether streams can be merged
func (mw *MainWindow) mergeNotice(mergeTool string) fyne.CanvasObject {
	if mergeTool != "" {
		l := widget.NewLabel(mw.loc.GetText(KeyMergeFound))
		l.Importance = widget.LowImportance
		return l
	}

	l := widget.NewLabel(mw.loc.GetText(KeyMergeMissing))
	l.Importance = widget.LowImportance
	link, err := url.Parse(FFmpegBuildsURL)
	if err != nil {
		return l
	}
	return container.NewHBox(l, widget.NewHyperlink(mw.loc.GetText(KeyMergeInstallLink), link))
}

func logImportance(level model.LogLevel) widget.Importance {
	switch level {
	case model.LogWarning:
		return widget.WarningImportance
	case model.LogError:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}

// onStartClick hands the form to the controller. Rejections are shown
// through ShowValidationError.
func (mw *MainWindow) onStartClick() {
	if _, err := mw.ctrl.Start(mw.urlEntry.Text, mw.dirEntry.Text); err != nil {
		mw.logger.Debug("start rejected", zap.Error(err))
	}
}

// onBrowseClick opens a folder picker starting at the current folder
func (mw *MainWindow) onBrowseClick() {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		mw.dirEntry.SetText(uri.Path())
	}, mw.window)

	if dir := mw.dirEntry.Text; dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}

// onOpenFolderClick reveals the destination of the last finished job
func (mw *MainWindow) onOpenFolderClick() {
	job, ok := mw.ctrl.LastJob()
	if !ok {
		return
	}
	if err := mw.openFolder(job.Destination); err != nil {
		mw.logger.Warn("open folder failed", zap.String("dir", job.Destination), zap.Error(err))
		dialog.ShowError(fmt.Errorf("%s: %w", mw.loc.GetText(KeyErrorOpeningFolder), err), mw.window)
	}
}

// SetStartEnabled implements controller.View. Re-enabling after a
// successful job also enables the open-folder button.
func (mw *MainWindow) SetStartEnabled(enabled bool) {
	if !enabled {
		mw.startBtn.Disable()
		mw.openBtn.Disable()
		return
	}
	mw.startBtn.Enable()
	if mw.ctrl.State() == model.JobStateCompleted {
		mw.openBtn.Enable()
	}
}

// SetProgress implements controller.View
func (mw *MainWindow) SetProgress(percent int) {
	_ = mw.progress.Set(float64(percent) / 100)
}

// SetStatus implements controller.View
func (mw *MainWindow) SetStatus(text string) {
	_ = mw.status.Set(text)
}

// AppendLog implements controller.View
func (mw *MainWindow) AppendLog(line model.LogLine) {
	_ = mw.logLines.Append(line)
	mw.logList.ScrollToBottom()
}

// ClearLog implements controller.View
func (mw *MainWindow) ClearLog() {
	_ = mw.logLines.Set(nil)
}

// ShowValidationError implements controller.View
func (mw *MainWindow) ShowValidationError(message string) {
	dialog.ShowInformation(mw.loc.GetText(KeyInputError), message, mw.window)
}
