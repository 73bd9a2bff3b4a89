package cli

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/yt-downloader-lite/internal/controller"
	"github.com/ytget/yt-downloader-lite/internal/ui"
)

// runGUI opens the desktop window and blocks until it is closed
func (a *app) runGUI(cmd *cobra.Command, _ []string) error {
	defer func() { _ = a.logger.Sync() }()

	engine, err := a.engine(false)
	if err != nil {
		return err
	}

	loc := ui.NewLocalization()
	loc.SetLanguage(a.cfg.UI.Language)

	fyneApp := fyneapp.NewWithID(ui.AppID)
	fyneApp.Settings().SetTheme(ui.NewLightTheme())
	if icon, err := ui.LoadAppIcon(); err == nil {
		fyneApp.SetIcon(icon)
	} else {
		a.logger.Debug("no application icon", zap.Error(err))
	}

	window := fyneApp.NewWindow(fmt.Sprintf("%s %s", loc.GetText(ui.KeyAppTitle), a.version))
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewMainWindow(window, engine, ui.Options{
		Localization: loc,
		Destination:  a.cfg.Download.Dir,
		MergeTool:    a.mergeTool(),
		Logger:       a.logger,
		ControllerOptions: []controller.Option{
			controller.WithContext(cmd.Context()),
			controller.WithRunnerOptions(a.runnerOptions()...),
		},
	})

	a.logger.Info("window opened")
	window.ShowAndRun()
	return nil
}
