package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/yt-downloader-lite/internal/controller"
	"github.com/ytget/yt-downloader-lite/internal/platform"
	"github.com/ytget/yt-downloader-lite/internal/tui"
	"github.com/ytget/yt-downloader-lite/internal/ui"
)

const (
	flagOutDir = "out-dir"
	flagPlain  = "plain"
)

func newGetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <url>",
		Short: "Download a video or playlist in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGet(cmd, args[0])
		},
	}
	cmd.Flags().StringP(flagOutDir, "o", "", "Download folder (default: download.dir)")
	cmd.Flags().Bool(flagPlain, false, "Print plain lines instead of the interactive view")
	return cmd
}

func (a *app) runGet(cmd *cobra.Command, source string) error {
	defer func() { _ = a.logger.Sync() }()

	engine, err := a.engine(true)
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString(flagOutDir)
	if dir == "" {
		dir = a.cfg.Download.Dir
	}
	plain, _ := cmd.Flags().GetBool(flagPlain)
	if platform.IsPlaylistURL(source) {
		a.logger.Info("playlist source", zap.String("list", platform.ExtractPlaylistID(source)))
	}

	loc := ui.NewLocalization()
	loc.SetLanguage(a.cfg.UI.Language)

	err = tui.Run(cmd.Context(), tui.Config{
		Source:      source,
		Destination: dir,
		Engine:      engine,
		Messages:    loc.Messages(),
		Output:      cmd.OutOrStdout(),
		Plain:       plain,
		ControllerOptions: []controller.Option{
			controller.WithMergeCapability(a.mergeTool() != ""),
			controller.WithRunnerOptions(a.runnerOptions()...),
			controller.WithLogger(a.logger),
		},
	})

	var verr *controller.ValidationError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &verr):
		return &ExitError{Code: ExitCLIError, Err: err}
	default:
		return &ExitError{Code: ExitDownloadError, Err: err}
	}
}
