package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-downloader-lite/internal/platform"
	"github.com/ytget/yt-downloader-lite/internal/ui"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check for yt-dlp and ffmpeg",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if a.cfg.File != "" {
				fmt.Fprintf(out, "Config:     %s\n", a.cfg.File)
			}
			fmt.Fprintf(out, "Downloads:  %s\n", a.cfg.Download.Dir)

			ff, ok := platform.DetectMergeTool(a.cfg.Engine.FFmpeg)
			if ok {
				fmt.Fprintf(out, "FFmpeg:     %s\n", ff)
			} else {
				fmt.Fprintf(out, "FFmpeg:     not found (single-stream formats only, see %s)\n", ui.FFmpegBuildsURL)
			}

			dl, err := platform.FindEngine(a.cfg.Engine.Binary)
			if err != nil {
				return &ExitError{Code: ExitMissingDep, Err: err}
			}
			fmt.Fprintf(out, "Downloader: %s\n", dl)
			return nil
		},
	}
}
