// Package cli wires configuration, logging and the front-ends into the
// yt-downloader command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ytget/yt-downloader-lite/internal/config"
	"github.com/ytget/yt-downloader-lite/internal/download"
	"github.com/ytget/yt-downloader-lite/internal/logger"
	"github.com/ytget/yt-downloader-lite/internal/platform"
)

// Process exit codes
const (
	ExitOK            = 0
	ExitCLIError      = 1
	ExitMissingDep    = 2
	ExitDownloadError = 3
)

// ExitError wraps an error with a process exit code
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Persistent flag names
const (
	flagConfig   = "config"
	flagYTDLP    = "yt-dlp"
	flagFFmpeg   = "ffmpeg"
	flagLanguage = "lang"
	flagLogLevel = "log-level"
	flagNoProbe  = "no-playlist-probe"
)

// flagKeys maps configuration keys to the flags that override them
var flagKeys = map[string]string{
	config.KeyEngineBinary: flagYTDLP,
	config.KeyEngineFFmpeg: flagFFmpeg,
	config.KeyLanguage:     flagLanguage,
	config.KeyLogLevel:     flagLogLevel,
}

// app is the state shared by all commands after configuration is loaded
type app struct {
	version string
	v       *viper.Viper
	cfg     *config.Config
	logger  *zap.Logger
}

func newRootCmd(version string) *cobra.Command {
	a := &app{version: version, v: config.NewViper()}

	root := &cobra.Command{
		Use:               "yt-downloader",
		Short:             "Download videos and playlists with yt-dlp",
		Long:              "yt-downloader is a small front-end over yt-dlp. Without a subcommand it opens the desktop window; 'get' downloads from the terminal.",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.load,
		RunE:              a.runGUI,
	}

	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "Config file (default: <user config dir>/yt-downloader-lite/config.yaml)")
	pf.String(flagYTDLP, "", "Path to the yt-dlp executable")
	pf.String(flagFFmpeg, "", "Path to the ffmpeg executable")
	pf.String(flagLanguage, "", "UI language: en, ko")
	pf.String(flagLogLevel, "", "Diagnostics log level: debug, info, warn, error")
	pf.Bool(flagNoProbe, false, "Do not list playlist items before downloading")

	root.AddCommand(newGetCmd(a))
	root.AddCommand(newDoctorCmd(a))

	return root
}

// Execute runs the command tree
func Execute(ctx context.Context, version string) error {
	return newRootCmd(version).ExecuteContext(ctx)
}

// load reads configuration and builds the diagnostics logger
func (a *app) load(cmd *cobra.Command, _ []string) error {
	if err := config.BindFlags(a.v, cmd.Flags(), flagKeys); err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}

	file, _ := cmd.Flags().GetString(flagConfig)
	cfg, err := config.Load(a.v, file)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	if noProbe, _ := cmd.Flags().GetBool(flagNoProbe); noProbe {
		cfg.Playlist.Probe = false
	}

	l, err := logger.New(cfg.Logger())
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("logger: %w", err)}
	}

	a.cfg = cfg
	a.logger = l.With(zap.String("version", a.version))
	a.logger.Debug("configuration loaded", zap.String("file", cfg.File), zap.String("language", cfg.UI.Language))
	return nil
}

// engine returns the yt-dlp engine; a missing executable is reported but
// only fatal when required is set
func (a *app) engine(required bool) (*download.YTDLP, error) {
	binary, err := platform.FindEngine(a.cfg.Engine.Binary)
	if err != nil {
		if required {
			return nil, &ExitError{Code: ExitMissingDep, Err: err}
		}
		a.logger.Warn("yt-dlp not found; downloads will fail", zap.Error(err))
		binary = a.cfg.Engine.Binary
	}
	return download.NewYTDLP(binary, a.logger), nil
}

// mergeTool returns the merge tool path, empty when it is not installed
func (a *app) mergeTool() string {
	p, ok := platform.DetectMergeTool(a.cfg.Engine.FFmpeg)
	if !ok {
		a.logger.Info("merge tool not found; single-stream formats only", zap.String("name", a.cfg.Engine.FFmpeg))
		return ""
	}
	return p
}

// runnerOptions configures every job runner
func (a *app) runnerOptions() []download.RunnerOption {
	opts := []download.RunnerOption{
		download.WithPreferences(a.cfg.Preferences()),
		download.WithLogger(a.logger),
	}
	if a.cfg.Playlist.Probe {
		prober := platform.NewPlaylistProber()
		prober.SetTimeout(a.cfg.Playlist.Timeout)
		opts = append(opts, download.WithPlaylistProber(prober))
	}
	return opts
}
