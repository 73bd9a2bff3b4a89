// Package config loads the read-only application configuration from
// defaults, an optional config file, YTDL_LITE_* environment variables and
// command-line flags. Nothing is ever written back.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ytget/yt-downloader-lite/internal/download"
	"github.com/ytget/yt-downloader-lite/internal/logger"
	"github.com/ytget/yt-downloader-lite/internal/platform"
)

// AppName names the config directory
const AppName = "yt-downloader-lite"

// EnvPrefix prefixes every environment variable, e.g. YTDL_LITE_ENGINE_BINARY
const EnvPrefix = "YTDL_LITE"

// Supported UI languages
const (
	LanguageEnglish = "en"
	LanguageKorean  = "ko"
)

// Configuration keys
const (
	KeyEngineBinary    = "engine.binary"
	KeyEngineFFmpeg    = "engine.ffmpeg"
	KeyDownloadDir     = "download.dir"
	KeyTemplate        = "download.template"
	KeyMergeFormat     = "download.merge_format"
	KeyFormatMerged    = "download.format_merged"
	KeyFormatSingle    = "download.format_single"
	KeyPlaylistProbe   = "playlist.probe"
	KeyPlaylistTimeout = "playlist.timeout"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeyLogOutput       = "log.output"
	KeyLanguage        = "ui.language"
)

// DefaultPlaylistTimeout bounds the playlist probe
const DefaultPlaylistTimeout = 30 * time.Second

// Config is the complete application configuration
type Config struct {
	Engine   EngineConfig   `mapstructure:"engine"`
	Download DownloadConfig `mapstructure:"download"`
	Playlist PlaylistConfig `mapstructure:"playlist"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`

	// File is the config file that was read, empty if none
	File string `mapstructure:"-"`
}

// EngineConfig names the external executables
type EngineConfig struct {
	Binary string `mapstructure:"binary"`
	FFmpeg string `mapstructure:"ffmpeg"`
}

// DownloadConfig holds the initial folder and format preferences
type DownloadConfig struct {
	Dir          string `mapstructure:"dir"`
	Template     string `mapstructure:"template"`
	MergeFormat  string `mapstructure:"merge_format"`
	FormatMerged string `mapstructure:"format_merged"`
	FormatSingle string `mapstructure:"format_single"`
}

// PlaylistConfig controls the playlist probe
type PlaylistConfig struct {
	Probe   bool          `mapstructure:"probe"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig configures diagnostics logging
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// UIConfig configures the front-ends
type UIConfig struct {
	Language string `mapstructure:"language"`
}

// NewViper returns a viper instance with defaults and environment binding
func NewViper() *viper.Viper {
	v := viper.New()

	dir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		dir = "."
	}
	logDefaults := logger.DefaultConfig()

	v.SetDefault(KeyEngineBinary, platform.DefaultEngineBinary)
	v.SetDefault(KeyEngineFFmpeg, platform.DefaultMergeTool)
	v.SetDefault(KeyDownloadDir, dir)
	v.SetDefault(KeyTemplate, download.DefaultOutputTemplate)
	v.SetDefault(KeyMergeFormat, download.DefaultMergeFormat)
	v.SetDefault(KeyFormatMerged, download.DefaultMergedFormat)
	v.SetDefault(KeyFormatSingle, download.DefaultSingleFormat)
	v.SetDefault(KeyPlaylistProbe, true)
	v.SetDefault(KeyPlaylistTimeout, DefaultPlaylistTimeout)
	v.SetDefault(KeyLogLevel, logDefaults.Level)
	v.SetDefault(KeyLogFormat, logDefaults.Format)
	v.SetDefault(KeyLogOutput, logDefaults.Output)
	v.SetDefault(KeyLanguage, LanguageEnglish)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds command-line flags to configuration keys. Flags missing
// from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads file (or config.{yaml,toml,json} from the user config
// directory when file is empty) into v and returns the validated result.
// A missing default config file is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	cfg.Download.Dir = expandHome(cfg.Download.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate rejects values no component can work with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Engine.Binary) == "" {
		return errors.New("engine binary not configured")
	}
	if strings.TrimSpace(c.Download.Template) == "" {
		return errors.New("output template is empty")
	}
	if filepath.IsAbs(c.Download.Template) {
		return fmt.Errorf("output template must be relative: %s", c.Download.Template)
	}
	if c.Playlist.Timeout < 0 {
		return errors.New("playlist timeout cannot be negative")
	}
	switch c.UI.Language {
	case LanguageEnglish, LanguageKorean:
	default:
		return fmt.Errorf("unsupported language %q", c.UI.Language)
	}
	return nil
}

// Preferences returns the engine format preferences
func (c *Config) Preferences() download.Preferences {
	return download.Preferences{
		OutputTemplate: c.Download.Template,
		MergeFormat:    c.Download.MergeFormat,
		MergedFormat:   c.Download.FormatMerged,
		SingleFormat:   c.Download.FormatSingle,
	}
}

// Logger returns the diagnostics logger settings
func (c *Config) Logger() logger.Config {
	return logger.Config{
		Level:  c.Log.Level,
		Format: c.Log.Format,
		Output: c.Log.Output,
	}
}

// expandHome expands a leading ~/ and environment variables
func expandHome(path string) string {
	path = os.ExpandEnv(path)
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return path
}
