package download

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// yt-dlp executable and flags
const (
	DefaultBinary = "yt-dlp"

	FlagOutput            = "-o"
	FlagFormat            = "-f"
	FlagIgnoreErrors      = "--ignore-errors"
	FlagMergeOutputFormat = "--merge-output-format"
	FlagNewline           = "--newline"
	FlagNoColors          = "--no-colors"
	FlagProgressTemplate  = "--progress-template"
)

// Progress template plumbing. Every progress report is printed on stdout as
// ProgressMarker followed by progressFieldCount values separated by
// ProgressSeparator; missing values are printed as NotAvailable.
const (
	ProgressMarker    = "[ytdl-lite] "
	ProgressSeparator = "|"
	NotAvailable      = "NA"

	progressFieldCount = 8
)

// Stderr prefixes used by yt-dlp
const (
	engineWarningPrefix = "WARNING:"
	engineErrorPrefix   = "ERROR:"
)

// exitCodeItemErrors is returned by yt-dlp when some items failed
const exitCodeItemErrors = 1

// Scanner buffer limits
const (
	scanBufferInitial = 64 * 1024
	scanBufferMax     = 1024 * 1024
)

var progressTemplate = "download:" + ProgressMarker + strings.Join([]string{
	"%(progress.status)s",
	"%(progress.downloaded_bytes)s",
	"%(progress.total_bytes)s",
	"%(progress.total_bytes_estimate)s",
	"%(progress.speed)s",
	"%(progress.eta)s",
	"%(info.playlist_index)s",
	"%(info.playlist_count)s",
}, ProgressSeparator)

// YTDLP drives the yt-dlp executable as the download engine
type YTDLP struct {
	binary string
	logger *zap.Logger
}

// NewYTDLP creates an engine that runs binary (DefaultBinary if empty)
func NewYTDLP(binary string, logger *zap.Logger) *YTDLP {
	if binary == "" {
		binary = DefaultBinary
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &YTDLP{binary: binary, logger: logger}
}

// Binary returns the executable this engine runs
func (y *YTDLP) Binary() string {
	return y.binary
}

// Args returns the command-line arguments for downloading source with opts
func (y *YTDLP) Args(source string, opts Options) []string {
	args := []string{
		FlagNewline,
		FlagNoColors,
		FlagProgressTemplate, progressTemplate,
	}
	if opts.OutputTemplate != "" {
		args = append(args, FlagOutput, opts.OutputTemplate)
	}
	if opts.IgnoreErrors {
		args = append(args, FlagIgnoreErrors)
	}
	if opts.Format != "" {
		args = append(args, FlagFormat, opts.Format)
	}
	if opts.MergeOutputFormat != "" {
		args = append(args, FlagMergeOutputFormat, opts.MergeOutputFormat)
	}
	// "--" keeps a source starting with "-" from being read as a flag
	return append(args, "--", source)
}

// Download runs yt-dlp and blocks until it exits
func (y *YTDLP) Download(ctx context.Context, source string, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	args := y.Args(source, opts)
	y.logger.Debug("starting engine", zap.String("binary", y.binary), zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, y.binary, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", y.binary, err)
	}

	var (
		mu        sync.Mutex
		lastError string
	)

	var g errgroup.Group
	g.Go(func() error {
		return scanLines(stdout, func(line string) {
			if p, ok := ParseProgressLine(line); ok {
				for _, hook := range opts.ProgressHooks {
					hook(p)
				}
				return
			}
			logger.Debug(line)
		})
	})
	g.Go(func() error {
		return scanLines(stderr, func(line string) {
			switch {
			case strings.HasPrefix(line, engineErrorPrefix):
				msg := strings.TrimSpace(strings.TrimPrefix(line, engineErrorPrefix))
				mu.Lock()
				lastError = msg
				mu.Unlock()
				logger.Error(msg)
			case strings.HasPrefix(line, engineWarningPrefix):
				logger.Warning(strings.TrimSpace(strings.TrimPrefix(line, engineWarningPrefix)))
			default:
				logger.Debug(line)
			}
		})
	})

	scanErr := g.Wait()
	waitErr := cmd.Wait()

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return fmt.Errorf("%s: %w", y.binary, waitErr)
		}
		code := exitErr.ExitCode()
		y.logger.Debug("engine exited", zap.Int("code", code))

		// Skipped items were already reported through the logger.
		if opts.IgnoreErrors && code == exitCodeItemErrors && ctx.Err() == nil {
			return nil
		}
		if lastError != "" {
			return errors.New(lastError)
		}
		if code < 0 {
			return fmt.Errorf("%s: %w", y.binary, waitErr)
		}
		return fmt.Errorf("%s exited with code %d", y.binary, code)
	}

	if scanErr != nil {
		return fmt.Errorf("read engine output: %w", scanErr)
	}
	return nil
}

// ParseProgressLine parses a line printed through the progress template
func ParseProgressLine(line string) (Progress, bool) {
	idx := strings.Index(line, ProgressMarker)
	if idx < 0 {
		return Progress{}, false
	}

	fields := strings.Split(strings.TrimSpace(line[idx+len(ProgressMarker):]), ProgressSeparator)
	if len(fields) != progressFieldCount {
		return Progress{}, false
	}

	p := Progress{
		Status:             ProgressStatus(fields[0]),
		DownloadedBytes:    parseInt64(fields[1]),
		TotalBytes:         parseInt64(fields[2]),
		TotalBytesEstimate: parseInt64(fields[3]),
		Speed:              parseFloat(fields[4]),
		PlaylistIndex:      int(parseInt64(fields[6])),
		PlaylistCount:      int(parseInt64(fields[7])),
	}
	if eta, ok := parseNumber(fields[5]); ok {
		seconds := int(eta)
		p.ETA = &seconds
	}
	return p, true
}

// parseNumber parses a template value; NA and garbage are reported as absent
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == NotAvailable || s == "None" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseInt64(s string) int64 {
	v, _ := parseNumber(s)
	return int64(v)
}

func parseFloat(s string) float64 {
	v, _ := parseNumber(s)
	return v
}

// scanLines calls fn for each line read from r. When scanning fails the
// rest of r is discarded so the writer never blocks on a full pipe.
func scanLines(r io.Reader, fn func(string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, scanBufferInitial), scanBufferMax)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fn(line)
	}
	if err := sc.Err(); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return err
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string)   {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}
