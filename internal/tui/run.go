package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/ytget/yt-downloader-lite/internal/controller"
	"github.com/ytget/yt-downloader-lite/internal/download"
	"github.com/ytget/yt-downloader-lite/internal/model"
)

var (
	// ErrDownloadFailed is returned when the job ended with a failure
	ErrDownloadFailed = errors.New("download failed")
	// ErrAborted is returned when the program ended before the job did
	ErrAborted = errors.New("download aborted")
)

// Config describes one terminal download
type Config struct {
	Source      string
	Destination string
	Engine      download.Engine
	Messages    controller.Messages
	// Output defaults to os.Stdout
	Output io.Writer
	// Plain forces line output even on a terminal
	Plain             bool
	ControllerOptions []controller.Option
}

// Run downloads cfg.Source and blocks until the job ends. The bubbletea UI
// is used when the output is a terminal.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Messages == (controller.Messages{}) {
		cfg.Messages = controller.DefaultMessages()
	}
	if !cfg.Plain && isTerminal(cfg.Output) {
		return runInteractive(ctx, cfg)
	}
	return runPlain(ctx, cfg)
}

func (cfg Config) controllerOptions(ctx context.Context) []controller.Option {
	opts := []controller.Option{
		controller.WithMessages(cfg.Messages),
		controller.WithContext(ctx),
	}
	return append(opts, cfg.ControllerOptions...)
}

func runInteractive(ctx context.Context, cfg Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	view := &programView{}
	ctrl := controller.New(view, cfg.Engine, cfg.controllerOptions(ctx)...)
	starter := &gatedStarter{starter: ctrl}

	prog := tea.NewProgram(NewModel(starter, cfg.Source, cfg.Destination, cfg.Messages),
		tea.WithContext(ctx), tea.WithOutput(cfg.Output))
	view.send = prog.Send

	final, err := prog.Run()
	starter.close()
	// Quitting early stops the engine.
	cancel()
	ctrl.Wait()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return interactiveResult(final, ctrl.State())
}

// interactiveResult maps the final model and job state to Run's error
func interactiveResult(final tea.Model, state model.JobState) error {
	fm, ok := final.(Model)
	if ok && fm.startErr != nil {
		return fm.startErr
	}
	if state == model.JobStateIdle || (ok && fm.Aborted()) {
		return ErrAborted
	}
	if state == model.JobStateFailed {
		if line, found := fm.LastLog(); found {
			return fmt.Errorf("%w: %s", ErrDownloadFailed, line.Text)
		}
		return ErrDownloadFailed
	}
	return nil
}

// gatedStarter refuses to start a job once the program has ended
type gatedStarter struct {
	mu      sync.Mutex
	closed  bool
	starter Starter
}

func (g *gatedStarter) Start(source, destination string) (model.Job, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return model.Job{}, ErrAborted
	}
	return g.starter.Start(source, destination)
}

func (g *gatedStarter) close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
}

func runPlain(ctx context.Context, cfg Config) error {
	view := NewPlainView(cfg.Output)
	ctrl := controller.New(view, cfg.Engine, cfg.controllerOptions(ctx)...)

	if _, err := ctrl.Start(cfg.Source, cfg.Destination); err != nil {
		return err
	}
	ctrl.Wait()

	if ctrl.State() == model.JobStateFailed {
		return fmt.Errorf("%w: %s", ErrDownloadFailed, view.LastError())
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
