package tui

import (
	"fmt"
	"strings"

	bubblesprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/yt-downloader-lite/internal/controller"
	"github.com/ytget/yt-downloader-lite/internal/model"
)

// Display limits
const (
	logTail      = 8
	logRingSize  = 1000
	barWidth     = 40
	minBarWidth  = 10
	widthPadding = 4
)

// Starter launches a job; implemented by *controller.Controller
type Starter interface {
	Start(source, destination string) (model.Job, error)
}

// startedMsg carries the result of Starter.Start
type startedMsg struct {
	err error
}

// Model renders one job in the terminal
type Model struct {
	starter     Starter
	source      string
	destination string
	msgs        controller.Messages

	bar     bubblesprogress.Model
	spinner spinner.Model
	styles  Styles

	running  bool
	done     bool
	aborted  bool
	percent  int
	status   string
	logs     []model.LogLine
	invalid  string
	startErr error
	width    int
}

// NewModel creates a model that starts source → destination on Init
func NewModel(starter Starter, source, destination string, msgs controller.Messages) Model {
	sty := defaultStyles()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = sty.Spinner

	return Model{
		starter:     starter,
		source:      source,
		destination: destination,
		msgs:        msgs,
		bar:         bubblesprogress.New(bubblesprogress.WithDefaultGradient(), bubblesprogress.WithWidth(barWidth)),
		spinner:     sp,
		styles:      sty,
		status:      msgs.Ready,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startCmd())
}

func (m Model) startCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.starter.Start(m.source, m.destination)
		return startedMsg{err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.aborted = !m.done
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = max(min(msg.Width-widthPadding, barWidth), minBarWidth)

	case startedMsg:
		if msg.err != nil {
			m.startErr = msg.err
			m.done = true
			return m, tea.Quit
		}

	case enabledMsg:
		if !msg.enabled {
			m.running = true
			return m, nil
		}
		if m.running {
			m.running = false
			m.done = true
			return m, tea.Quit
		}
	case progressMsg:
		m.percent = msg.percent
	case statusMsg:
		m.status = msg.text
	case logMsg:
		if len(m.logs) >= logRingSize {
			m.logs = m.logs[1:]
		}
		m.logs = append(m.logs, msg.line)
	case clearLogMsg:
		m.logs = nil
	case invalidMsg:
		m.invalid = msg.text

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("yt-downloader"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", m.styles.Label.Render("URL:    "), m.styles.Value.Render(m.source))
	fmt.Fprintf(&b, "%s %s\n\n", m.styles.Label.Render("Save to:"), m.styles.Value.Render(m.destination))

	if m.invalid != "" {
		b.WriteString(m.styles.Error.Render(m.invalid))
		b.WriteString("\n")
		return m.styles.Box.Render(b.String())
	}

	if m.running {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
	}
	b.WriteString(m.bar.ViewAs(float64(m.percent) / 100))
	b.WriteString("\n")
	b.WriteString(m.statusStyle().Render(m.status))
	b.WriteString("\n")

	if tail := m.tail(); len(tail) > 0 {
		b.WriteString("\n")
		for _, line := range tail {
			b.WriteString(m.lineStyle(line.Level).Render(line.Text))
			b.WriteString("\n")
		}
	}
	if !m.done {
		b.WriteString("\n")
		b.WriteString(m.styles.Faint.Render("q: quit"))
		b.WriteString("\n")
	}
	return m.styles.Box.Render(b.String())
}

// Failed reports whether the job ended with an error or never started
func (m Model) Failed() bool {
	return m.startErr != nil || m.status == m.msgs.Failed
}

// Aborted reports whether the user quit before the job ended
func (m Model) Aborted() bool {
	return m.aborted
}

// LastLog returns the newest log line
func (m Model) LastLog() (model.LogLine, bool) {
	if len(m.logs) == 0 {
		return model.LogLine{}, false
	}
	return m.logs[len(m.logs)-1], true
}

func (m Model) tail() []model.LogLine {
	if len(m.logs) <= logTail {
		return m.logs
	}
	return m.logs[len(m.logs)-logTail:]
}

func (m Model) statusStyle() lipgloss.Style {
	switch {
	case m.done && m.Failed():
		return m.styles.Error
	case m.done:
		return m.styles.Success
	default:
		return m.styles.Status
	}
}

func (m Model) lineStyle(level model.LogLevel) lipgloss.Style {
	switch level {
	case model.LogWarning:
		return m.styles.Warning
	case model.LogError:
		return m.styles.Error
	default:
		return m.styles.Faint
	}
}
