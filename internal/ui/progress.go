package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/renato0307/diffreport/internal/logging"
	"github.com/renato0307/diffreport/internal/theme"
)

type stageMsg string

type stopMsg struct{}

type progressModel struct {
	message string
	spinner spinner.Model
}

func newProgressModel(message string) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle
	return progressModel{message: message, spinner: s}
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stageMsg:
		m.message = string(msg)
		return m, nil
	case stopMsg:
		m.message = ""
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m progressModel) View() string {
	if m.message == "" {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), theme.MutedStyle.Render(m.message))
}

// Progress shows a spinner with the current pipeline stage on stderr.
// On a non-terminal output it only logs the stages.
type Progress struct {
	done    chan struct{}
	mu      sync.Mutex
	program *tea.Program
}

// StartProgress starts the spinner. Call Stop before printing anything else.
func StartProgress(message string) *Progress {
	return startProgress(os.Stderr, isTerminal(os.Stderr), message)
}

func startProgress(out io.Writer, interactive bool, message string) *Progress {
	p := &Progress{}
	logging.Logger.Debug("Progress", "stage", message)
	if !interactive {
		return p
	}

	p.program = tea.NewProgram(newProgressModel(message),
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	p.done = make(chan struct{})
	go func() {
		defer close(p.done)
		if _, err := p.program.Run(); err != nil {
			logging.Logger.Warn("Progress display failed", "error", err)
		}
	}()
	return p
}

// Update replaces the stage message
func (p *Progress) Update(message string) {
	logging.Logger.Debug("Progress", "stage", message)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.program != nil {
		p.program.Send(stageMsg(message))
	}
}

// Stop clears the spinner and waits for the display to exit
func (p *Progress) Stop() {
	p.mu.Lock()
	program := p.program
	p.program = nil
	p.mu.Unlock()

	if program == nil {
		return
	}
	program.Send(stopMsg{})
	<-p.done
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsInteractive reports whether stdin and stdout are terminals
func IsInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}
