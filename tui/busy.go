package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

type BusyDoneMsg struct{}

// BusyModel shows a spinner next to a label until BusyDoneMsg arrives. It
// ignores keyboard input: the work it decorates cannot be interrupted midway.
type BusyModel struct {
	text     string
	spin     spinner.Model
	Quitting bool

	textStyle lipgloss.Style
}

func NewBusyModel(text string) BusyModel {
	return BusyModel{
		text:      text,
		spin:      NewPrimarySpinner(),
		textStyle: LabelStyle().Bold(false),
	}
}

func (m BusyModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m BusyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case BusyDoneMsg:
		m.Quitting = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BusyModel) View() string {
	if m.Quitting {
		return ""
	}
	return m.spin.View() + " " + m.textStyle.Render(m.text) + "\n"
}

// RunBusy runs fn while a spinner labelled text is drawn on out. When out is
// not a terminal fn runs without decoration.
func RunBusy(out io.Writer, text string, fn func() error) error {
	if !isTerminal(out) {
		return fn()
	}

	InitCommonStyles(out)
	p := tea.NewProgram(NewBusyModel(text), tea.WithOutput(out), tea.WithInput(nil))
	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		done <- err
	}()

	err := fn()

	p.Send(BusyDoneMsg{})
	<-done
	ResetLine(out)
	ShowCursor(out)
	return err
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
