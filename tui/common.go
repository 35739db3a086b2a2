package tui

import (
	"io"

	"github.com/Thunder-Compute/unrar-setup/tui/theme"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyleTUI   lipgloss.Style
	warningStyleTUI lipgloss.Style
	successStyle    lipgloss.Style

	primaryStyle    lipgloss.Style
	labelStyle      lipgloss.Style
	subtleTextStyle lipgloss.Style
)

func InitCommonStyles(out io.Writer) {
	theme.Init(out)

	errorStyleTUI = theme.Error()
	warningStyleTUI = theme.Warning()
	successStyle = theme.Success()

	primaryStyle = theme.Primary()
	labelStyle = theme.Label()
	subtleTextStyle = theme.Neutral()
}

func RenderInfo(message string) string {
	if message == "" {
		return ""
	}
	return primaryStyle.Render("→ ") + message
}

func RenderWarningSimple(message string) string {
	if message == "" {
		return ""
	}
	return warningStyleTUI.Render("⚠ " + message)
}

func RenderSuccessSimple(message string) string {
	if message == "" {
		return ""
	}
	return successStyle.Render("✓ " + message)
}

func RenderSuccess(message string) string {
	if message == "" {
		return ""
	}
	return successStyle.Render("✓ Success: " + message)
}

func RenderError(err error) string {
	if err == nil {
		return ""
	}
	return errorStyleTUI.Render("✗ Error: " + err.Error())
}

// RenderKeyValue lines up a label and value for status output.
func RenderKeyValue(key, value string) string {
	return labelStyle.Width(18).Render(key) + value
}

func RenderSubtle(message string) string {
	return subtleTextStyle.Render(message)
}

func LabelStyle() lipgloss.Style {
	return labelStyle
}

func ResetLine(out io.Writer) {
	if out == nil {
		return
	}
	_, _ = io.WriteString(out, "\r\x1b[2K")
}

func ShowCursor(out io.Writer) {
	if out == nil {
		return
	}
	_, _ = io.WriteString(out, "\x1b[?25h")
}

func NewPrimarySpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = primaryStyle
	return s
}
