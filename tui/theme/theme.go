// Package theme holds the color palette shared by console output and help.
package theme

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	PrimaryColorHex     = "#8dc8ff"
	NeutralTextColorHex = "#888888"
	LabelTextColorHex   = "#FFFFFF"
	SuccessColorHex     = "#00D787"
	ErrorColorHex       = "#FF5555"
	WarningColorHex     = "#FFB86C"
)

// Palette is the set of base styles, bound to one renderer.
type Palette struct {
	Renderer *lipgloss.Renderer
	Primary  lipgloss.Style
	Neutral  lipgloss.Style
	Label    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var (
	once    sync.Once
	current Palette
)

// Init builds the palette for out on first use. NO_COLOR disables colors
// regardless of what the terminal supports.
func Init(out io.Writer) {
	once.Do(func() {
		current = NewPalette(out, os.Getenv("NO_COLOR") != "")
	})
}

// NewPalette creates a palette without touching the shared one.
func NewPalette(out io.Writer, plain bool) Palette {
	var r *lipgloss.Renderer
	if plain {
		r = lipgloss.NewRenderer(out, termenv.WithProfile(termenv.Ascii))
	} else {
		r = lipgloss.NewRenderer(out)
	}
	return Palette{
		Renderer: r,
		Primary:  r.NewStyle().Foreground(lipgloss.Color(PrimaryColorHex)),
		Neutral:  r.NewStyle().Foreground(lipgloss.Color(NeutralTextColorHex)),
		Label:    r.NewStyle().Foreground(lipgloss.Color(LabelTextColorHex)).Bold(true),
		Success:  r.NewStyle().Foreground(lipgloss.Color(SuccessColorHex)).Bold(true),
		Error:    r.NewStyle().Foreground(lipgloss.Color(ErrorColorHex)).Bold(true),
		Warning:  r.NewStyle().Foreground(lipgloss.Color(WarningColorHex)).Bold(true),
	}
}

func Renderer() *lipgloss.Renderer { return current.Renderer }
func Primary() lipgloss.Style      { return current.Primary }
func Neutral() lipgloss.Style      { return current.Neutral }
func Label() lipgloss.Style        { return current.Label }
func Success() lipgloss.Style      { return current.Success }
func Error() lipgloss.Style        { return current.Error }
func Warning() lipgloss.Style      { return current.Warning }
